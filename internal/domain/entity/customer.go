package entity

import "time"

// Customer representa un cliente del CRM, propiedad de un usuario.
// Invariante: email único por dueño (owner_id + email).
type Customer struct {
	ID        string
	Name      string
	Email     string // siempre en minúsculas
	Phone     string
	Company   string
	OwnerID   string // FK a users; determina todos los permisos de acceso
	CreatedAt time.Time
	UpdatedAt time.Time
}
