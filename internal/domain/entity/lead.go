package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Lead.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"
)

// LeadStatuses lista los estados válidos en orden de ciclo de vida.
var LeadStatuses = []string{LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost}

// Lead representa una oportunidad de venta asociada a un Customer.
// Solo es alcanzable a través del dueño del customer padre.
type Lead struct {
	ID          string
	Title       string
	Description string
	Status      string          // New, Contacted, Converted, Lost
	Value       decimal.Decimal // valor monetario, >= 0
	CustomerID  string          // FK a customers
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
