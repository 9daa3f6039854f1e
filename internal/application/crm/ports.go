package crm

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo usa el delete de customer para que la cascada (leads primero, customer
// después) sea una sola operación lógica también ante fallos parciales.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		leads repository.LeadRepository,
	) error) error
}
