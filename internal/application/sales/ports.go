package sales

import (
	"context"

	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, entregándole
// repositorios ligados a esa transacción. Si fn devuelve error se hace rollback
// de todo lo escrito; si no, commit.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(productRepo repository.ProductRepository, ticketRepo repository.TicketRepository) error) error
}
