package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/application/sales"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                 { delete(r.products, id); return nil }

func (r *fakeProductRepo) snapshot() map[string]entity.Product {
	out := make(map[string]entity.Product, len(r.products))
	for id, p := range r.products {
		out[id] = *p
	}
	return out
}

func (r *fakeProductRepo) restore(snap map[string]entity.Product) {
	r.products = make(map[string]*entity.Product, len(snap))
	for id, p := range snap {
		cp := p
		r.products[id] = &cp
	}
}

type fakeTicketRepo struct {
	tickets map[string]*entity.Ticket
	items   map[string][]*entity.TicketItem
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets: make(map[string]*entity.Ticket),
		items:   make(map[string][]*entity.TicketItem),
	}
}

func (r *fakeTicketRepo) Create(t *entity.Ticket) error {
	cp := *t
	r.tickets[t.ID] = &cp
	return nil
}
func (r *fakeTicketRepo) CreateItem(it *entity.TicketItem) error {
	cp := *it
	r.items[it.TicketID] = append(r.items[it.TicketID], &cp)
	return nil
}
func (r *fakeTicketRepo) GetByID(id string) (*entity.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (r *fakeTicketRepo) GetItemsByTicketID(ticketID string) ([]*entity.TicketItem, error) {
	return r.items[ticketID], nil
}
func (r *fakeTicketRepo) List() ([]*entity.Ticket, error) {
	out := make([]*entity.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	return out, nil
}
func (r *fakeTicketRepo) ListByPaymentStatus(status string) ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if t.PaymentStatus == status {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTicketRepo) ListUnpaid() ([]*entity.Ticket, error) {
	var out []*entity.Ticket
	for _, t := range r.tickets {
		if t.PaymentStatus != entity.TicketPaymentPaid {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTicketRepo) UpdatePaymentStatus(id, status string) error {
	t, ok := r.tickets[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.PaymentStatus = status
	return nil
}

// fakeTxRunner simula la semántica transaccional: si fn falla, restaura el
// estado previo de productos y tickets.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	ticketRepo  *fakeTicketRepo
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(repository.ProductRepository, repository.TicketRepository) error) error {
	productSnap := r.productRepo.snapshot()
	existing := make(map[string]bool, len(r.ticketRepo.tickets))
	for id := range r.ticketRepo.tickets {
		existing[id] = true
	}
	if err := fn(r.productRepo, r.ticketRepo); err != nil {
		r.productRepo.restore(productSnap)
		// Revertir tickets creados dentro de la "transacción"
		for id := range r.ticketRepo.tickets {
			if !existing[id] {
				delete(r.ticketRepo.tickets, id)
				delete(r.ticketRepo.items, id)
			}
		}
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func product(id, name string, stock int, price int64) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID: id, Name: name, Stock: stock,
		Price: decimal.NewFromInt(price), MinStock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
}

func buildUseCase(products ...*entity.Product) (*sales.TicketUseCase, *fakeProductRepo, *fakeTicketRepo) {
	productRepo := newFakeProductRepo(products...)
	ticketRepo := newFakeTicketRepo()
	runner := &fakeTxRunner{productRepo: productRepo, ticketRepo: ticketRepo}
	uc := sales.NewTicketUseCase(ticketRepo, runner, testLogger())
	return uc, productRepo, ticketRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTicket_VentaExitosa(t *testing.T) {
	uc, productRepo, _ := buildUseCase(
		product("p1", "Cargador", 10, 15),
		product("p2", "Audífonos", 4, 25),
	)

	out, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName:  "María Pérez",
		PaymentMethod: "efectivo",
		PaymentStatus: entity.TicketPaymentPaid,
		Items: []dto.TicketItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Totales: Σ(precio × cantidad) == subtotal == total, tax siempre cero.
	expected := decimal.NewFromInt(2*15 + 1*25)
	assert.True(t, expected.Equal(out.Subtotal), "subtotal esperado %s, got %s", expected, out.Subtotal)
	assert.True(t, expected.Equal(out.Total), "total debe igualar al subtotal")
	assert.True(t, out.Tax.IsZero(), "tax debe ser cero")
	assert.Len(t, out.Items, 2)

	// El stock baja exactamente la cantidad vendida.
	p1, _ := productRepo.GetByID("p1")
	p2, _ := productRepo.GetByID("p2")
	assert.Equal(t, 8, p1.Stock)
	assert.Equal(t, 3, p2.Stock)
}

func TestCreateTicket_PrecioCongelado(t *testing.T) {
	uc, productRepo, ticketRepo := buildUseCase(product("p1", "Cargador", 10, 15))

	out, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName: "Luis",
		Items:        []dto.TicketItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	// Subir el precio del producto después de la venta no altera la línea.
	p1, _ := productRepo.GetByID("p1")
	p1.Price = decimal.NewFromInt(99)
	require.NoError(t, productRepo.Update(p1))

	items, err := ticketRepo.GetItemsByTicketID(out.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, decimal.NewFromInt(15).Equal(items[0].Price),
		"el precio de la línea debe quedar congelado al momento de la venta")
}

func TestCreateTicket_StockInsuficiente_RollbackCompleto(t *testing.T) {
	uc, productRepo, ticketRepo := buildUseCase(
		product("p1", "Cargador", 10, 15),
		product("p2", "Audífonos", 1, 25),
	)

	_, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName: "Pedro",
		Items: []dto.TicketItemRequest{
			{ProductID: "p1", Quantity: 3}, // esta línea sí alcanza
			{ProductID: "p2", Quantity: 5}, // esta no
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Ningún stock mutado, ningún ticket creado.
	p1, _ := productRepo.GetByID("p1")
	p2, _ := productRepo.GetByID("p2")
	assert.Equal(t, 10, p1.Stock, "el stock de la primera línea debe revertirse")
	assert.Equal(t, 1, p2.Stock)
	tickets, _ := ticketRepo.List()
	assert.Empty(t, tickets, "no debe persistirse ningún ticket")
}

func TestCreateTicket_ProductoInexistente(t *testing.T) {
	uc, _, ticketRepo := buildUseCase(product("p1", "Cargador", 10, 15))

	_, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName: "Ana",
		Items:        []dto.TicketItemRequest{{ProductID: "no-existe", Quantity: 1}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	tickets, _ := ticketRepo.List()
	assert.Empty(t, tickets)
}

func TestCreateTicket_Validaciones(t *testing.T) {
	uc, _, _ := buildUseCase(product("p1", "Cargador", 10, 15))
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.CreateTicketRequest
	}{
		{"sin cliente", dto.CreateTicketRequest{Items: []dto.TicketItemRequest{{ProductID: "p1", Quantity: 1}}}},
		{"sin líneas", dto.CreateTicketRequest{CustomerName: "Ana"}},
		{"cantidad cero", dto.CreateTicketRequest{CustomerName: "Ana", Items: []dto.TicketItemRequest{{ProductID: "p1", Quantity: 0}}}},
		{"estado de pago desconocido", dto.CreateTicketRequest{CustomerName: "Ana", PaymentStatus: "Pagado", Items: []dto.TicketItemRequest{{ProductID: "p1", Quantity: 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateTicket_EstadoPorDefectoPaid(t *testing.T) {
	uc, _, _ := buildUseCase(product("p1", "Cargador", 10, 15))

	// Sin estado declarado la venta queda cobrada, no pendiente.
	out, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName: "Ana",
		Items:        []dto.TicketItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketPaymentPaid, out.PaymentStatus)
}

func TestMarkPaid_Idempotente(t *testing.T) {
	uc, _, _ := buildUseCase(product("p1", "Cargador", 10, 15))

	created, err := uc.Create(context.Background(), dto.CreateTicketRequest{
		CustomerName:  "Ana",
		PaymentStatus: entity.TicketPaymentPending,
		Items:         []dto.TicketItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	first, err := uc.MarkPaid(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketPaymentPaid, first.PaymentStatus)

	second, err := uc.MarkPaid(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TicketPaymentPaid, second.PaymentStatus)
}

func TestMarkPaid_NoExiste(t *testing.T) {
	uc, _, _ := buildUseCase()
	_, err := uc.MarkPaid("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
