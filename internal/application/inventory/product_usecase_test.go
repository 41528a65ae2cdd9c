package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/application/inventory"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
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
func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) List(string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

func createProduct(t *testing.T, uc *inventory.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Cargador USB-C",
		Brand:    "Samsung",
		Stock:    10,
		Price:    decimal.NewFromInt(15),
		MinStock: 5,
	})
	require.NoError(t, err)
	return out
}

func TestCreateProduct_Validaciones(t *testing.T) {
	uc := inventory.NewProductUseCase(newFakeProductRepo())

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{Price: decimal.NewFromInt(10)}},
		{"precio cero", dto.CreateProductRequest{Name: "Cable USB", Price: decimal.Zero, Stock: 5}},
		{"precio negativo", dto.CreateProductRequest{Name: "Cable USB", Price: decimal.NewFromInt(-3)}},
		{"stock negativo", dto.CreateProductRequest{Name: "Cable USB", Price: decimal.NewFromInt(10), Stock: -1}},
		{"min_stock negativo", dto.CreateProductRequest{Name: "Cable USB", Price: decimal.NewFromInt(10), MinStock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateProduct_NoPersisteConPrecioCero(t *testing.T) {
	repo := newFakeProductRepo()
	uc := inventory.NewProductUseCase(repo)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:  "Cable USB",
		Price: decimal.Zero,
		Stock: 5,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.products, "un producto con precio cero no debe persistirse")
}

func TestUpdateProduct_ActualizacionParcial(t *testing.T) {
	uc := inventory.NewProductUseCase(newFakeProductRepo())
	created := createProduct(t, uc)

	stock := 25
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 25, out.Stock)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.Brand, out.Brand)
	assert.True(t, created.Price.Equal(out.Price))
}

func TestUpdateProduct_PrecioCeroRechazado(t *testing.T) {
	uc := inventory.NewProductUseCase(newFakeProductRepo())
	created := createProduct(t, uc)

	zero := decimal.Zero
	_, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El precio original sigue vigente.
	out, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(out.Price))
}

func TestGetProduct_NoExiste(t *testing.T) {
	uc := inventory.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Get("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct_NoExiste(t *testing.T) {
	uc := inventory.NewProductUseCase(newFakeProductRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
