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

type fakePartRepo struct {
	parts map[string]*entity.Part
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: make(map[string]*entity.Part)}
}

func (r *fakePartRepo) Create(p *entity.Part) error {
	cp := *p
	r.parts[p.ID] = &cp
	return nil
}
func (r *fakePartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakePartRepo) GetBySKU(sku string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakePartRepo) Update(p *entity.Part) error {
	cp := *p
	r.parts[p.ID] = &cp
	return nil
}
func (r *fakePartRepo) List(string) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePartRepo) Delete(id string) error { delete(r.parts, id); return nil }

func createPart(t *testing.T, uc *inventory.PartUseCase, name, sku string) *dto.PartResponse {
	t.Helper()
	out, err := uc.Create(dto.CreatePartRequest{
		Name:             name,
		SKU:              sku,
		Stock:            10,
		Price:            decimal.NewFromInt(25),
		CompatibleModels: []string{"iPhone 12", "iPhone 12 Pro"},
		MinStock:         3,
	})
	require.NoError(t, err)
	return out
}

func TestCreatePart_SKUDuplicado(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())
	createPart(t, uc, "Pantalla iPhone 12", "PANT-IP12")

	_, err := uc.Create(dto.CreatePartRequest{
		Name:  "Otra pantalla",
		SKU:   "PANT-IP12",
		Price: decimal.NewFromInt(30),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreatePart_Validaciones(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())

	cases := []struct {
		name string
		in   dto.CreatePartRequest
	}{
		{"sin nombre", dto.CreatePartRequest{SKU: "SKU-1"}},
		{"sin sku", dto.CreatePartRequest{Name: "Pantalla"}},
		{"stock negativo", dto.CreatePartRequest{Name: "Pantalla", SKU: "SKU-1", Stock: -1, Price: decimal.NewFromInt(20)}},
		{"precio cero", dto.CreatePartRequest{Name: "Pantalla", SKU: "SKU-1", Price: decimal.Zero}},
		{"precio negativo", dto.CreatePartRequest{Name: "Pantalla", SKU: "SKU-1", Price: decimal.NewFromInt(-5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUpdatePart_ActualizacionParcial(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())
	created := createPart(t, uc, "Pantalla iPhone 12", "PANT-IP12")

	stock := 42
	out, err := uc.Update(created.ID, dto.UpdatePartRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 42, out.Stock)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.SKU, out.SKU)
	assert.Equal(t, created.CompatibleModels, out.CompatibleModels)
}

func TestUpdatePart_CambioDeSKUTomado(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())
	createPart(t, uc, "Pantalla iPhone 12", "PANT-IP12")
	other := createPart(t, uc, "Batería Samsung A52", "BAT-SA52")

	taken := "PANT-IP12"
	_, err := uc.Update(other.ID, dto.UpdatePartRequest{SKU: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdatePart_MismoSKUNoEsDuplicado(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())
	created := createPart(t, uc, "Pantalla iPhone 12", "PANT-IP12")

	same := "PANT-IP12"
	_, err := uc.Update(created.ID, dto.UpdatePartRequest{SKU: &same})
	assert.NoError(t, err)
}

func TestGetPart_ModelosCompatiblesNuncaNil(t *testing.T) {
	repo := newFakePartRepo()
	uc := inventory.NewPartUseCase(repo)
	require.NoError(t, repo.Create(&entity.Part{ID: "p1", Name: "Pin de carga", SKU: "PIN-USBC"}))

	out, err := uc.Get("p1")
	require.NoError(t, err)
	assert.NotNil(t, out.CompatibleModels)
	assert.Empty(t, out.CompatibleModels)
}

func TestDeletePart_NoExiste(t *testing.T) {
	uc := inventory.NewPartUseCase(newFakePartRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
