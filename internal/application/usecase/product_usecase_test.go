package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

func newProductUC(s *apptest.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(s.Atomic().Products)
}

func TestProductCreate_NombreUnico(t *testing.T) {
	s := apptest.NewStore()
	uc := newProductUC(s)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Tornillos", Weight: apptest.Kg(2)})
	require.NoError(t, err)
	assert.False(t, created.IsLegacy, "un producto nuevo no es legacy")

	_, err = uc.Create(dto.CreateProductRequest{Name: "Tornillos", Weight: apptest.Kg(3)})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists, "el nombre de producto es único")
}

func TestProductMarkLegacy_UnSoloSentido(t *testing.T) {
	s := apptest.NewStore()
	p := s.SeedProduct("Repuesto viejo", apptest.Kg(5), false)
	uc := newProductUC(s)

	resp, err := uc.MarkLegacy(p.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsLegacy)

	_, err = uc.MarkLegacy(p.ID)
	assert.ErrorIs(t, err, domain.ErrProductIsAlreadyLegacy,
		"marcar legacy es irreversible y no se repite")
}

func TestProductUpdate_LegacyEsSoloLectura(t *testing.T) {
	s := apptest.NewStore()
	p := s.SeedProduct("Repuesto viejo", apptest.Kg(5), true)
	uc := newProductUC(s)

	_, err := uc.Update(p.ID, dto.UpdateProductRequest{Weight: &p.Weight})
	assert.ErrorIs(t, err, domain.ErrProductIsAlreadyLegacy,
		"un producto legacy no admite ediciones")
}

func TestProductList_FiltroLegacy(t *testing.T) {
	s := apptest.NewStore()
	s.SeedProduct("Vigente", apptest.Kg(1), false)
	s.SeedProduct("Retirado", apptest.Kg(1), true)
	uc := newProductUC(s)

	all, err := uc.List(nil, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all.Items, 2, "sin filtro se listan todos")

	legacy := true
	onlyLegacy, err := uc.List(&legacy, 20, 0)
	require.NoError(t, err)
	require.Len(t, onlyLegacy.Items, 1)
	assert.Equal(t, "Retirado", onlyLegacy.Items[0].Name)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	s := apptest.NewStore()
	uc := newProductUC(s)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
