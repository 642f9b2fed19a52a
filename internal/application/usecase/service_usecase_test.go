package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Peluqueria-api/internal/application/dto"
	"github.com/jhoicas/Peluqueria-api/internal/application/usecase"
	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/infrastructure/memory"
)

func newServiceUseCase() *usecase.ServiceUseCase {
	return usecase.NewServiceUseCase(memory.NewServiceRepository(), dto.NewValidator())
}

func serviceReq(name string) dto.CreateServiceRequest {
	return dto.CreateServiceRequest{Name: name, DurationMinutes: 45, Price: 30000, ImgPath: "/img/corte.png"}
}

func TestServiceUseCase_CreateYGet(t *testing.T) {
	uc := newServiceUseCase()
	ctx := context.Background()

	s, err := uc.Create(ctx, serviceReq("Corte"))
	require.NoError(t, err)
	assert.Nil(t, s.Description)

	got, err := uc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corte", got.Name)
	assert.Equal(t, int64(30000), got.Price)

	_, err = uc.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestServiceUseCase_NombreDuplicado(t *testing.T) {
	uc := newServiceUseCase()
	ctx := context.Background()
	_, err := uc.Create(ctx, serviceReq("Corte"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, serviceReq("Corte"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestServiceUseCase_ImagenRequerida(t *testing.T) {
	in := serviceReq("Corte")
	in.ImgPath = ""
	_, err := newServiceUseCase().Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestServiceUseCase_Update(t *testing.T) {
	uc := newServiceUseCase()
	ctx := context.Background()
	corte, err := uc.Create(ctx, serviceReq("Corte"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, serviceReq("Tinte"))
	require.NoError(t, err)

	_, err = uc.Update(ctx, corte.ID, dto.UpdateServiceRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyPatch)

	tinte := "Tinte"
	_, err = uc.Update(ctx, corte.ID, dto.UpdateServiceRequest{Name: &tinte})
	assert.ErrorIs(t, err, domain.ErrServiceNameExists)

	price := int64(35000)
	desc := "Corte clásico"
	out, err := uc.Update(ctx, corte.ID, dto.UpdateServiceRequest{Price: &price, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, int64(35000), out.Price)
	require.NotNil(t, out.Description)
	assert.Equal(t, "Corte clásico", *out.Description)
	assert.Equal(t, "Corte", out.Name)

	_, err = uc.Update(ctx, "no-existe", dto.UpdateServiceRequest{Price: &price})
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}
