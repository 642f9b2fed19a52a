package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
)

func TestAppointmentRepo_GetByIDDocumentoHeredado(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sin nombres desnormalizados", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.DB)
		oid := primitive.NewObjectID()
		date := time.Date(2024, 1, 8, 20, 30, 0, 0, time.UTC)
		ns := mt.DB.Name() + "." + CollAppointments
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "user_id", Value: "u1"},
			{Key: "employee_id", Value: "e1"},
			{Key: "service_ids", Value: bson.A{"s1"}},
			{Key: "appointment_date", Value: date},
			{Key: "state", Value: "pending"},
			{Key: "total_cost", Value: int64(100)},
		}))

		a, err := repo.GetByID(context.Background(), oid.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, a)
		assert.Equal(mt, oid.Hex(), a.ID)
		assert.Equal(mt, "", a.UserName)
		assert.Empty(mt, a.ServiceNames)
		assert.Equal(mt, entity.StatePending, a.State)
		assert.Equal(mt, int64(100), a.TotalCost)
	})

	mt.Run("id inválido", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.DB)
		a, err := repo.GetByID(context.Background(), "no-es-objectid")
		require.NoError(mt, err)
		assert.Nil(mt, a)
	})
}

func TestAppointmentRepo_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	state := entity.StateCompleted
	patch := entity.AppointmentPatch{State: &state, UpdatedAt: time.Now().UTC()}

	mt.Run("sin coincidencias", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})
		ok, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), patch)
		require.NoError(mt, err)
		assert.False(mt, ok)
	})

	mt.Run("actualizada", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		ok, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), patch)
		require.NoError(mt, err)
		assert.True(mt, ok)
	})
}

func TestAppointmentRepo_CountByState(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("agrupa por estado", func(mt *mtest.T) {
		repo := NewAppointmentRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollAppointments
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "pending"}, {Key: "count", Value: int64(3)}},
			bson.D{{Key: "_id", Value: "cancelled"}, {Key: "count", Value: int64(1)}},
		))
		got, err := repo.CountByState(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, map[entity.AppointmentState]int64{
			entity.StatePending:   3,
			entity.StateCancelled: 1,
		}, got)
	})
}

func TestAccountRepo_CreateEmailDuplicado(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("índice único", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB, CollUsers)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		err := repo.Create(context.Background(), &entity.User{Email: "a@x.com"})
		assert.ErrorIs(mt, err, domain.ErrEmailAlreadyExists)
	})

	mt.Run("sin coincidencias por email", func(mt *mtest.T) {
		repo := NewAccountRepository(mt.DB, CollUsers)
		ns := mt.DB.Name() + "." + CollUsers
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		u, err := repo.FindByField(context.Background(), entity.FieldEmail, "nadie@x.com")
		require.NoError(mt, err)
		assert.Nil(mt, u)
	})
}
