package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// Los documentos anteriores a la desnormalización no traen user_name,
// employee_name ni service_names; se decodifican como valores vacíos.
type appointmentDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	EmployeeID      string             `bson:"employee_id"`
	ServiceIDs      []string           `bson:"service_ids"`
	AppointmentDate time.Time          `bson:"appointment_date"`
	EmployeeName    string             `bson:"employee_name,omitempty"`
	UserName        string             `bson:"user_name,omitempty"`
	ServiceNames    []string           `bson:"service_names"`
	State           string             `bson:"state"`
	TotalCost       int64              `bson:"total_cost"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *appointmentDocument) toEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		EmployeeID:      d.EmployeeID,
		ServiceIDs:      d.ServiceIDs,
		AppointmentDate: d.AppointmentDate,
		UserName:        d.UserName,
		EmployeeName:    d.EmployeeName,
		ServiceNames:    d.ServiceNames,
		TotalCost:       d.TotalCost,
		State:           entity.AppointmentState(d.State),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// AppointmentRepo adaptador de la colección appointments.
type AppointmentRepo struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepo {
	return &AppointmentRepo{coll: db.Collection(CollAppointments)}
}

func (r *AppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	serviceNames := a.ServiceNames
	if serviceNames == nil {
		serviceNames = []string{}
	}
	res, err := r.coll.InsertOne(ctx, appointmentDocument{
		UserID:          a.UserID,
		EmployeeID:      a.EmployeeID,
		ServiceIDs:      a.ServiceIDs,
		AppointmentDate: a.AppointmentDate,
		EmployeeName:    a.EmployeeName,
		UserName:        a.UserName,
		ServiceNames:    serviceNames,
		State:           string(a.State),
		TotalCost:       a.TotalCost,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	var doc appointmentDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	var docs []appointmentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	list := make([]*entity.Appointment, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id string, patch entity.AppointmentPatch) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.State != nil {
		set["state"] = string(*patch.State)
	}
	if patch.AppointmentDate != nil {
		set["appointment_date"] = *patch.AppointmentDate
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update appointment: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete appointment: %w", err)
	}
	return res.DeletedCount > 0, nil
}

type groupCount struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

func (r *AppointmentRepo) CountByState(ctx context.Context) (map[entity.AppointmentState]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$state"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	rows, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := make(map[entity.AppointmentState]int64, len(rows))
	for _, g := range rows {
		out[entity.AppointmentState(g.Key)] = g.Count
	}
	return out, nil
}

func (r *AppointmentRepo) TopServices(ctx context.Context, limit int) ([]entity.ServiceUsage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$service_names"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$service_names"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	rows, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ServiceUsage, 0, len(rows))
	for _, g := range rows {
		out = append(out, entity.ServiceUsage{Name: g.Key, Count: g.Count})
	}
	return out, nil
}

func (r *AppointmentRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]groupCount, error) {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate appointments: %w", err)
	}
	var rows []groupCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode aggregate: %w", err)
	}
	return rows, nil
}
