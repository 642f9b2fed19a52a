package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Peluqueria-api/internal/domain"
	"github.com/jhoicas/Peluqueria-api/internal/domain/entity"
	"github.com/jhoicas/Peluqueria-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

type serviceDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     *string            `bson:"description"`
	DurationMinutes int                `bson:"duration_minutes"`
	Price           int64              `bson:"price"`
	ImgPath         string             `bson:"img_path"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (d *serviceDocument) toEntity() *entity.Service {
	return &entity.Service{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		Price:           d.Price,
		ImgPath:         d.ImgPath,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ServiceRepo adaptador de la colección services.
type ServiceRepo struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepo {
	return &ServiceRepo{coll: db.Collection(CollServices)}
}

func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	res, err := r.coll.InsertOne(ctx, serviceDocument{
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		ImgPath:         s.ImgPath,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrServiceNameExists
		}
		return fmt.Errorf("insert service: %w", err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *ServiceRepo) GetByName(ctx context.Context, name string) (*entity.Service, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *ServiceRepo) findOne(ctx context.Context, filter bson.M) (*entity.Service, error) {
	var doc serviceDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	var docs []serviceDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	list := make([]*entity.Service, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id string, patch entity.ServicePatch, updatedAt time.Time) (*entity.Service, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	set := bson.M{"updated_at": updatedAt}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.DurationMinutes != nil {
		set["duration_minutes"] = *patch.DurationMinutes
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.ImgPath != nil {
		set["img_path"] = *patch.ImgPath
	}

	var doc serviceDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrServiceNameExists
		}
		return nil, fmt.Errorf("update service: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *ServiceRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return n, nil
}
