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

var _ repository.AccountRepository = (*AccountRepo)(nil)

type accountDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FirstName      string             `bson:"first_name"`
	LastName       string             `bson:"last_name"`
	Email          string             `bson:"email"`
	Phone          string             `bson:"phone"`
	Role           string             `bson:"role"`
	HashedPassword string             `bson:"hashed_password"`
	IsActive       bool               `bson:"is_active"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d *accountDocument) toEntity() *entity.User {
	return &entity.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		PasswordHash: d.HashedPassword,
		Role:         d.Role,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// AccountRepo un pool de cuentas (colección users o employees).
type AccountRepo struct {
	coll *mongo.Collection
}

// NewAccountRepository construye el adaptador sobre la colección indicada.
func NewAccountRepository(db *mongo.Database, collection string) *AccountRepo {
	return &AccountRepo{coll: db.Collection(collection)}
}

func (r *AccountRepo) Create(ctx context.Context, user *entity.User) error {
	doc := accountDocument{
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           user.Role,
		HashedPassword: user.PasswordHash,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *AccountRepo) FindByField(ctx context.Context, field entity.LookupField, value string) (*entity.User, error) {
	var filter bson.M
	switch field {
	case entity.FieldID:
		oid, ok := objectID(value)
		if !ok {
			return nil, nil
		}
		filter = bson.M{"_id": oid}
	case entity.FieldEmail:
		filter = bson.M{"email": value}
	default:
		return nil, fmt.Errorf("campo de búsqueda no soportado: %s", field)
	}

	var doc accountDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s by %s: %w", r.coll.Name(), field, err)
	}
	return doc.toEntity(), nil
}

func (r *AccountRepo) List(ctx context.Context) ([]*entity.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.coll.Name(), err)
	}
	var docs []accountDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	list := make([]*entity.User, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

func (r *AccountRepo) Update(ctx context.Context, id string, patch entity.UserPatch, updatedAt time.Time) (*entity.User, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, nil
	}
	set := bson.M{"updated_at": updatedAt}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}

	var doc accountDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	return doc.toEntity(), nil
}

func (r *AccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	return res.DeletedCount > 0, nil
}

func (r *AccountRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.coll.Name(), err)
	}
	return n, nil
}
