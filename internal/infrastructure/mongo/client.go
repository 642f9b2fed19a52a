// Package mongo implementa los puertos de persistencia sobre MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Peluqueria-api/pkg/config"
)

// Nombres de las colecciones.
const (
	CollUsers        = "users"
	CollEmployees    = "employees"
	CollServices     = "services"
	CollAppointments = "appointments"
)

// Connect abre el cliente, verifica la conexión y devuelve la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(25).
		SetMinPoolSize(2).
		SetMaxConnIdleTime(30 * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.DBName), nil
}

// EnsureIndexes crea los índices únicos: email por pool y nombre de servicio.
// La unicidad de email entre pools se valida en la capa de aplicación.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := []struct {
		coll, field string
	}{
		{CollUsers, "email"},
		{CollEmployees, "email"},
		{CollServices, "name"},
	}
	for _, u := range unique {
		_, err := db.Collection(u.coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: u.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("índice %s.%s: %w", u.coll, u.field, err)
		}
	}
	return nil
}

// objectID convierte un id hex; ok=false si no es un ObjectID válido (se trata como inexistente).
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
