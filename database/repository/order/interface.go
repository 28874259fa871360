package orderRepo

import (
	"context"

	"tidybook/database"
	"tidybook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByDeviceID(ctx context.Context, deviceID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRepository instance using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("tidybook")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
