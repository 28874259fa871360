package orderRepo

import (
	"context"
	"errors"
	"time"

	"tidybook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrOrderNotFound is returned when no order matches the given id.
var ErrOrderNotFound = errors.New("order not found")

// Create inserts a new order and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetByID returns an order by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetByDeviceID fetches all orders placed from a specific device.
func (r *mongoOrderRepo) GetByDeviceID(ctx context.Context, deviceID string) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"deviceId": deviceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order to a new status.
func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DeleteByID removes an order by ID.
func (r *mongoOrderRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
