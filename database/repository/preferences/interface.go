package prefsRepo

import (
	"context"

	"tidybook/database"
	"tidybook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PreferencesRepository interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*models.UserPreferences, error)
	Upsert(ctx context.Context, prefs models.UserPreferences) error
	DeleteByDeviceID(ctx context.Context, deviceID string) error
}

type mongoPrefsRepo struct {
	coll *mongo.Collection
}

// NewMongoPreferencesRepo returns a new PreferencesRepository instance using MongoDB.
func NewMongoPreferencesRepo() PreferencesRepository {
	db := database.MongoClient.Database("tidybook")
	return &mongoPrefsRepo{
		coll: db.Collection("preferences"),
	}
}
