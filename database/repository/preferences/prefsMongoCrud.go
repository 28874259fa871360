package prefsRepo

import (
	"context"
	"errors"
	"time"

	"tidybook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrPreferencesNotFound is returned when a device has no stored preferences
// to delete.
var ErrPreferencesNotFound = errors.New("preferences not found")

// GetByDeviceID returns stored preferences for a device, or nil when the
// device has never completed a quote.
func (r *mongoPrefsRepo) GetByDeviceID(ctx context.Context, deviceID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := r.coll.FindOne(ctx, bson.M{"deviceId": deviceID}).Decode(&prefs)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// Upsert writes the latest preferences for a device.
func (r *mongoPrefsRepo) Upsert(ctx context.Context, prefs models.UserPreferences) error {
	prefs.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"deviceId": prefs.DeviceID}, prefs, opts)
	return err
}

// DeleteByDeviceID removes preferences for a device.
func (r *mongoPrefsRepo) DeleteByDeviceID(ctx context.Context, deviceID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"deviceId": deviceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrPreferencesNotFound
	}
	return nil
}
