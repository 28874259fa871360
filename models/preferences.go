package models

import "time"

// UserPreferences seeds a fresh quote session so returning customers start
// from their last configuration instead of defaults. Keyed by device id.
type UserPreferences struct {
	DeviceID                  string        `bson:"deviceId" json:"deviceId"`
	LastSelectedRooms         RoomSelection `bson:"lastSelectedRooms" json:"lastSelectedRooms"`
	PreferredServiceType      string        `bson:"preferredServiceType" json:"preferredServiceType"`
	PreferredFrequency        string        `bson:"preferredFrequency" json:"preferredFrequency"`
	PreferredPaymentFrequency string        `bson:"preferredPaymentFrequency" json:"preferredPaymentFrequency"`
	AllowVideoRecording       bool          `bson:"allowVideoRecording" json:"allowVideoRecording"`
	UpdatedAt                 time.Time     `bson:"updatedAt" json:"updatedAt"`
}
