package models

import "time"

// Contact details collected by the checkout panel.
type Contact struct {
	FirstName string `bson:"firstName" json:"firstName" binding:"required"`
	LastName  string `bson:"lastName" json:"lastName" binding:"required"`
	Email     string `bson:"email" json:"email" binding:"required,email"`
	Phone     string `bson:"phone" json:"phone"`
}

// Address is the service address for the cleaning.
type Address struct {
	Line1      string `bson:"line1" json:"line1" binding:"required"`
	Line2      string `bson:"line2" json:"line2,omitempty"`
	City       string `bson:"city" json:"city" binding:"required"`
	State      string `bson:"state" json:"state" binding:"required"`
	PostalCode string `bson:"postalCode" json:"postalCode" binding:"required"`
}

// Payment methods.
const (
	PaymentMethodCard     = "card"
	PaymentMethodInPerson = "in_person"
)

// PaymentInfo describes how the order will be paid.
type PaymentInfo struct {
	Method          string `bson:"method" json:"method" binding:"required"`
	PaymentIntentID string `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	ClientSecret    string `bson:"-" json:"clientSecret,omitempty"`
	Status          string `bson:"status" json:"status"`
}

// CheckoutData is the full payload the checkout flow submits alongside a
// completed quote session.
type CheckoutData struct {
	Contact Contact     `bson:"contact" json:"contact" binding:"required"`
	Address Address     `bson:"address" json:"address" binding:"required"`
	Payment PaymentInfo `bson:"payment" json:"payment" binding:"required"`
	// AcceptedTerms is the inline acceptance for sessions without a device
	// id; device-bound sessions are checked against the stored acceptance
	// record instead.
	AcceptedTerms bool `bson:"acceptedTerms" json:"acceptedTerms"`
}

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusNeedsQuote = "needs_quote"
	OrderStatusCancelled  = "cancelled"
)

// Order is a confirmed (or quote-pending) checkout persisted to Mongo.
type Order struct {
	ID        string       `bson:"id" json:"id"`
	SessionID string       `bson:"sessionId" json:"sessionId"`
	DeviceID  string       `bson:"deviceId,omitempty" json:"deviceId,omitempty"`
	Quote     QuoteResult  `bson:"quote" json:"quote"`
	Checkout  CheckoutData `bson:"checkout" json:"checkout"`
	Status    string       `bson:"status" json:"status"`
	CreatedAt time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time    `bson:"updatedAt" json:"updatedAt"`
}
