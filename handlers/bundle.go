package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle assembles every endpoint handler for route registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListRoomsHandler             gin.HandlerFunc
	GetRoomTiersHandler          gin.HandlerFunc
	GetRoomAddOnsHandler         gin.HandlerFunc
	GetRoomReductionsHandler     gin.HandlerFunc
	EvaluateCompatibilityHandler gin.HandlerFunc
	UpdateRoomRatesHandler       gin.HandlerFunc

	// Quote wizard endpoints.
	InitiateQuoteHandler         gin.HandlerFunc
	GetQuoteHandler              gin.HandlerFunc
	UpdateQuoteHandler           gin.HandlerFunc
	SaveRoomConfigurationHandler gin.HandlerFunc
	CompleteQuoteHandler         gin.HandlerFunc
	CancelQuoteHandler           gin.HandlerFunc

	// Checkout endpoints.
	ConfirmCheckoutHandler gin.HandlerFunc

	// Order endpoints.
	GetOrderHandler    gin.HandlerFunc
	ListOrdersHandler  gin.HandlerFunc
	CancelOrderHandler gin.HandlerFunc
	DeleteOrderHandler gin.HandlerFunc

	// Terms endpoints.
	GetTermsHandler    gin.HandlerFunc
	AcceptTermsHandler gin.HandlerFunc
	TermsStatusHandler gin.HandlerFunc

	// Support chat endpoints.
	SupportRootHandler  gin.HandlerFunc
	SupportReplyHandler gin.HandlerFunc

	// Preferences endpoints.
	GetPreferencesHandler    gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	DeletePreferencesHandler gin.HandlerFunc
}
