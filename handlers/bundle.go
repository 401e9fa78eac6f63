package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints.
	HomeHandler          gin.HandlerFunc
	ServicesHandler      gin.HandlerFunc
	OrderPageHandler     gin.HandlerFunc
	LegacyServiceHandler gin.HandlerFunc

	// Lead endpoints.
	SubmitLeadHandler gin.HandlerFunc

	// Assistant endpoints.
	AssistantSendHandler    gin.HandlerFunc
	AssistantHistoryHandler gin.HandlerFunc
}
