package api

import (
	"omni/wa-simulator/internal/api/handler/provider"
	"omni/wa-simulator/internal/api/middleware"
)

// SetupAPIRoutes
// @title						WhatsApp Provider Simulator
// @version						1.0.0
// @description					Simulated asynchronous messaging provider API
// @Host						localhost:8088
// @BasePath					/
// @Schemes						http
func (s *Server) SetupAPIRoutes(providerHandler *provider.ProviderHandler, accessToken string) {
	r := s.engine

	// The simulator emulates a single business line, so the phone number
	// id the real API carries in the path is fixed by config instead.
	v1 := r.Group("v1")
	v1.Use(middleware.HandleAuth(accessToken))
	{
		v1.POST("/messages", providerHandler.Send)
		v1.GET("/messages", providerHandler.Messages)
		v1.GET("/messages/:id", providerHandler.GetMessage)
		v1.DELETE("/messages", providerHandler.ClearMessages)

		v1.POST("/media", providerHandler.Upload)
		v1.GET("/media/:media_id", providerHandler.Download)

		v1.POST("/webhooks", providerHandler.RegisterWebhook)
		v1.GET("/webhooks/events", providerHandler.Events)
		v1.POST("/simulate/inbound", providerHandler.SimulateInbound)

		v1.GET("/contacts", providerHandler.Contacts)
	}
}
