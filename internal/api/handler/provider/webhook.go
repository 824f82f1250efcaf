package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omni/wa-simulator/internal/api/request"
	"omni/wa-simulator/pkg/paginator"
)

// RegisterWebhook godoc
// @Summary      Register a webhook
// @Description  Records a callback subscription; published events are forwarded to the URL
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        request body request.RegisterWebhookRequest true "Subscription"
// @Success      200 {object} domain.WebhookRegistration
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      503 {object} map[string]string "Provider unavailable"
// @Router       /v1/webhooks [post]
// @Security     BearerAuth
func (h *ProviderHandler) RegisterWebhook(c *gin.Context) {
	var req request.RegisterWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.service.RegisterWebhook(c, req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}

// SimulateInbound godoc
// @Summary      Simulate an inbound message
// @Description  Test-harness entry point: synthesizes an inbound message webhook and publishes it immediately
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        request body request.SimulateInboundRequest false "Overrides for the synthesized message"
// @Success      200 {object} domain.WebhookPayload
// @Router       /v1/simulate/inbound [post]
// @Security     BearerAuth
func (h *ProviderHandler) SimulateInbound(c *gin.Context) {
	var req request.SimulateInboundRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.SimulateInbound(req))
}

// Events godoc
// @Summary      List recent webhook events
// @Description  Reads the Redis-backed event journal; 503 when journaling is disabled
// @Tags         Webhooks
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page"
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]string "Journal disabled"
// @Router       /v1/webhooks/events [get]
// @Security     BearerAuth
func (h *ProviderHandler) Events(c *gin.Context) {
	if h.journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event journal is disabled"})
		return
	}

	pagination := paginator.New(c, h.pagination.PageSize, h.pagination.MaxHistory)

	events, total, err := h.journal.Recent(c, pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    events,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}
