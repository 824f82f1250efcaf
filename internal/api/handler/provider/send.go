package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omni/wa-simulator/internal/api/request"
	"omni/wa-simulator/internal/domain"
)

// Send godoc
// @Summary      Send a message
// @Description  Accepts an outbound message and returns the provider acknowledgment; delivery progresses asynchronously
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body request.SendMessageRequest true "Message body"
// @Success      200 {object} domain.SendAck
// @Failure      400 {object} map[string]string "Invalid request body"
// @Failure      503 {object} map[string]string "Provider unavailable"
// @Router       /v1/messages [post]
// @Security     BearerAuth
func (h *ProviderHandler) Send(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		ack domain.SendAck
		err error
	)
	if req.Type == string(domain.TypeTemplate) {
		ack, err = h.service.SendTemplate(c, req)
	} else {
		ack, err = h.service.SendMessage(c, req)
	}
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, ack)
}
