package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"omni/wa-simulator/pkg/paginator"
)

// Messages godoc
// @Summary      List messages
// @Description  Lists recorded outbound messages newest-first with pagination
// @Tags         Messages
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/messages [get]
// @Security     BearerAuth
func (h *ProviderHandler) Messages(c *gin.Context) {
	pagination := paginator.New(c, h.pagination.PageSize, h.pagination.MaxHistory)

	msgs, total, err := h.service.Messages(c, pagination.Size, pagination.From)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    msgs,
		"meta": gin.H{
			"page_size": pagination.Size,
			"page":      pagination.Page,
			"total":     total,
		},
	})
}

// GetMessage godoc
// @Summary      Get a message
// @Description  Returns one recorded message with its current delivery status
// @Tags         Messages
// @Produce      json
// @Param        id path string true "Message ID"
// @Success      200 {object} domain.Message
// @Failure      404 {object} map[string]string "Message not found"
// @Router       /v1/messages/{id} [get]
// @Security     BearerAuth
func (h *ProviderHandler) GetMessage(c *gin.Context) {
	msg, err := h.service.GetMessage(c, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// ClearMessages godoc
// @Summary      Clear messages
// @Description  Removes all recorded messages and cancels pending status progressions
// @Tags         Messages
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /v1/messages [delete]
// @Security     BearerAuth
func (h *ProviderHandler) ClearMessages(c *gin.Context) {
	h.service.ClearMessages(c)
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

// Contacts godoc
// @Summary      List contacts
// @Description  Lists all known contacts, seeded and synthesized alike
// @Tags         Contacts
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /v1/contacts [get]
// @Security     BearerAuth
func (h *ProviderHandler) Contacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    h.service.Contacts(c),
	})
}
