package provider

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload godoc
// @Summary      Upload media
// @Description  Stores media metadata and returns its identifier; the request body is the raw blob
// @Tags         Media
// @Accept       octet-stream
// @Produce      json
// @Param        filename query string false "Original filename"
// @Param        caption query string false "Caption"
// @Success      200 {object} domain.MediaUploadResponse
// @Failure      400 {object} map[string]string "Unreadable body"
// @Failure      503 {object} map[string]string "Upload failed"
// @Router       /v1/media [post]
// @Security     BearerAuth
func (h *ProviderHandler) Upload(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mimeType := c.ContentType()
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	resp, err := h.service.UploadMedia(c, data, mimeType, c.Query("filename"), c.Query("caption"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Download godoc
// @Summary      Resolve media
// @Description  Returns download metadata for an uploaded media identifier
// @Tags         Media
// @Produce      json
// @Param        media_id path string true "Media ID"
// @Success      200 {object} domain.MediaDownloadResponse
// @Failure      404 {object} map[string]string "Media not found"
// @Failure      503 {object} map[string]string "Provider unavailable"
// @Router       /v1/media/{media_id} [get]
// @Security     BearerAuth
func (h *ProviderHandler) Download(c *gin.Context) {
	resp, err := h.service.DownloadMedia(c, c.Param("media_id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
