package provider

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"omni/wa-simulator/internal/api/request"
	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

type ProviderHandler struct {
	service    providerService
	journal    EventJournal
	pagination config.Pagination
}

type providerService interface {
	SendMessage(ctx context.Context, req request.SendMessageRequest) (domain.SendAck, error)
	SendTemplate(ctx context.Context, req request.SendMessageRequest) (domain.SendAck, error)
	UploadMedia(ctx context.Context, data []byte, mimeType, filename, caption string) (domain.MediaUploadResponse, error)
	DownloadMedia(ctx context.Context, id string) (domain.MediaDownloadResponse, error)
	RegisterWebhook(ctx context.Context, req request.RegisterWebhookRequest) (domain.WebhookRegistration, error)
	SimulateInbound(req request.SimulateInboundRequest) domain.WebhookPayload
	Messages(ctx context.Context, limit, offset int) ([]domain.Message, int64, error)
	GetMessage(ctx context.Context, id string) (domain.Message, error)
	ClearMessages(ctx context.Context)
	Contacts(ctx context.Context) []domain.Contact
}

// EventJournal is satisfied by the Redis journal; nil when journaling is
// disabled.
type EventJournal interface {
	Recent(ctx context.Context, limit, offset int) ([]domain.WebhookPayload, int64, error)
}

func New(service providerService, journal EventJournal, pagination config.Pagination) *ProviderHandler {
	return &ProviderHandler{
		service:    service,
		journal:    journal,
		pagination: pagination,
	}
}

// fail maps the service's categorized errors onto provider-style HTTP
// statuses.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, constant.MediaNotFoundErr), errors.Is(err, constant.MessageNotFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, constant.ProviderUnavailableErr), errors.Is(err, constant.UploadFailedErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
