package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/injector"
)

// UploadMedia records the blob's metadata and returns its identifier. The
// bytes themselves are not retained; only their size matters to the
// simulation.
func (p *Service) UploadMedia(ctx context.Context, data []byte, mimeType, filename, caption string) (domain.MediaUploadResponse, error) {
	if err := p.injector.Delay(ctx, injector.CategoryMediaUpload); err != nil {
		return domain.MediaUploadResponse{}, err
	}
	if err := p.injector.MaybeFail(p.injector.Rate(injector.CategoryMediaUpload), constant.UploadFailedErr, mimeType); err != nil {
		return domain.MediaUploadResponse{}, err
	}

	rec := domain.MediaRecord{
		ID:         p.ids.Next(ident.NamespaceMedia),
		MimeType:   mimeType,
		FileSize:   int64(len(data)),
		Filename:   filename,
		Caption:    caption,
		UploadedAt: time.Now(),
	}
	p.media.Record(rec)

	p.logger.Infof("provider: media %s uploaded (%s, %d bytes)", rec.ID, rec.MimeType, rec.FileSize)
	return domain.MediaUploadResponse{ID: rec.ID}, nil
}

// DownloadMedia resolves an uploaded blob's metadata. An unknown
// identifier always fails with MediaNotFoundErr, regardless of the
// configured error rate; the probabilistic fault applies only to known
// records, like a real provider that 404s before it 503s.
func (p *Service) DownloadMedia(ctx context.Context, id string) (domain.MediaDownloadResponse, error) {
	if err := p.injector.Delay(ctx, injector.CategorySend); err != nil {
		return domain.MediaDownloadResponse{}, err
	}

	rec, ok := p.media.Get(id)
	if !ok {
		return domain.MediaDownloadResponse{}, errors.WithMessage(constant.MediaNotFoundErr, id)
	}

	if err := p.injector.MaybeFail(p.injector.Rate(injector.CategorySend), constant.ProviderUnavailableErr, "media download rejected"); err != nil {
		return domain.MediaDownloadResponse{}, err
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%s:%d", rec.ID, rec.MimeType, rec.FileSize)))
	return domain.MediaDownloadResponse{
		URL:      fmt.Sprintf("%s/%s", strings.TrimRight(p.cfg.StoragePath, "/"), rec.ID),
		MimeType: rec.MimeType,
		SHA256:   hex.EncodeToString(sum[:]),
		FileSize: rec.FileSize,
	}, nil
}
