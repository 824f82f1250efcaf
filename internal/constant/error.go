package constant

import "github.com/pkg/errors"

const (
	ProviderUnavailableErrMsg = "provider unavailable"
	MediaNotFoundErrMsg       = "media not found"
	MessageNotFoundErrMsg     = "message not found"
	UploadFailedErrMsg        = "media upload failed"
	ProgressionExistsErrMsg   = "status progression already running"
)

var (
	ProviderUnavailableErr = errors.New(ProviderUnavailableErrMsg)
	MediaNotFoundErr       = errors.New(MediaNotFoundErrMsg)
	MessageNotFoundErr     = errors.New(MessageNotFoundErrMsg)
	UploadFailedErr        = errors.New(UploadFailedErrMsg)
	ProgressionExistsErr   = errors.New(ProgressionExistsErrMsg)
)
