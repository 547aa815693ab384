package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"enroll/config"
	domainerrors "enroll/internal/domain/errors"
	"enroll/internal/domain/service"
	"enroll/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultMaxUploadBytes = 5 << 20 // 5 MiB

// uploadService implements the UploadUsecase interface on top of the object storage.
type uploadService struct {
	storage        service.ObjectStorage
	publicBaseURL  string
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(storage service.ObjectStorage, cfg *config.Config, logger *slog.Logger) usecase.UploadUsecase {
	maxBytes := int64(defaultMaxUploadBytes)
	var baseURL string
	if cfg.Storage != nil {
		if cfg.Storage.MaxUploadBytes > 0 {
			maxBytes = cfg.Storage.MaxUploadBytes
		}
		baseURL = strings.TrimRight(cfg.Storage.PublicBaseURL, "/")
	}

	return &uploadService{
		storage:        storage,
		publicBaseURL:  baseURL,
		maxUploadBytes: maxBytes,
		logger:         logger,
	}
}

// UploadImage stores one profile image and returns the reference URL the
// client passes back as imageRef at registration.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("only image uploads are accepted")
	}
	if input.Size > srv.maxUploadBytes {
		return nil, domainerrors.ErrUploadTooLarge.WrapMessage("uploaded file exceeds the size limit")
	}

	// Fresh UUID key; the original file name only contributes its extension.
	key := "profile/" + uuid.NewString() + strings.ToLower(path.Ext(input.FileName))

	if err := srv.storage.Upload(ctx, key, input.Reader, input.Size, input.ContentType); err != nil {
		srv.logger.Error("Failed to store uploaded image", "error", err, "key", key)

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, "failed to store uploaded image")
	}

	srv.logger.Debug("Image uploaded", "key", key, "size", input.Size)

	return &usecase.UploadOutput{
		Key: key,
		URL: srv.publicBaseURL + "/" + key,
	}, nil
}
