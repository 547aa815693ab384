package usecase

import (
	"context"
	"io"
)

// UploadInput carries one uploaded file from the HTTP boundary.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadOutput returns where the file ended up. The URL is what clients pass
// back as the imageRef field at registration.
type UploadOutput struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadUsecase defines the interface for storing uploaded profile images.
type UploadUsecase interface {
	UploadImage(ctx context.Context, input *UploadInput) (*UploadOutput, error)
}
