package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putInfo minioLib.UploadInfo
	putErr  error
	putKey  string

	removeErr error

	statInfo minioLib.ObjectInfo
	statErr  error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true

	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key

	return f.putInfo, f.putErr
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

func TestObjectStorage_EnsureBucketExists(t *testing.T) {
	ctx := context.Background()

	api := &fakeMinio{bucketExists: true}
	storage := newWithAPI(api, "avatars")
	require.NoError(t, storage.ensureBucketExists(ctx))
	assert.False(t, api.madeBucket)

	api = &fakeMinio{bucketExists: false}
	storage = newWithAPI(api, "avatars")
	require.NoError(t, storage.ensureBucketExists(ctx))
	assert.True(t, api.madeBucket)
}

func TestObjectStorage_EnsureBucketExists_Errors(t *testing.T) {
	ctx := context.Background()

	storage := newWithAPI(&fakeMinio{bucketExistsErr: errors.New("boom")}, "avatars")
	err := storage.ensureBucketExists(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check bucket existence")

	storage = newWithAPI(&fakeMinio{makeBucketErr: errors.New("denied")}, "avatars")
	err = storage.ensureBucketExists(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create bucket")
}

func TestObjectStorage_Upload(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{}
	storage := newWithAPI(api, "avatars")

	err := storage.Upload(ctx, "profile/abc.png", bytes.NewReader([]byte("img")), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "profile/abc.png", api.putKey)
}

func TestObjectStorage_Upload_Error(t *testing.T) {
	ctx := context.Background()
	storage := newWithAPI(&fakeMinio{putErr: errors.New("disk full")}, "avatars")

	err := storage.Upload(ctx, "profile/abc.png", bytes.NewReader(nil), 0, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestObjectStorage_Exists(t *testing.T) {
	ctx := context.Background()

	storage := newWithAPI(&fakeMinio{}, "avatars")
	exists, err := storage.Exists(ctx, "profile/abc.png")
	require.NoError(t, err)
	assert.True(t, exists)

	notFound := minioLib.ErrorResponse{Code: "NoSuchKey"}
	storage = newWithAPI(&fakeMinio{statErr: notFound}, "avatars")
	exists, err = storage.Exists(ctx, "profile/missing.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestObjectStorage_Delete(t *testing.T) {
	ctx := context.Background()

	storage := newWithAPI(&fakeMinio{}, "avatars")
	require.NoError(t, storage.Delete(ctx, "profile/abc.png"))

	storage = newWithAPI(&fakeMinio{removeErr: errors.New("nope")}, "avatars")
	err := storage.Delete(ctx, "profile/abc.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete object")
}
