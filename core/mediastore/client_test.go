package mediastore_test

import (
	"context"
	"errors"
	"testing"

	"stash-bridge/core/mediastore"
	"stash-bridge/core/mediastore/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVerifyOK(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "archive", "janedoe/video/123.mp4").
		Return(mediastore.ObjectInfo{Key: "janedoe/video/123.mp4", Size: 1024}, nil)

	err := mediastore.Verify(context.Background(), mockClient, "archive", "janedoe/video/123.mp4", 1024)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestVerifySkipsSizeCheckWhenUnknown(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "archive", "obj").
		Return(mediastore.ObjectInfo{Key: "obj", Size: 555}, nil)

	// Zero metadata size means the row never recorded one
	err := mediastore.Verify(context.Background(), mockClient, "archive", "obj", 0)
	assert.NoError(t, err)
}

func TestVerifyObjectMissing(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "archive", "gone.mp4").
		Return(mediastore.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

	err := mediastore.Verify(context.Background(), mockClient, "archive", "gone.mp4", 1024)
	assert.ErrorIs(t, err, mediastore.ErrObjectMissing)
	assert.Contains(t, err.Error(), "gone.mp4")
}

func TestVerifySizeMismatch(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "archive", "short.mp4").
		Return(mediastore.ObjectInfo{Key: "short.mp4", Size: 100}, nil)

	err := mediastore.Verify(context.Background(), mockClient, "archive", "short.mp4", 1024)
	assert.ErrorIs(t, err, mediastore.ErrSizeMismatch)
}

func TestVerifyOtherStatError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("StatObject", mock.Anything, "archive", "obj").
		Return(mediastore.ObjectInfo{}, errors.New("connection refused"))

	err := mediastore.Verify(context.Background(), mockClient, "archive", "obj", 1024)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, mediastore.ErrObjectMissing)
	assert.NotErrorIs(t, err, mediastore.ErrSizeMismatch)
}
