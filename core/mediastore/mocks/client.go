package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stash-bridge/core/mediastore"
)

// Client is a mock implementation of mediastore.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucketName, objectName string) (mediastore.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName)
	return args.Get(0).(mediastore.ObjectInfo), args.Error(1)
}
