package model

import (
	"context"
	"io"
)

// AssetStorage holds the published game client bundle.
type AssetStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (Asset, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Asset is an open object from AssetStorage. The caller closes Body.
type Asset struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
	ETag        string
}
