// Package publish uploads a built game client to asset storage.
package publish

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"path/filepath"

	"github.com/dtroode/spacegame-server/internal/logger"
	"github.com/dtroode/spacegame-server/internal/model"
)

const defaultContentType = "application/octet-stream"

// Publisher copies a directory tree into asset storage under a key prefix.
type Publisher struct {
	storage model.AssetStorage
	prefix  string
	logger  *logger.Logger
}

func NewPublisher(storage model.AssetStorage, prefix string, logger *logger.Logger) *Publisher {
	return &Publisher{storage: storage, prefix: prefix, logger: logger}
}

// Dir uploads every regular file of fsys and returns the number of objects
// written. Keys use forward slashes regardless of the host OS.
func (p *Publisher) Dir(ctx context.Context, fsys fs.FS) (int, error) {
	uploaded := 0

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.file(ctx, fsys, name); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("failed to publish game client: %w", err)
	}

	p.logger.Info("Publisher: game client published",
		"prefix", p.prefix,
		"objects", uploaded)

	return uploaded, nil
}

func (p *Publisher) file(ctx context.Context, fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", name, err)
	}

	key := path.Join(p.prefix, filepath.ToSlash(name))
	if err := p.storage.Upload(ctx, key, f, info.Size(), contentType(name)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Debug("Publisher: uploaded object",
		"key", key,
		"size", info.Size())

	return nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}
