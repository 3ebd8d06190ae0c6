// Package store persists the engine's slots in a gocloud blob bucket.
package store

import (
	"context"
	"strings"

	"vgb/config"
	"vgb/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const contentType = "text/plain; charset=utf-8"

// Params defines the parameters required for the slot store
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
}

type blobStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket: a URL understood by gocloud, a local
// directory, or an in-memory bucket when neither is set. The bucket is
// closed when the application stops.
func New(params Params) (repository.SlotStore, error) {
	bucket, err := openBucket(context.Background(), params.Config.Store)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(bucket.Close(), "failed to close slot bucket")
		},
	})

	return NewBlobStore(bucket), nil
}

// NewBlobStore adapts an open bucket. The caller owns the bucket.
func NewBlobStore(bucket *blob.Bucket) repository.SlotStore {
	return &blobStore{bucket: bucket}
}

func openBucket(ctx context.Context, cfg config.StoreConfig) (*blob.Bucket, error) {
	switch {
	case strings.TrimSpace(cfg.URL) != "":
		bucket, err := blob.OpenBucket(ctx, cfg.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.URL)
		}

		return bucket, nil
	case strings.TrimSpace(cfg.Dir) != "":
		bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open directory bucket %s", cfg.Dir)
		}

		return bucket, nil
	default:
		return memblob.OpenBucket(nil), nil
	}
}

func (s *blobStore) Get(ctx context.Context, slot repository.Slot) (string, error) {
	data, err := s.bucket.ReadAll(ctx, string(slot))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrSlotNotFound
		}

		return "", errors.Wrapf(err, "failed to read slot %s", slot)
	}

	return string(data), nil
}

func (s *blobStore) Set(ctx context.Context, slot repository.Slot, value string) error {
	err := s.bucket.WriteAll(ctx, string(slot), []byte(value), &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to write slot %s", slot)
	}

	return nil
}

func (s *blobStore) Remove(ctx context.Context, slot repository.Slot) error {
	err := s.bucket.Delete(ctx, string(slot))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to remove slot %s", slot)
	}

	return nil
}
