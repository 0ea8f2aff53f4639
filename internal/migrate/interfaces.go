package migrate

import (
	"context"
	"encoding/json"

	"github.com/casarosier/cms-migrate/internal/legacy"
	"github.com/casarosier/cms-migrate/pkg/models"
)

// LegacyStore is the read side of the pipeline.
type LegacyStore interface {
	GetByKey(ctx context.Context, key string) (json.RawMessage, error)
	GetByPrefix(ctx context.Context, prefix string) ([]legacy.Row, error)
	ScanKeysByPrefix(ctx context.Context, prefix string, pageSize int) ([]string, error)
	GetManyByKeys(ctx context.Context, keys []string, chunkSize int) ([]legacy.Row, error)
}

// ContentStore is the write side. Upsert is create-or-fully-replace keyed
// by the document's deterministic id, so reruns overwrite rather than
// duplicate.
type ContentStore interface {
	Upsert(ctx context.Context, id string, doc interface{}) error
}

// ImageUploader rehydrates a remote image into the asset store. A nil
// return means "no image" — invalid URLs and failed transfers alike; the
// owning entity still migrates.
type ImageUploader interface {
	UploadImage(ctx context.Context, url string) *models.Image
}
