package settings

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"atcoder-notifier/internal/domain/model"
	"atcoder-notifier/internal/domain/ports"
)

// GCSStore keeps the settings in a Cloud Storage object.
type GCSStore struct {
	client *storage.Client
	bucket string
	object string
}

var _ ports.SettingsStore = (*GCSStore)(nil)

// NewGCSStore returns a store backed by gs://bucket/object.
func NewGCSStore(client *storage.Client, bucket, object string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket, object: object}
}

// Load reads the object, returning defaults when it does not exist.
func (g *GCSStore) Load(ctx context.Context) (model.Settings, error) {
	r, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("open gs://%s/%s: %w", g.bucket, g.object, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return model.Settings{}, fmt.Errorf("read gs://%s/%s: %w", g.bucket, g.object, err)
	}
	return decode(data)
}

// Save overwrites the object with the encoded settings.
func (g *GCSStore) Save(ctx context.Context, s model.Settings) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	w := g.client.Bucket(g.bucket).Object(g.object).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("write to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close storage writer: %w", err)
	}
	return nil
}
