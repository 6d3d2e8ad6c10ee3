package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bet-board/core/storage"
	"bet-board/feature/bets/game"
	"bet-board/feature/bets/models"
	"bet-board/feature/bets/store"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Document is the JSON layout of one exported snapshot object.
type Document struct {
	Game       string       `json:"game"`
	ExportedAt time.Time    `json:"exported_at"`
	Count      int          `json:"count"`
	Bets       []models.Bet `json:"bets"`
}

// Info describes one stored snapshot object.
type Info struct {
	Object     string    `json:"object"`
	Size       int64     `json:"size"`
	ExportedAt time.Time `json:"exported_at"`
}

// Service exports bet tables to object storage and lists past exports.
type Service struct {
	client   storage.Client
	bucket   string
	registry *game.Registry
	store    store.Store
	logger   *zap.Logger
}

// NewService creates a snapshot service.
func NewService(client storage.Client, bucket string, registry *game.Registry, st store.Store, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		registry: registry,
		store:    st,
		logger:   logger,
	}
}

// Export writes the game's full bet table as one JSON object under
// snapshots/<game>/<timestamp>.json and returns the object name and the
// exported row count.
func (s *Service) Export(ctx context.Context, gameID game.ID) (string, int, error) {
	g, err := s.registry.Resolve(gameID)
	if err != nil {
		return "", 0, err
	}

	bets, err := s.store.ListAll(ctx, g)
	if err != nil {
		return "", 0, err
	}

	now := time.Now().UTC()
	doc := Document{
		Game:       string(g.ID),
		ExportedAt: now,
		Count:      len(bets),
		Bets:       bets,
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return "", 0, err
	}

	objectName := fmt.Sprintf("snapshots/%s/%s.json", g.ID, now.Format(time.RFC3339))
	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", 0, fmt.Errorf("write snapshot %s: %w", objectName, err)
	}

	s.logger.Info("snapshot exported",
		zap.String("game", string(g.ID)),
		zap.String("object", objectName),
		zap.Int("bets", len(bets)))
	return objectName, len(bets), nil
}

// List returns the stored snapshots for a game, as reported by the bucket
// listing under the game's prefix.
func (s *Service) List(ctx context.Context, gameID game.ID) ([]Info, error) {
	g, err := s.registry.Resolve(gameID)
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("snapshots/%s/", g.ID)
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	infos := make([]Info, 0)
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("list snapshots: %w", obj.Err)
		}
		infos = append(infos, Info{
			Object:     obj.Key,
			Size:       obj.Size,
			ExportedAt: obj.LastModified,
		})
	}
	return infos, nil
}

// ensureBucket creates the snapshot bucket on first use.
func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}
