package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vidshare-backend/internal/domains/video"
	"vidshare-backend/pkg/cache"
	"vidshare-backend/pkg/logger"
)

const (
	// Portrait defaults match the player's 9:16 layout.
	defaultTransformWidth  = 1080
	defaultTransformHeight = 1920

	feedCacheKey = "videos:feed"
	feedCacheTTL = 60 * time.Second
)

type videoService struct {
	repo  video.Repository
	cache cache.Cache
}

func NewVideoService(repo video.Repository, cache cache.Cache) video.Service {
	return &videoService{
		repo:  repo,
		cache: cache,
	}
}

// Publish persists a new video record for ownerID. Each call creates a
// distinct record, even for a videoUrl that was published before.
func (s *videoService) Publish(ctx context.Context, ownerID uuid.UUID, req video.CreateVideoRequest) (*video.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	v := &video.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     true,
		Transformation: video.Transformation{
			Width:  defaultTransformWidth,
			Height: defaultTransformHeight,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Controls != nil {
		v.Controls = *req.Controls
	}
	if t := req.Transformation; t != nil {
		if t.Width != nil {
			v.Transformation.Width = *t.Width
		}
		if t.Height != nil {
			v.Transformation.Height = *t.Height
		}
		// Quality stays unset unless the publisher provided one; the
		// CDN applies its own default otherwise.
		v.Transformation.Quality = t.Quality
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	// New video invalidates the feed cache. A failed delete only means
	// one stale TTL window, so log and move on.
	if err := s.cache.Delete(ctx, feedCacheKey); err != nil {
		logger.Warn("failed to invalidate feed cache", err)
	}

	return v, nil
}

// ListVideos serves the feed cache-aside.
func (s *videoService) ListVideos(ctx context.Context) ([]video.Video, error) {
	var cached []video.Video
	found, err := s.cache.Get(ctx, feedCacheKey, &cached)
	if err == nil && found && cached != nil {
		return cached, nil
	}

	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	if err := s.cache.Set(ctx, feedCacheKey, videos, feedCacheTTL); err != nil {
		logger.Warn("failed to cache feed", err)
	}

	return videos, nil
}

func (s *videoService) GetVideo(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	return s.repo.FindByID(ctx, id)
}
