package video

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the video domain.
type Service interface {
	// Publish validates, applies defaults and persists a video record
	// on behalf of ownerID.
	Publish(ctx context.Context, ownerID uuid.UUID, req CreateVideoRequest) (*Video, error)

	// ListVideos returns the feed, newest first.
	ListVideos(ctx context.Context) ([]Video, error)

	// GetVideo returns a single video by id.
	GetVideo(ctx context.Context, id uuid.UUID) (*Video, error)
}
