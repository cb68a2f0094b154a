package video

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for videos.
type Repository interface {
	// Create inserts a new video row. Re-publishing the same videoUrl
	// creates a second independent record on purpose.
	Create(ctx context.Context, video *Video) error

	// List returns all videos newest first. Never returns a nil slice.
	List(ctx context.Context) ([]Video, error)

	// FindByID returns ErrVideoNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Video, error)

	// ExistsByVideoURL reports whether any record references the URL.
	// Used by the orphan sweep to decide what is safe to delete.
	ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error)
}
