package video

import (
	"time"

	"github.com/google/uuid"
)

// Transformation describes how the CDN should render the video.
// Quality is a pointer: it is omitted from the wire format and the
// CDN falls back to its own default unless the publisher set one.
type Transformation struct {
	Height  int  `json:"height" db:"transform_height"`
	Width   int  `json:"width" db:"transform_width"`
	Quality *int `json:"quality,omitempty" db:"transform_quality"`
}

// Video is a published video record. The file itself lives on the CDN;
// this row only carries the URLs and presentation settings.
type Video struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	OwnerID        uuid.UUID      `json:"ownerId" db:"owner_id"`
	Title          string         `json:"title" db:"title"`
	Description    string         `json:"description" db:"description"`
	VideoURL       string         `json:"videoUrl" db:"video_url"`
	ThumbnailURL   string         `json:"thumbnailUrl" db:"thumbnail_url"`
	Controls       bool           `json:"controls" db:"controls"`
	Transformation Transformation `json:"transformation" db:"-"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}
