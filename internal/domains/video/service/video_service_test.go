package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidshare-backend/internal/domains/video"
)

type fakeRepo struct {
	videos []video.Video
}

func (f *fakeRepo) Create(ctx context.Context, v *video.Video) error {
	f.videos = append(f.videos, *v)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]video.Video, error) {
	out := make([]video.Video, 0, len(f.videos))
	for i := len(f.videos) - 1; i >= 0; i-- {
		out = append(out, f.videos[i])
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	for i := range f.videos {
		if f.videos[i].ID == id {
			return &f.videos[i], nil
		}
	}
	return nil, video.ErrVideoNotFound
}

func (f *fakeRepo) ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error) {
	for i := range f.videos {
		if f.videos[i].VideoURL == videoURL {
			return true, nil
		}
	}
	return false, nil
}

type fakeCache struct {
	deleted []string
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func validRequest() video.CreateVideoRequest {
	return video.CreateVideoRequest{
		Title:        "Morning surf session",
		Description:  "Clean waves at dawn",
		VideoURL:     "https://cdn.example.com/videos/surf.mp4",
		ThumbnailURL: "https://cdn.example.com/thumbs/surf.jpg",
	}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("defaults applied when fields omitted", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoService(repo, &fakeCache{})

		v, err := svc.Publish(ctx, ownerID, validRequest())
		require.NoError(t, err)

		assert.True(t, v.Controls)
		assert.Equal(t, 1080, v.Transformation.Width)
		assert.Equal(t, 1920, v.Transformation.Height)
		assert.Nil(t, v.Transformation.Quality)
		assert.Equal(t, ownerID, v.OwnerID)
		assert.NotEqual(t, uuid.Nil, v.ID)
	})

	t.Run("explicit values override defaults", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoService(repo, &fakeCache{})

		controls := false
		width, height, quality := 720, 1280, 80
		req := validRequest()
		req.Controls = &controls
		req.Transformation = &video.TransformationInput{
			Width:   &width,
			Height:  &height,
			Quality: &quality,
		}

		v, err := svc.Publish(ctx, ownerID, req)
		require.NoError(t, err)

		assert.False(t, v.Controls)
		assert.Equal(t, 720, v.Transformation.Width)
		assert.Equal(t, 1280, v.Transformation.Height)
		require.NotNil(t, v.Transformation.Quality)
		assert.Equal(t, 80, *v.Transformation.Quality)
	})

	t.Run("same videoUrl creates distinct records", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoService(repo, &fakeCache{})

		first, err := svc.Publish(ctx, ownerID, validRequest())
		require.NoError(t, err)
		second, err := svc.Publish(ctx, ownerID, validRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, repo.videos, 2)
	})

	t.Run("invalid request never reaches the repository", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoService(repo, &fakeCache{})

		_, err := svc.Publish(ctx, ownerID, video.CreateVideoRequest{})
		assert.Error(t, err)
		assert.Empty(t, repo.videos)
	})

	t.Run("publish invalidates the feed cache", func(t *testing.T) {
		cache := &fakeCache{}
		svc := NewVideoService(&fakeRepo{}, cache)

		_, err := svc.Publish(ctx, ownerID, validRequest())
		require.NoError(t, err)

		assert.Contains(t, cache.deleted, "videos:feed")
	})
}

func TestListVideos(t *testing.T) {
	ctx := context.Background()

	t.Run("empty feed is an empty slice, not nil", func(t *testing.T) {
		svc := NewVideoService(&fakeRepo{}, &fakeCache{})

		videos, err := svc.ListVideos(ctx)
		require.NoError(t, err)
		assert.NotNil(t, videos)
		assert.Empty(t, videos)
	})

	t.Run("newest first", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoService(repo, &fakeCache{})

		first, err := svc.Publish(ctx, uuid.New(), validRequest())
		require.NoError(t, err)
		second, err := svc.Publish(ctx, uuid.New(), validRequest())
		require.NoError(t, err)

		videos, err := svc.ListVideos(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, second.ID, videos[0].ID)
		assert.Equal(t, first.ID, videos[1].ID)
	})
}

func TestGetVideo(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id returns not found", func(t *testing.T) {
		svc := NewVideoService(&fakeRepo{}, &fakeCache{})

		_, err := svc.GetVideo(ctx, uuid.New())
		assert.ErrorIs(t, err, video.ErrVideoNotFound)
	})

	t.Run("published video is retrievable", func(t *testing.T) {
		svc := NewVideoService(&fakeRepo{}, &fakeCache{})

		published, err := svc.Publish(ctx, uuid.New(), validRequest())
		require.NoError(t, err)

		got, err := svc.GetVideo(ctx, published.ID)
		require.NoError(t, err)
		assert.Equal(t, published.ID, got.ID)
		assert.Equal(t, published.VideoURL, got.VideoURL)
	})
}
