package job

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidshare-backend/internal/domains/video"
	"vidshare-backend/internal/infrastructure/mediacdn"
)

type fakeRepo struct {
	referenced map[string]bool
}

func (f *fakeRepo) Create(ctx context.Context, v *video.Video) error { return nil }

func (f *fakeRepo) List(ctx context.Context) ([]video.Video, error) { return nil, nil }

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	return nil, video.ErrVideoNotFound
}

func (f *fakeRepo) ExistsByVideoURL(ctx context.Context, videoURL string) (bool, error) {
	return f.referenced[videoURL], nil
}

func sweepTask(t *testing.T, payload SweepOrphansPayload) *asynq.Task {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask("media:sweep_orphans", raw)
}

func TestSweepOrphans(t *testing.T) {
	now := time.Now()

	files := []mediacdn.File{
		{
			FileID:    "old-orphan",
			URL:       "https://cdn.example.com/videos/orphan.mp4",
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			FileID:    "old-published",
			URL:       "https://cdn.example.com/videos/published.mp4",
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			FileID:    "fresh-orphan",
			URL:       "https://cdn.example.com/videos/fresh.mp4",
			CreatedAt: now.Add(-time.Hour),
		},
	}

	newFakeCDN := func(t *testing.T) (*mediacdn.AdminClient, *[]string) {
		deleted := &[]string{}
		mux := http.NewServeMux()
		mux.HandleFunc("GET /files", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(files)
		})
		mux.HandleFunc("DELETE /files/{id}", func(w http.ResponseWriter, r *http.Request) {
			*deleted = append(*deleted, r.PathValue("id"))
			w.WriteHeader(http.StatusNoContent)
		})

		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		return mediacdn.NewAdminClient(server.URL, "private-key"), deleted
	}

	t.Run("deletes only stale unreferenced files", func(t *testing.T) {
		cdn, deleted := newFakeCDN(t)
		repo := &fakeRepo{referenced: map[string]bool{
			"https://cdn.example.com/videos/published.mp4": true,
		}}

		handler := NewSweepOrphansHandler(repo, cdn, "/videos")
		err := handler.ProcessTask(context.Background(), sweepTask(t, SweepOrphansPayload{
			GracePeriod: 24 * time.Hour,
			BatchLimit:  100,
		}))
		require.NoError(t, err)

		assert.Equal(t, []string{"old-orphan"}, *deleted)
	})

	t.Run("zero grace period falls back to the default", func(t *testing.T) {
		cdn, deleted := newFakeCDN(t)
		repo := &fakeRepo{referenced: map[string]bool{}}

		handler := NewSweepOrphansHandler(repo, cdn, "/videos")
		err := handler.ProcessTask(context.Background(), sweepTask(t, SweepOrphansPayload{}))
		require.NoError(t, err)

		// Default 24h grace: the fresh file survives, both stale ones go.
		assert.ElementsMatch(t, []string{"old-orphan", "old-published"}, *deleted)
	})

	t.Run("malformed payload fails", func(t *testing.T) {
		cdn, _ := newFakeCDN(t)
		handler := NewSweepOrphansHandler(&fakeRepo{}, cdn, "/videos")

		err := handler.ProcessTask(context.Background(), asynq.NewTask("media:sweep_orphans", []byte("{")))
		assert.Error(t, err)
	})
}
