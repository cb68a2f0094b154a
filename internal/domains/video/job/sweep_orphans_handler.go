package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"vidshare-backend/internal/domains/video"
	"vidshare-backend/internal/infrastructure/mediacdn"
	"vidshare-backend/pkg/logger"
)

// SweepOrphansPayload configures a single sweep run.
type SweepOrphansPayload struct {
	GracePeriod time.Duration `json:"grace_period"`
	BatchLimit  int           `json:"batch_limit"`
}

// SweepOrphansHandler deletes CDN files that were uploaded but never
// published. A file is an orphan when it is older than the grace period
// and no video record references its URL.
type SweepOrphansHandler struct {
	repo   video.Repository
	cdn    *mediacdn.AdminClient
	folder string
}

func NewSweepOrphansHandler(repo video.Repository, cdn *mediacdn.AdminClient, folder string) *SweepOrphansHandler {
	return &SweepOrphansHandler{
		repo:   repo,
		cdn:    cdn,
		folder: folder,
	}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload SweepOrphansPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal sweep payload: %w", err)
	}
	if payload.GracePeriod <= 0 {
		payload.GracePeriod = 24 * time.Hour
	}
	if payload.BatchLimit <= 0 {
		payload.BatchLimit = 100
	}

	files, err := h.cdn.ListFiles(ctx, h.folder, payload.BatchLimit)
	if err != nil {
		return fmt.Errorf("list cdn files: %w", err)
	}

	cutoff := time.Now().Add(-payload.GracePeriod)
	swept := 0

	for _, f := range files {
		// Fresh files may still be mid-publish. Leave them alone.
		if f.CreatedAt.After(cutoff) {
			continue
		}

		referenced, err := h.repo.ExistsByVideoURL(ctx, f.URL)
		if err != nil {
			return fmt.Errorf("check reference for %s: %w", f.FileID, err)
		}
		if referenced {
			continue
		}

		if err := h.cdn.DeleteFile(ctx, f.FileID); err != nil {
			// Keep going; the next run picks up whatever failed.
			logger.Error("failed to delete orphaned file", err)
			continue
		}
		swept++
	}

	logger.Info("orphan sweep finished", map[string]interface{}{
		"scanned": len(files),
		"swept":   swept,
	})

	return nil
}
