package main

import (
	"github.com/hibiken/asynq"

	videoJob "vidshare-backend/internal/domains/video/job"
	"vidshare-backend/internal/shared"
	"vidshare-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	sweepOrphans *videoJob.SweepOrphansHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		sweepOrphans: videoJob.NewSweepOrphansHandler(
			c.VideoRepo,
			c.CDNAdmin,
			c.Config.CDN.Folder,
		),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeSweepOrphans, h.sweepOrphans.ProcessTask)
}
