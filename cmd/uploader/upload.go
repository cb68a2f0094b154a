package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"vidshare-backend/pkg/mediakit"
)

const defaultUploadURL = "https://upload.mediakit.io/api/v1/files/upload"

// upload validates the file locally, fetches signed credentials from
// the API and streams the bytes straight to the CDN.
func (c *cli) upload(ctx context.Context, path string) (*mediakit.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	uploadURL := os.Getenv("CDN_UPLOAD_URL")
	if uploadURL == "" {
		uploadURL = defaultUploadURL
	}

	uploader := mediakit.NewUploader(
		mediakit.NewClient(uploadURL),
		mediakit.NewHTTPCredentialSource(c.apiBase+"/media/upload-auth"),
		"/videos",
	)

	lastPct := -1
	return uploader.UploadVideo(ctx, info.Name(), f, info.Size(), func(pct int) {
		if pct != lastPct {
			lastPct = pct
			log.Printf("Uploading... %d%%", pct)
		}
	})
}
