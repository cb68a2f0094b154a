package mediacdn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// File is a stored object as the CDN admin API reports it.
type File struct {
	FileID    string    `json:"fileId"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminClient talks to the CDN management API with the private key.
// It is only used server-side: the key never reaches upload clients.
type AdminClient struct {
	baseURL    string
	privateKey string
	httpClient *http.Client
}

func NewAdminClient(baseURL, privateKey string) *AdminClient {
	return &AdminClient{
		baseURL:    baseURL,
		privateKey: privateKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListFiles returns files under path, oldest first, up to limit.
func (c *AdminClient) ListFiles(ctx context.Context, path string, limit int) ([]File, error) {
	endpoint := fmt.Sprintf("%s/files?path=%s&sort=ASC_CREATED&limit=%s",
		c.baseURL, url.QueryEscape(path), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list files: cdn returned %d: %s", resp.StatusCode, body)
	}

	var files []File
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return nil, fmt.Errorf("decode file list: %w", err)
	}

	return files, nil
}

// DeleteFile removes a file by its CDN id.
func (c *AdminClient) DeleteFile(ctx context.Context, fileID string) error {
	endpoint := fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete file %s: cdn returned %d: %s", fileID, resp.StatusCode, body)
	}

	return nil
}
