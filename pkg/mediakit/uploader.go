package mediakit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// MaxUploadSize is the hard cap for a single video file.
const MaxUploadSize = 100 * 1024 * 1024 // 100 MB

// CredentialSource fetches fresh upload credentials. The backend's
// upload-auth endpoint is the usual implementation.
type CredentialSource interface {
	FetchCredentials(ctx context.Context) (*Credentials, error)
}

// Uploader validates video files locally, fetches credentials and
// drives the CDN upload. Only one upload may run at a time; a second
// concurrent call fails fast instead of queueing.
type Uploader struct {
	client   *Client
	creds    CredentialSource
	folder   string
	inFlight atomic.Bool
	now      func() time.Time
}

func NewUploader(client *Client, creds CredentialSource, folder string) *Uploader {
	return &Uploader{
		client: client,
		creds:  creds,
		folder: folder,
		now:    time.Now,
	}
}

// UploadVideo validates and uploads a single file. Validation failures
// are reported before any credential fetch or network traffic.
func (u *Uploader) UploadVideo(ctx context.Context, fileName string, data io.Reader, size int64, onProgress ProgressFunc) (*UploadResult, error) {
	if !u.inFlight.CompareAndSwap(false, true) {
		return nil, &AbortError{Reason: "another upload is already in progress"}
	}
	defer u.inFlight.Store(false)

	if err := ValidateVideoFile(fileName, size); err != nil {
		return nil, err
	}

	creds, err := u.creds.FetchCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch upload credentials: %w", err)
	}

	return u.client.Upload(ctx, UploadRequest{
		FileName:    u.objectName(fileName),
		Folder:      u.folder,
		Data:        data,
		Size:        size,
		Credentials: *creds,
		OnProgress:  onProgress,
	})
}

// videoContentTypes maps accepted extensions to their MIME types.
// mime.TypeByExtension depends on OS tables, so the set is explicit.
var videoContentTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".m4v":  "video/x-m4v",
}

// ValidateVideoFile checks type and size without touching the network.
func ValidateVideoFile(fileName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := videoContentTypes[ext]; !ok {
		return &InvalidRequestError{
			StatusCode: http.StatusBadRequest,
			Message:    "file must be a video",
		}
	}

	if size > MaxUploadSize {
		return &InvalidRequestError{
			StatusCode: http.StatusBadRequest,
			Message:    "file exceeds the 100MB limit",
		}
	}

	return nil
}

// objectName prefixes the original name with a millisecond timestamp so
// repeated uploads of the same file never collide.
func (u *Uploader) objectName(fileName string) string {
	return fmt.Sprintf("%d-%s", u.now().UnixMilli(), filepath.Base(fileName))
}

// HTTPCredentialSource fetches credentials from the backend's
// upload-auth endpoint.
type HTTPCredentialSource struct {
	authURL    string
	httpClient *http.Client
}

func NewHTTPCredentialSource(authURL string) *HTTPCredentialSource {
	return &HTTPCredentialSource{
		authURL:    authURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPCredentialSource) FetchCredentials(ctx context.Context) (*Credentials, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.authURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch credentials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upload auth failed with status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			AuthenticationParameters struct {
				Token     string `json:"token"`
				Expire    int64  `json:"expire"`
				Signature string `json:"signature"`
			} `json:"authenticationParameters"`
			PublicKey string `json:"publicKey"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}

	return &Credentials{
		Token:     envelope.Data.AuthenticationParameters.Token,
		Expire:    envelope.Data.AuthenticationParameters.Expire,
		Signature: envelope.Data.AuthenticationParameters.Signature,
		PublicKey: envelope.Data.PublicKey,
	}, nil
}
