package mediakit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

// Credentials is the signed triple minted by the backend plus the
// public key the CDN identifies the account by.
type Credentials struct {
	Token     string
	Expire    int64
	Signature string
	PublicKey string
}

// UploadRequest describes a single direct-to-CDN upload.
type UploadRequest struct {
	FileName    string
	Folder      string
	Data        io.Reader
	Size        int64
	Credentials Credentials
	OnProgress  ProgressFunc
}

// UploadResult is the CDN's response for a stored file.
type UploadResult struct {
	FileID       string `json:"fileId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Size         int64  `json:"size"`
}

// Client performs direct uploads against the CDN upload endpoint.
type Client struct {
	uploadURL  string
	httpClient *http.Client
}

func NewClient(uploadURL string) *Client {
	return &Client{
		uploadURL:  uploadURL,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
}

// Upload streams the file to the CDN. Errors are classified into the
// package's error types; on success the progress callback has been
// driven to exactly 100.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	body, contentType, err := buildMultipartBody(req)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	var reader io.Reader = bytes.NewReader(body)
	if req.OnProgress != nil {
		reader = newProgressReader(reader, int64(len(body)), req.OnProgress)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, reader)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.ContentLength = int64(len(body))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, &AbortError{}
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readErrorMessage(resp.Body)
		switch {
		case resp.StatusCode >= 500:
			return nil, &ServerError{StatusCode: resp.StatusCode, Message: msg}
		case resp.StatusCode >= 400:
			return nil, &InvalidRequestError{StatusCode: resp.StatusCode, Message: msg}
		default:
			return nil, &UnknownError{Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)}
		}
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &UnknownError{Err: fmt.Errorf("decode upload response: %w", err)}
	}

	// Some responses omit the thumbnail; fall back to the file URL so
	// callers always get something renderable.
	if result.ThumbnailURL == "" {
		result.ThumbnailURL = result.URL
	}

	if req.OnProgress != nil {
		req.OnProgress(100)
	}

	return &result, nil
}

func buildMultipartBody(req UploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"fileName":  req.FileName,
		"folder":    req.Folder,
		"publicKey": req.Credentials.PublicKey,
		"signature": req.Credentials.Signature,
		"expire":    strconv.FormatInt(req.Credentials.Expire, 10),
		"token":     req.Credentials.Token,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, req.Data); err != nil {
		return nil, "", fmt.Errorf("copy file data: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(body) == 0 {
		return "no response body"
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(body)
}
