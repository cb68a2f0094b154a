package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Command line client for the publish pipeline: log in, upload the
// file straight to the CDN, then publish the video record.

type cli struct {
	apiBase    string
	httpClient *http.Client
	token      string
}

func main() {
	apiBase := flag.String("api", "http://localhost:8080/api/v1", "API base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	file := flag.String("file", "", "path to the video file")
	title := flag.String("title", "", "video title")
	description := flag.String("description", "", "video description")
	flag.Parse()

	if *email == "" || *password == "" || *file == "" || *title == "" || *description == "" {
		flag.Usage()
		os.Exit(2)
	}

	c := &cli{
		apiBase:    *apiBase,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}

	ctx := context.Background()

	if err := c.login(ctx, *email, *password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	log.Println("Logged in")

	result, err := c.upload(ctx, *file)
	if err != nil {
		log.Fatalf("Upload failed: %v", err)
	}
	log.Printf("Uploaded: %s", result.URL)

	videoID, err := c.publish(ctx, *title, *description, result.URL, result.ThumbnailURL)
	if err != nil {
		log.Fatalf("Publish failed: %v", err)
	}
	log.Printf("Published video %s", videoID)
}

func (c *cli) login(ctx context.Context, email, password string) error {
	payload, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.postJSON(ctx, "/auth/login", payload, &data); err != nil {
		return err
	}
	if data.AccessToken == "" {
		return fmt.Errorf("no access token in response")
	}

	c.token = data.AccessToken
	return nil
}

func (c *cli) publish(ctx context.Context, title, description, videoURL, thumbnailURL string) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"title":        title,
		"description":  description,
		"videoUrl":     videoURL,
		"thumbnailUrl": thumbnailURL,
	})

	var data struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, "/videos", payload, &data); err != nil {
		return "", err
	}

	return data.ID, nil
}

func (c *cli) postJSON(ctx context.Context, path string, payload []byte, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, envelope.Message)
	}

	if dest != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, dest); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}

	return nil
}
