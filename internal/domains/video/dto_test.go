package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateVideoRequest {
	return CreateVideoRequest{
		Title:        "My first clip",
		Description:  "Uploaded from the road",
		VideoURL:     "https://cdn.example.com/videos/abc.mp4",
		ThumbnailURL: "https://cdn.example.com/thumbs/abc.jpg",
	}
}

func TestCreateVideoRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validRequest().Validate())
	})

	t.Run("all violations are reported together", func(t *testing.T) {
		req := CreateVideoRequest{
			Title:    "ab", // too short
			VideoURL: "not-a-url",
			// description and thumbnailUrl missing
		}

		err := req.Validate()
		require.Error(t, err)

		msg := err.Error()
		assert.Contains(t, msg, "title")
		assert.Contains(t, msg, "description")
		assert.Contains(t, msg, "videoUrl")
		assert.Contains(t, msg, "thumbnailUrl")
	})

	t.Run("title length bounds", func(t *testing.T) {
		req := validRequest()
		req.Title = "ab"
		assert.Error(t, req.Validate())

		req.Title = strings.Repeat("x", 201)
		assert.Error(t, req.Validate())

		req.Title = strings.Repeat("x", 200)
		assert.NoError(t, req.Validate())
	})

	t.Run("description capped at 1000", func(t *testing.T) {
		req := validRequest()
		req.Description = strings.Repeat("d", 1001)
		assert.Error(t, req.Validate())

		req.Description = strings.Repeat("d", 1000)
		assert.NoError(t, req.Validate())
	})

	t.Run("transformation bounds", func(t *testing.T) {
		quality := 101
		req := validRequest()
		req.Transformation = &TransformationInput{Quality: &quality}
		assert.Error(t, req.Validate())

		quality = 100
		assert.NoError(t, req.Validate())

		width := -1
		req.Transformation = &TransformationInput{Width: &width}
		assert.Error(t, req.Validate())
	})

	t.Run("urls must be absolute http(s)", func(t *testing.T) {
		cases := []string{
			"/videos/relative.mp4",
			"ftp://cdn.example.com/a.mp4",
			"cdn.example.com/a.mp4",
			"https://",
		}
		for _, bad := range cases {
			req := validRequest()
			req.VideoURL = bad
			assert.Error(t, req.Validate(), "videoUrl %q should be rejected", bad)
		}

		req := validRequest()
		req.VideoURL = "http://cdn.example.com/a.mp4"
		assert.NoError(t, req.Validate())
	})
}
