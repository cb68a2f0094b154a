package video

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TransformationInput lets the publisher override rendering settings.
// Unset dimensions fall back to the portrait defaults at publish time.
type TransformationInput struct {
	Height  *int `json:"height"`
	Width   *int `json:"width"`
	Quality *int `json:"quality"`
}

// CreateVideoRequest is the publish payload. Validation aggregates all
// field violations into a single error so the client sees every problem
// at once, not just the first.
type CreateVideoRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	VideoURL       string               `json:"videoUrl"`
	ThumbnailURL   string               `json:"thumbnailUrl"`
	Controls       *bool                `json:"controls"`
	Transformation *TransformationInput `json:"transformation"`
}

func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 200).Error("title must be 3-200 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(0, 1000).Error("description must be at most 1000 characters"),
		),
		validation.Field(&r.VideoURL,
			validation.Required.Error("videoUrl is required"),
			validation.By(absoluteHTTPURL),
		),
		validation.Field(&r.ThumbnailURL,
			validation.Required.Error("thumbnailUrl is required"),
			validation.By(absoluteHTTPURL),
		),
		validation.Field(&r.Transformation, validation.By(validTransformation)),
	)
}

func validTransformation(value interface{}) error {
	var t *TransformationInput
	switch v := value.(type) {
	case *TransformationInput:
		t = v
	case TransformationInput:
		t = &v
	}
	if t == nil {
		return nil
	}

	if t.Quality != nil && (*t.Quality < 1 || *t.Quality > 100) {
		return errors.New("quality must be between 1 and 100")
	}
	if t.Width != nil && *t.Width <= 0 {
		return errors.New("width must be positive")
	}
	if t.Height != nil && *t.Height <= 0 {
		return errors.New("height must be positive")
	}

	return nil
}

// absoluteHTTPURL accepts only absolute http or https URLs with a host.
// CDN URLs are always absolute; anything else is a client bug.
func absoluteHTTPURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required already covers the empty case
	}

	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}

	return nil
}
