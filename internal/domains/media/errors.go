package media

import "errors"

var (
	// ErrMissingKeyMaterial means the CDN key pair is not configured.
	ErrMissingKeyMaterial = errors.New("cdn key material is not configured")
)
