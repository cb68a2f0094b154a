package media

import "context"

// Service issues short-lived credentials for direct-to-CDN uploads.
type Service interface {
	// IssueUploadCredentials mints a fresh token/expire/signature triple.
	// Every call returns a distinct token.
	IssueUploadCredentials(ctx context.Context) (*UploadCredentials, error)
}
