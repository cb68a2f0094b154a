package media

// AuthenticationParameters is the signed triple the CDN expects
// alongside each direct upload.
type AuthenticationParameters struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// UploadCredentials is the payload returned by the upload-auth endpoint.
// The public key rides along so clients never hardcode it.
type UploadCredentials struct {
	AuthenticationParameters AuthenticationParameters `json:"authenticationParameters"`
	PublicKey                string                   `json:"publicKey"`
}
