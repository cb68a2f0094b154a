package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"

	"vidshare-backend/internal/domains/media"
)

// authService signs upload credentials with the CDN private key.
// The signature scheme is HMAC-SHA1 over token+expire, hex encoded,
// matching what the CDN verifies server-side.
type authService struct {
	publicKey  string
	privateKey string
	authExpiry time.Duration
	now        func() time.Time
}

func NewAuthService(publicKey, privateKey string, authExpiry time.Duration) media.Service {
	return &authService{
		publicKey:  publicKey,
		privateKey: privateKey,
		authExpiry: authExpiry,
		now:        time.Now,
	}
}

func (s *authService) IssueUploadCredentials(ctx context.Context) (*media.UploadCredentials, error) {
	if s.publicKey == "" || s.privateKey == "" {
		return nil, media.ErrMissingKeyMaterial
	}

	token := uuid.NewString()
	expire := s.now().Add(s.authExpiry).Unix()

	mac := hmac.New(sha1.New, []byte(s.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))
	signature := hex.EncodeToString(mac.Sum(nil))

	return &media.UploadCredentials{
		AuthenticationParameters: media.AuthenticationParameters{
			Token:     token,
			Expire:    expire,
			Signature: signature,
		},
		PublicKey: s.publicKey,
	}, nil
}
