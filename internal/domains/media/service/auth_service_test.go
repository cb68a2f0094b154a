package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidshare-backend/internal/domains/media"
)

func TestIssueUploadCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("signature matches HMAC-SHA1 over token and expire", func(t *testing.T) {
		fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := &authService{
			publicKey:  "public_test_key",
			privateKey: "private_test_key",
			authExpiry: 30 * time.Minute,
			now:        func() time.Time { return fixedNow },
		}

		creds, err := svc.IssueUploadCredentials(ctx)
		require.NoError(t, err)

		params := creds.AuthenticationParameters
		assert.Equal(t, fixedNow.Add(30*time.Minute).Unix(), params.Expire)

		mac := hmac.New(sha1.New, []byte("private_test_key"))
		mac.Write([]byte(params.Token + strconv.FormatInt(params.Expire, 10)))
		expected := hex.EncodeToString(mac.Sum(nil))
		assert.Equal(t, expected, params.Signature)

		assert.Equal(t, "public_test_key", creds.PublicKey)
	})

	t.Run("token is a valid uuid and unique per call", func(t *testing.T) {
		svc := NewAuthService("pk", "sk", 30*time.Minute)

		first, err := svc.IssueUploadCredentials(ctx)
		require.NoError(t, err)
		second, err := svc.IssueUploadCredentials(ctx)
		require.NoError(t, err)

		_, err = uuid.Parse(first.AuthenticationParameters.Token)
		assert.NoError(t, err)
		assert.NotEqual(t,
			first.AuthenticationParameters.Token,
			second.AuthenticationParameters.Token,
		)
	})

	t.Run("expire is in the future", func(t *testing.T) {
		svc := NewAuthService("pk", "sk", 30*time.Minute)

		creds, err := svc.IssueUploadCredentials(ctx)
		require.NoError(t, err)

		assert.Greater(t, creds.AuthenticationParameters.Expire, time.Now().Unix())
	})

	t.Run("missing key material fails", func(t *testing.T) {
		svc := NewAuthService("", "", 30*time.Minute)

		creds, err := svc.IssueUploadCredentials(ctx)
		assert.Nil(t, creds)
		assert.ErrorIs(t, err, media.ErrMissingKeyMaterial)
	})
}
