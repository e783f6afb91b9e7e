package searchad_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"kwlab-go-backend/pkg/infrastructure/external/searchad"

	"github.com/stretchr/testify/require"
)

func TestSignMessageFormat(t *testing.T) {
	secret := "raw-secret-bytes"
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("1700000000000.GET./keywordstool"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	got := searchad.Sign("1700000000000", "GET", "/keywordstool", secret)
	require.Equal(t, want, got)
}

func TestSignIsDeterministic(t *testing.T) {
	a := searchad.Sign("123", "GET", "/keywordstool", "s")
	b := searchad.Sign("123", "GET", "/keywordstool", "s")
	require.Equal(t, a, b)
}

func TestSignVariesWithEachInput(t *testing.T) {
	base := searchad.Sign("123", "GET", "/keywordstool", "s")

	require.NotEqual(t, base, searchad.Sign("124", "GET", "/keywordstool", "s"))
	require.NotEqual(t, base, searchad.Sign("123", "POST", "/keywordstool", "s"))
	require.NotEqual(t, base, searchad.Sign("123", "GET", "/other", "s"))
	require.NotEqual(t, base, searchad.Sign("123", "GET", "/keywordstool", "s2"))
}

func TestSignOutputIsBase64(t *testing.T) {
	sig := searchad.Sign("123", "GET", "/keywordstool", "s")
	raw, err := base64.StdEncoding.DecodeString(sig)
	require.NoError(t, err)
	require.Len(t, raw, sha256.Size)
}
