package searchad

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign produces the request signature the SearchAd API expects:
// Base64(HMAC-SHA256(secret, "{timestamp}.{method}.{uri}")). The secret is
// used as raw bytes per the provider contract, not Base64-decoded. The uri
// must be the path without a query string.
func Sign(timestamp, method, uri, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "." + method + "." + uri))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
