package grooveshark

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// calculateSignature returns the lowercase hex HMAC-MD5 of payload keyed
// by the application key.
//
// The payload must be the exact request body; the service recomputes the
// digest over the bytes it receives.
func calculateSignature(key string, payload []byte) string {
	mac := hmac.New(md5.New, []byte(key))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// HashPassword returns the hex MD5 digest the service expects in place of
// a plaintext password.
//
// MD5 is cryptographically weak. It is kept only because the service
// compares against it; do not reuse this for anything else.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// UserToken builds the token accepted by authenticateUser:
// md5(lowercase(username) + md5(password)).
func UserToken(username, password string) string {
	return HashPassword(strings.ToLower(username) + HashPassword(password))
}
