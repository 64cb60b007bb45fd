package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestTokenSecret signs tokens minted by NewToken.
var TestTokenSecret = []byte("test-secret")

// NewToken mints an HS256 identity token for subject with extra claims.
func NewToken(t *testing.T, subject string, extra map[string]interface{}) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(TestTokenSecret)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}
