package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "storefront-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateAcceptsSignedToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signToken(t, testSecret, Claims{
		SessionID: "admin-session",
		Roles:     []string{"Admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Subject != "user-1" || claims.SessionID != "admin-session" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.HasRole("admin") {
		t.Fatal("expected case-insensitive role match")
	}
	if claims.HasRole("editor") {
		t.Fatal("did not expect editor role")
	}
}

func TestValidateRejections(t *testing.T) {
	validator := NewJWTValidator(testSecret)

	cases := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "missing token", token: "  ", expected: ErrMissingToken},
		{name: "garbage token", token: "not-a-jwt", expected: ErrInvalidToken},
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}}),
			expected: ErrInvalidToken,
		},
		{
			name: "expired",
			token: signToken(t, testSecret, Claims{RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}}),
			expected: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: signToken(t, testSecret, Claims{RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}}),
			expected: ErrInvalidToken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := validator.Validate(tc.token); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestValidateSessionIDFallbacks(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signToken(t, testSecret, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})

	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.SessionID != "user-7" {
		t.Fatalf("expected subject fallback, got %q", claims.SessionID)
	}
}

func TestValidateWithoutSecretConfigured(t *testing.T) {
	validator := NewJWTValidator("")
	if _, err := validator.Validate("anything"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
