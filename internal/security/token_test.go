package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes"

func TestNewJWTIssuer(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		ttl     time.Duration
		wantErr bool
	}{
		{"valid", testSecret, time.Hour, false},
		{"empty secret", "", time.Hour, true},
		{"zero ttl", testSecret, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJWTIssuer(tt.secret, tt.ttl)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewJWTIssuer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIssueAndParse(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewJWTIssuer() error = %v", err)
	}

	token, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("Issue() = %q, want three JWT segments", token)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Email != "a@x.com" || claims.Subject != "a@x.com" {
		t.Errorf("claims email/sub = %q/%q", claims.Email, claims.Subject)
	}
	if claims.ID == "" {
		t.Error("claims jti is empty")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("token lifetime = %s, want 1h", ttl)
	}
}

func TestParseExpired(t *testing.T) {
	issuer, _ := NewJWTIssuer(testSecret, time.Hour)
	issuedAt := time.Now().Add(-2 * time.Hour)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	issuer.now = time.Now
	if _, err := issuer.Parse(token); err == nil {
		t.Error("Parse() of expired token expected error")
	}
}

func TestParseWrongSecret(t *testing.T) {
	a, _ := NewJWTIssuer(testSecret, time.Hour)
	b, _ := NewJWTIssuer(testSecret+"_other", time.Hour)

	token, _ := a.Issue("a@x.com")
	if _, err := b.Parse(token); err == nil {
		t.Error("Parse() with a different secret expected error")
	}
}

func TestParseRejectsNoneAlgorithm(t *testing.T) {
	issuer, _ := NewJWTIssuer(testSecret, time.Hour)

	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := issuer.Parse(unsigned); err == nil {
		t.Error("Parse() accepted alg=none token")
	}
}
