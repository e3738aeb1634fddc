package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 1)
	token, expiresAt, err := tm.Issue("42", "client_abc")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.AccountID != "42" {
		t.Fatalf("account id mismatch: got %q want %q", claims.AccountID, "42")
	}
	if claims.ClientID != "client_abc" {
		t.Fatalf("client id mismatch: got %q want %q", claims.ClientID, "client_abc")
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type mismatch: got %q", claims.TokenType)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id (jti)")
	}
	if got := claims.ExpiresAt.Time; !got.Equal(expiresAt.Truncate(time.Second)) {
		t.Fatalf("expiry mismatch: claims %v, returned %v", got, expiresAt)
	}
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 1)
	first, _, err := tm.Issue("42", "client_a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	second, _, err := tm.Issue("42", "client_a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if first == second {
		t.Fatal("two issuances must produce distinct tokens")
	}

	c1, err := tm.Verify(first)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	c2, err := tm.Verify(second)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if c1.ID == c2.ID {
		t.Fatal("token ids must be unique per issuance")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	for _, ttlHours := range []int{0, -1} {
		tm := NewTokenManager("test-secret", ttlHours)
		token, _, err := tm.Issue("42", "client_a")
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}
		if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("ttl=%dh: want ErrTokenExpired, got %v", ttlHours, err)
		}
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 1)
	token, _, err := tm.Issue("42", "client_a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Swap one character of the signature segment for a different
	// base64url character so the token stays parseable.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	if _, err := tm.Verify(tampered); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("want ErrTokenSignature, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, _, err := NewTokenManager("right-secret", 1).Issue("42", "client_a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewTokenManager("wrong-secret", 1).Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("want ErrTokenSignature, got %v", err)
	}
}

func TestVerify_MalformedAndEmpty(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 1)
	if _, err := tm.Verify("not.a.jwt"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
	if _, err := tm.Verify("garbage"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("want ErrTokenMalformed, got %v", err)
	}
	if _, err := tm.Verify(""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, &AccessClaims{
		AccountID: "42",
		ClientID:  "client_a",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewTokenManager(secret, 1).Verify(signed); !errors.Is(err, ErrTokenUnsupported) {
		t.Fatalf("want ErrTokenUnsupported, got %v", err)
	}
}

func TestVerify_MissingClaims(t *testing.T) {
	t.Parallel()

	secret := "test-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewTokenManager(secret, 1).Verify(signed); !errors.Is(err, ErrTokenMissingClaims) {
		t.Fatalf("want ErrTokenMissingClaims, got %v", err)
	}
}

func TestIsValidAndProjections(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("test-secret", 1)
	token, _, err := tm.Issue("42", "client_a")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if !tm.IsValid(token) {
		t.Fatal("expected valid token")
	}
	if tm.IsValid(strings.TrimSuffix(token, token[len(token)-4:])) {
		t.Fatal("expected truncated token to be invalid")
	}

	accountID, err := tm.ExtractAccountID(token)
	if err != nil || accountID != "42" {
		t.Fatalf("ExtractAccountID: got (%q, %v)", accountID, err)
	}
	clientID, err := tm.ExtractClientID(token)
	if err != nil || clientID != "client_a" {
		t.Fatalf("ExtractClientID: got (%q, %v)", clientID, err)
	}

	if _, err := tm.ExtractAccountID("bogus"); err == nil {
		t.Fatal("expected projection over invalid token to fail")
	}
}
