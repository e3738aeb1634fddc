package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the value carried in the "type" claim of every token
// issued by this service.
const TokenTypeAccess = "access_token"

// Verification failures, distinguishable for logging. The HTTP layer maps
// every one of them to an unauthorized response.
var (
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenUnsupported   = errors.New("token algorithm or structure unsupported")
	ErrTokenSignature     = errors.New("token signature invalid")
	ErrTokenInvalid       = errors.New("token empty or invalid")
	ErrTokenMissingClaims = errors.New("token missing required claims")
)

// TokenManager issues and verifies signed access tokens. The signing key is
// read-only after construction, so a manager is safe for concurrent use.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager signing with the given secret. The TTL is
// taken as configured, including zero or negative values, which produce
// tokens that are already expired.
func NewTokenManager(secret string, ttlHours int) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

// AccessClaims describes the payload of an access token.
type AccessClaims struct {
	AccountID string `json:"user_id"`
	ClientID  string `json:"client_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Issue builds and signs an access token binding the account to a client
// session. Every issuance gets a fresh token id (jti).
func (tm *TokenManager) Issue(accountID, clientID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &AccessClaims{
		AccountID: accountID,
		ClientID:  clientID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Verify parses the token, checks the signature and expiry, and requires the
// account and client claims to be present. Failures are classified into the
// package-level sentinel errors.
func (tm *TokenManager) Verify(tokenStr string) (*AccessClaims, error) {
	if tokenStr == "" {
		return nil, ErrTokenInvalid
	}

	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenUnsupported
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, classifyParseError(err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.AccountID == "" || claims.ClientID == "" {
		return nil, ErrTokenMissingClaims
	}
	return claims, nil
}

// IsValid reports whether the token verifies, without surfacing the cause.
func (tm *TokenManager) IsValid(tokenStr string) bool {
	_, err := tm.Verify(tokenStr)
	return err == nil
}

// ExtractAccountID verifies the token and returns its account id claim.
func (tm *TokenManager) ExtractAccountID(tokenStr string) (string, error) {
	claims, err := tm.Verify(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.AccountID, nil
}

// ExtractClientID verifies the token and returns its client id claim.
func (tm *TokenManager) ExtractClientID(tokenStr string) (string, error) {
	claims, err := tm.Verify(tokenStr)
	if err != nil {
		return "", err
	}
	return claims.ClientID, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, ErrTokenUnsupported), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenInvalid
	}
}
