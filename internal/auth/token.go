package auth

import (
	stderrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// Claims is the signed session payload. Expiry is embedded in the token and
// verified independently of the cookie carrying it.
type Claims struct {
	jwt.RegisteredClaims
	UID     string `json:"uid"`
	IsAdmin bool   `json:"isAdmin"`
}

// TokenService signs and validates session tokens with a server-held HMAC
// secret. Validation is pure and side-effect free.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(signingKey []byte, ttl time.Duration, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: signingKey,
		ttl:        ttl,
		logger:     logger,
	}
}

// TTL returns the configured token lifetime, which is also the cookie
// lifetime.
func (ts *TokenService) TTL() time.Duration {
	return ts.ttl
}

// Issue signs a token carrying the user id and admin flag.
func (ts *TokenService) Issue(userID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
		UID:     userID,
		IsAdmin: isAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign session token")
	}

	return signed, nil
}

// Validate parses and verifies a raw token. It fails closed: signature
// mismatch, malformed payload, unexpected signing method and expiry all come
// back as ErrTokenInvalid.
func (ts *TokenService) Validate(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("token validate: unexpected signing method", "alg", t.Header["alg"])
			return nil, stderrors.New("unexpected signing method")
		}
		return ts.signingKey, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	ts.logger.Error("token validate: could not decode claims")
	return nil, ErrTokenInvalid
}
