package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DevVerifier accepts locally-minted HS256 tokens so the backend can run
// without Google credentials. Enabled only in dev mode.
type DevVerifier struct {
	secret []byte
}

func NewDevVerifier(secret []byte) *DevVerifier {
	return &DevVerifier{secret: secret}
}

func (d *DevVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return d.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("missing sub claim")
	}
	name, _ := claims["name"].(string)

	var expiresAt time.Time
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0)
	}

	return Identity{UserID: sub, DisplayName: name, ExpiresAt: expiresAt}, nil
}

// MintToken issues a dev token for the given identity. Used by local
// clients and tests; never exposed as an endpoint.
func (d *DevVerifier) MintToken(userID, displayName string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": displayName,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(d.secret)
}
