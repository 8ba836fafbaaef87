package auth

import (
	"context"
	"time"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google-issued ID tokens against the app's
// OAuth client id. The subject claim becomes the user id.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (g *GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	payload, err := idtoken.Validate(ctx, token, g.clientID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	name := stringClaim(payload.Claims, "name")
	if name == "" {
		// Some accounts carry no profile name; the email local part is
		// still a usable artist name.
		name = stringClaim(payload.Claims, "email")
	}

	return Identity{
		UserID:      payload.Subject,
		DisplayName: name,
		ExpiresAt:   time.Unix(payload.Expires, 0),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}
