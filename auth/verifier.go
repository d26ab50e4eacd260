package auth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// Identity is the verified payload of a provider-issued ID token.
type Identity struct {
	Email   string
	Name    string
	Picture string
}

// TokenVerifier validates a third-party identity token. Consumed as a
// black box: it either returns a verified identity or fails.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// GoogleVerifier verifies Google-issued OAuth2 ID tokens against the
// configured client ID.
type GoogleVerifier struct {
	ClientID string
}

func (g *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, g.ClientID)
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing from token")
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &Identity{Email: email, Name: name, Picture: picture}, nil
}
