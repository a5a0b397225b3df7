package auth

import (
	"context"

	"google.golang.org/api/idtoken"
)

// Identity is what a federated provider asserts about the caller.
type Identity struct {
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier checks a provider-issued id token and extracts the
// asserted identity.
type GoogleVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier returns a verifier bound to the given OAuth client id,
// or nil when no client id is configured.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if clientID == "" {
		return nil
	}
	return &googleVerifier{clientID: clientID}
}

func (g *googleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, g.clientID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, ErrInvalidToken
	}
	claim := func(key string) string {
		s, _ := payload.Claims[key].(string)
		return s
	}
	return &Identity{
		Email:   claim("email"),
		Name:    claim("name"),
		Picture: claim("picture"),
	}, nil
}
