package user

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/idtoken"
)

// googleIdentity is the subset of ID token claims the directory keeps.
type googleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// verifyGoogleToken validates a Google-issued ID token against the
// configured OAuth client ID and extracts the identity claims.
func (s *DefaultUserService) verifyGoogleToken(tokenStr string) (*googleIdentity, error) {
	if s.GoogleClientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	payload, err := idtoken.Validate(ctx, tokenStr, s.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify google id token: %w", err)
	}

	ident := &googleIdentity{Subject: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		ident.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		ident.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		ident.Picture = v
	}
	if ident.Subject == "" {
		return nil, fmt.Errorf("google id token carries no subject")
	}
	return ident, nil
}
