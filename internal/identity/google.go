package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

var googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// GoogleVerifier accepts Google OAuth access tokens and resolves them
// through the OpenID Connect userinfo endpoint.
type GoogleVerifier struct {
	userInfoURL string
}

// NewGoogleVerifier builds a verifier against Google's userinfo endpoint.
func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{userInfoURL: googleUserInfoURL}
}

type googleUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verify implements Verifier. A custom *http.Client can be supplied through
// ctx with the oauth2.HTTPClient key.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrInvalidToken
	}
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userInfoURL, nil)
	if err != nil {
		return Identity{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("google userinfo: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Identity{}, fmt.Errorf("%w: userinfo status %d", ErrInvalidToken, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return Identity{}, fmt.Errorf("google userinfo: status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, fmt.Errorf("decode google userinfo: %w", err)
	}
	if strings.TrimSpace(info.Sub) == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return Identity{UID: info.Sub, Email: info.Email, Name: info.Name}, nil
}
