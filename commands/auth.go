package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// authorize exchanges the refresh token for an access token. The exchange is
// a single attempt bounded by TIMEOUT.
func authorize(ctx context.Context, config *oauth2.Config, refreshToken string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: TIMEOUT})

	token, err := config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			return nil, fmt.Errorf("%w (token endpoint returned %v)", ErrAuthenticationFailure, rerr.Response.Status)
		}

		return nil, fmt.Errorf("%w (%v)", ErrAuthenticationFailure, err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w (no access token in token endpoint response)", ErrAuthenticationFailure)
	}

	return token, nil
}
