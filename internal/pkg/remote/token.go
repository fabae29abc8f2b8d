package remote

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const remoteConfigScope = "https://www.googleapis.com/auth/firebase.remoteconfig"

// NewTokenSource returns a static token source if the access token is set,
// otherwise Google application default credentials are used.
func NewTokenSource(ctx context.Context, accessToken string) (oauth2.TokenSource, error) {
	if accessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}), nil
	}

	ts, err := google.DefaultTokenSource(ctx, remoteConfigScope)
	if err != nil {
		return nil, errors.PrefixError(err, `cannot find Google credentials, set "--access-token" flag or "RCM_ACCESS_TOKEN" env or run "gcloud auth application-default login"`)
	}
	return ts, nil
}
