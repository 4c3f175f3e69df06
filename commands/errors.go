package commands

import (
	"errors"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

var (
	ErrMissingConfiguration  = errors.New("missing configuration")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrUpstreamAPI           = errors.New("upstream API error")
	ErrMalformedResponse     = records.ErrMalformedResponse
)
