package commands

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

// gsheets fetches worksheet records from a Google Sheets range. The first row
// of the range is the header row.
type gsheets struct {
	endpoint     oauth2.Endpoint
	url          string
	clientID     string
	clientSecret string
	refreshToken string
	spreadsheet  string
	area         string
	debug        bool
}

func (g *gsheets) Name() string {
	return "Google Sheets"
}

func (g *gsheets) Fetch(ctx context.Context) (records.Payload, error) {
	config := oauth2.Config{
		ClientID:     g.clientID,
		ClientSecret: g.clientSecret,
		Endpoint:     g.endpoint,
		Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
	}

	if config.Endpoint.TokenURL == "" {
		config.Endpoint = google.Endpoint
	}

	token, err := authorize(ctx, &config, g.refreshToken)
	if err != nil {
		return nil, err
	}

	if g.debug {
		debugf("Spreadsheet - ID:%s  range:%s", g.spreadsheet, g.area)
	}

	client := config.Client(ctx, token)
	client.Timeout = TIMEOUT

	options := []option.ClientOption{
		option.WithHTTPClient(client),
	}

	if g.url != "" {
		options = append(options, option.WithEndpoint(g.url))
	}

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("%w (unable to create new Sheets client: %v)", ErrUpstreamAPI, err)
	}

	response, err := service.Spreadsheets.Values.Get(g.spreadsheet, g.area).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, fmt.Errorf("%w (unable to retrieve data from sheet: %v %v)", ErrUpstreamAPI, gerr.Code, gerr.Message)
		}

		return nil, fmt.Errorf("%w (unable to retrieve data from sheet: %v)", ErrUpstreamAPI, err)
	}

	return makePayload(response)
}
