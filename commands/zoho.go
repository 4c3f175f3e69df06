package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

// zoho fetches worksheet records with the Zoho Sheet v2 'worksheet.records.fetch'
// API.
type zoho struct {
	accounts     string
	sheet        string
	clientID     string
	clientSecret string
	refreshToken string
	sheetID      string
	worksheet    string
	debug        bool
}

func (z *zoho) Name() string {
	return "Zoho Sheet"
}

func (z *zoho) Fetch(ctx context.Context) (records.Payload, error) {
	config := oauth2.Config{
		ClientID:     z.clientID,
		ClientSecret: z.clientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  z.accounts + "/oauth/v2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	token, err := authorize(ctx, &config, z.refreshToken)
	if err != nil {
		return nil, err
	}

	if z.debug {
		debugf("Zoho Sheet - ID:%s  worksheet:%s", z.sheetID, z.worksheet)
	}

	client := resty.New().
		SetTimeout(TIMEOUT).
		SetRetryCount(0)

	response, err := client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Zoho-oauthtoken "+token.AccessToken).
		SetFormData(map[string]string{
			"method":              "worksheet.records.fetch",
			"worksheet_name":      z.worksheet,
			"header_row":          "1",
			"render_option":       "formatted",
			"records_start_index": "1",
			"is_case_sensitive":   "true",
		}).
		Post(z.sheet + "/api/v2/" + url.PathEscape(z.sheetID))

	if err != nil {
		return nil, fmt.Errorf("%w (unable to retrieve data from sheet: %v)", ErrUpstreamAPI, err)
	}

	if response.IsError() {
		return nil, fmt.Errorf("%w (sheet API returned %v)", ErrUpstreamAPI, response.Status())
	}

	body := response.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w (sheet API response is not valid JSON)", ErrMalformedResponse)
	}

	if status := gjson.GetBytes(body, "status"); status.String() != "success" {
		if msg := gjson.GetBytes(body, "error_message"); msg.Exists() {
			return nil, fmt.Errorf("%w (status:%q  code:%v  %v)", ErrUpstreamAPI, status.String(), gjson.GetBytes(body, "error_code"), msg)
		}

		return nil, fmt.Errorf("%w (status:%q)", ErrUpstreamAPI, status.String())
	}

	return records.Decode(bytes.NewReader(body))
}
