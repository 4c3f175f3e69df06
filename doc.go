// Copyright 2026 schemes-dashboard. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package schemes-refresh downloads the schemes dashboard worksheet from Zoho Sheet (or Google Sheets) and writes a
normalised JSON snapshot for the dashboard web page.

schemes-refresh can be used from the command line but is really intended to be run from a cron job or a scheduled
CI workflow. Each run:

  - exchanges the OAuth2 refresh token for an access token
  - fetches the worksheet records
  - reconciles the column names across worksheet revisions (Ministry / Department, Scheme Description, etc)
  - canonicalises the ministry names
  - replaces data.json with the normalised records and a last_modified timestamp

Configuration is taken from the environment (REFRESH_TOKEN, CLIENT_ID, CLIENT_SECRET and SHEET_ID are required),
optionally seeded from a .env file in the working directory.
*/
package refresh
