package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

// RefreshCmd is the initialised refresh command used by main().
var RefreshCmd = Refresh{
	envfile: DEFAULT_ENV_FILE,
	stdout:  os.Stdout,
	now:     time.Now,
}

// Refresh downloads the dashboard worksheet, normalises the records and
// replaces the local JSON snapshot.
type Refresh struct {
	envfile string
	stdout  io.Writer
	now     func() time.Time
	debug   bool
}

type provider interface {
	Name() string
	Fetch(ctx context.Context) (records.Payload, error)
}

func (cmd *Refresh) Name() string {
	return "refresh"
}

func (cmd *Refresh) Description() string {
	return "Retrieves the dashboard worksheet and writes a normalised JSON snapshot"
}

func (cmd *Refresh) Execute(ctx context.Context, options *Options) error {
	if options != nil {
		cmd.debug = options.Debug
	}

	conf, err := LoadConfig(cmd.envfile)
	if err != nil {
		return err
	}

	return cmd.exec(ctx, conf)
}

func (cmd *Refresh) exec(ctx context.Context, conf *Config) error {
	p := cmd.provider(conf)

	if cmd.debug {
		debugf("Fetching '%v' from %v", conf.Worksheet, p.Name())
	}

	payload, err := p.Fetch(ctx)
	if err != nil {
		return err
	}

	if err := records.Adapt(payload); err != nil {
		return err
	}

	records.Normalize(payload)

	payload[records.LastModified] = timestamp(cmd.now())

	if err := writeSnapshot(conf.File, payload); err != nil {
		return fmt.Errorf("error writing %v (%v)", conf.File, err)
	}

	count := records.Count(payload)
	if list, _ := payload[records.Records].([]any); len(list) != count {
		warnf("records_count (%v) does not match the number of records retrieved (%v)", count, len(list))
	}

	infof("Retrieved %v records from %v", count, p.Name())

	fmt.Fprintf(cmd.stdout, "Wrote %v records to %v\n", count, conf.File)

	return nil
}

func (cmd *Refresh) provider(conf *Config) provider {
	switch conf.Provider {
	case "google":
		return &gsheets{
			clientID:     conf.ClientID,
			clientSecret: conf.ClientSecret,
			refreshToken: conf.RefreshToken,
			spreadsheet:  conf.SheetID,
			area:         conf.Worksheet,
			debug:        cmd.debug,
		}

	default:
		return &zoho{
			accounts:     conf.AccountsURL,
			sheet:        conf.SheetURL,
			clientID:     conf.ClientID,
			clientSecret: conf.ClientSecret,
			refreshToken: conf.RefreshToken,
			sheetID:      conf.SheetID,
			worksheet:    conf.Worksheet,
			debug:        cmd.debug,
		}
	}
}
