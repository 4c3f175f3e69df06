package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings for a refresh run, taken from the environment.
type Config struct {
	RefreshToken string
	ClientID     string
	ClientSecret string
	SheetID      string

	Provider    string
	Worksheet   string
	File        string
	AccountsURL string
	SheetURL    string
}

// LoadConfig seeds the process environment from envfile (if it exists) and then
// builds a Config from the environment. Variables that are already set are not
// overridden by the file.
func LoadConfig(envfile string) (*Config, error) {
	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %v (%v)", envfile, err)
		}
	}

	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (*Config, error) {
	required := func(name string) (string, error) {
		if v := getenv(name); v != "" {
			return v, nil
		}

		return "", fmt.Errorf("%w (required environment variable %v is not set)", ErrMissingConfiguration, name)
	}

	optional := func(name, defval string) string {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}

		return defval
	}

	conf := Config{}

	for _, v := range []struct {
		name  string
		field *string
	}{
		{"REFRESH_TOKEN", &conf.RefreshToken},
		{"CLIENT_ID", &conf.ClientID},
		{"CLIENT_SECRET", &conf.ClientSecret},
		{"SHEET_ID", &conf.SheetID},
	} {
		value, err := required(v.name)
		if err != nil {
			return nil, err
		}

		*v.field = value
	}

	conf.Provider = strings.ToLower(optional("SHEET_PROVIDER", DEFAULT_PROVIDER))
	conf.Worksheet = optional("WORKSHEET_NAME", DEFAULT_WORKSHEET)
	conf.File = optional("DATA_FILE", DEFAULT_FILE)
	conf.AccountsURL = strings.TrimSuffix(optional("ZOHO_ACCOUNTS_URL", DEFAULT_ZOHO_ACCOUNTS), "/")
	conf.SheetURL = strings.TrimSuffix(optional("ZOHO_SHEET_URL", DEFAULT_ZOHO_SHEET), "/")

	switch conf.Provider {
	case "zoho", "google":
	default:
		return nil, fmt.Errorf("%w (unsupported SHEET_PROVIDER '%v' - expected 'zoho' or 'google')", ErrMissingConfiguration, conf.Provider)
	}

	return &conf, nil
}
