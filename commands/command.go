package commands

import (
	"fmt"
	"log"
	"time"
)

const APP = "schemes-refresh"

const (
	DEFAULT_PROVIDER      = "zoho"
	DEFAULT_WORKSHEET     = "dashboard"
	DEFAULT_FILE          = "data.json"
	DEFAULT_ENV_FILE      = ".env"
	DEFAULT_ZOHO_ACCOUNTS = "https://accounts.zoho.in"
	DEFAULT_ZOHO_SHEET    = "https://sheet.zoho.in"

	TIMEOUT = 30 * time.Second
)

type Options struct {
	Debug bool
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
