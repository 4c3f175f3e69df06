package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

// timestamp formats t as an ISO-8601 UTC timestamp with an explicit +00:00
// offset. Fractional seconds are in microseconds and omitted when zero.
func timestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/1000 == 0 {
		return t.Format("2006-01-02T15:04:05-07:00")
	}

	return t.Format("2006-01-02T15:04:05.000000-07:00")
}

// writeSnapshot replaces file with the pretty-printed payload. The JSON is
// written to a temporary file in the same directory and renamed over the
// target so that a failed run never leaves a partial snapshot behind.
func writeSnapshot(file string, payload records.Payload) error {
	var b bytes.Buffer

	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("error encoding snapshot (%v)", err)
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(b.Bytes()); err != nil {
		return err
	}

	if err := tmp.Chmod(0644); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
