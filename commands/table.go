package commands

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/schemes-dashboard/schemes-refresh/records"
)

// makePayload converts a worksheet range into the same envelope returned by the
// Zoho records API i.e. a list of records keyed by the header row.
func makePayload(data *sheets.ValueRange) (records.Payload, error) {
	list := []any{}

	if data == nil || len(data.Values) == 0 {
		return records.Payload{"status": "success", "records": list}, nil
	}

	// .. build index
	index := map[string]int{}
	header := []string{}
	for i, v := range data.Values[0] {
		h := clean(fmt.Sprintf("%v", v))
		k := normalise(h)
		if k != "" {
			if _, ok := index[k]; ok {
				return nil, fmt.Errorf("%w (duplicate column name '%s')", ErrMalformedResponse, h)
			}

			index[k] = i
		}

		header = append(header, h)
	}

	// ... records
	for _, row := range data.Values[1:] {
		if len(row) == 0 {
			continue
		}

		record := records.Record{}
		for i, h := range header {
			if h == "" {
				continue
			}

			v := ""
			if i < len(row) && row[i] != nil {
				v = fmt.Sprintf("%v", row[i])
			}

			record[h] = v
		}

		list = append(list, record)
	}

	return records.Payload{"status": "success", "records": list}, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
