package records

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// KnownMinistries is the canonical spelling of every ministry/department that
// appears on the dashboard.
var KnownMinistries = []string{
	"Ministry of Mines",
	"Ministry of Electronics and IT",
	"Ministry of Heavy Industries",
	"Department of Science and Technology",
	"UP Government",
	"Gujarat Government",
	"Telangana Government",
}

var ministries = func() map[string]string {
	m := map[string]string{}
	for _, name := range KnownMinistries {
		m[fold(name)] = name
	}

	return m
}()

// CanonicalMinistry trims and collapses the whitespace in a ministry name and
// replaces it with the canonical spelling if it matches one of the known
// ministries, ignoring case. Unknown names are returned collapsed but otherwise
// as is.
func CanonicalMinistry(v any) string {
	if v == nil {
		return ""
	}

	raw := strings.TrimSpace(stringify(v))
	if raw == "" {
		return ""
	}

	collapsed := strings.Join(strings.Fields(raw), " ")
	if name, ok := ministries[fold(collapsed)]; ok {
		return name
	}

	return collapsed
}

// cases.Caser is stateful so a new one is created for each lookup.
func fold(s string) string {
	return cases.Fold().String(s)
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s

	case json.Number:
		return s.String()

	default:
		return fmt.Sprintf("%v", v)
	}
}
