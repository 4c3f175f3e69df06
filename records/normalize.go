package records

import (
	"encoding/json"
)

const (
	Ministry           = "Ministry"
	MinistryDepartment = "Ministry / Department"
	Description        = "Description"
	SchemeDescription  = "Scheme Description"
	CommencementDate   = "Commencement Date"
	Stage1Deadline     = "Stage 1 Deadline"
	Stage2Deadline     = "Stage 2 Deadline"
	Stage3Deadline     = "Stage 3 Deadline"
	Timelines          = "Timelines (by when)"
)

// Columns added to the worksheet after the first version of the dashboard.
// Older records are backfilled with an empty value.
var added = []string{
	Description,
	CommencementDate,
	Stage1Deadline,
	Stage2Deadline,
	Stage3Deadline,
}

// Normalize rewrites every record in the payload to the current worksheet
// schema and fills in any pagination fields that are still missing. Entries
// that are not records are left as is. The payload is modified in place and
// returned for convenience.
//
// Normalize expects the payload to have been through Adapt.
func Normalize(payload Payload) Payload {
	list, _ := payload[Records].([]any)

	for _, entry := range list {
		if record, ok := entry.(Record); ok {
			normalize(record)
		}
	}

	if _, ok := payload[RecordsCount]; !ok {
		payload[RecordsCount] = len(list)
	}

	if _, ok := payload[RecordsStartIndex]; !ok {
		if len(list) > 0 {
			payload[RecordsStartIndex] = 1
		} else {
			payload[RecordsStartIndex] = 0
		}
	}

	if _, ok := payload[RecordsEndIndex]; !ok {
		if len(list) > 0 {
			start, ok := toInt(payload[RecordsStartIndex])
			if !ok {
				start = 1
			}

			payload[RecordsEndIndex] = start + len(list) - 1
		} else {
			payload[RecordsEndIndex] = 0
		}
	}

	return payload
}

func normalize(record Record) {
	// ... 'Ministry / Department' was renamed to 'Ministry'
	if !truthy(record[Ministry]) && truthy(record[MinistryDepartment]) {
		record[Ministry] = record[MinistryDepartment]
	}

	record[Ministry] = CanonicalMinistry(record[Ministry])

	// ... 'Scheme Description' was renamed to 'Description'
	if !truthy(record[Description]) && truthy(record[SchemeDescription]) {
		record[Description] = record[SchemeDescription]
	}

	for _, field := range added {
		if _, ok := record[field]; !ok {
			record[field] = ""
		}
	}

	if !truthy(record[Timelines]) && truthy(record[Stage3Deadline]) {
		record[Timelines] = record[Stage3Deadline]
	}
}

// truthy follows the JSON notion of an empty value: null, false, zero, "" and
// empty lists/objects are all false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false

	case string:
		return x != ""

	case bool:
		return x

	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f != 0
		}

		return x != ""

	case float64:
		return x != 0

	case int:
		return x != 0

	case []any:
		return len(x) > 0

	case map[string]any:
		return len(x) > 0

	default:
		return true
	}
}
