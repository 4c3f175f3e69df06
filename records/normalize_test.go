package records

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	expected := Record{
		"Ministry / Department": "gujarat government",
		"Scheme Description":    "x",
		"Ministry":              "Gujarat Government",
		"Description":           "x",
		"Commencement Date":     "",
		"Stage 1 Deadline":      "",
		"Stage 2 Deadline":      "",
		"Stage 3 Deadline":      "",
	}

	payload := Payload{
		"records": []any{
			Record{
				"Ministry / Department": "gujarat government",
				"Scheme Description":    "x",
			},
		},
	}

	Normalize(payload)

	list := payload[Records].([]any)
	if len(list) != 1 {
		t.Fatalf("Incorrect number of records - expected:%v, got:%v", 1, len(list))
	}

	if !reflect.DeepEqual(list[0], expected) {
		t.Errorf("Incorrect record\n   expected: %v\n   got:      %v", expected, list[0])
	}

	if _, ok := list[0].(Record)[Timelines]; ok {
		t.Errorf("Unexpected %q field", Timelines)
	}
}

func TestNormalizeDoesNotOverwriteMinistry(t *testing.T) {
	record := Record{
		"Ministry":              "  ministry OF mines ",
		"Ministry / Department": "UP Government",
	}

	Normalize(Payload{"records": []any{record}})

	if v := record[Ministry]; v != "Ministry of Mines" {
		t.Errorf("Incorrect ministry - expected:%q, got:%q", "Ministry of Mines", v)
	}
}

func TestNormalizeCanonicalizesMissingMinistry(t *testing.T) {
	record := Record{
		"Scheme": "PLI",
	}

	Normalize(Payload{"records": []any{record}})

	if v, ok := record[Ministry]; !ok || v != "" {
		t.Errorf("Incorrect ministry - expected:%q, got:%#v", "", v)
	}
}

func TestNormalizeWithEmptyMinistry(t *testing.T) {
	record := Record{
		"Ministry":              "",
		"Ministry / Department": "telangana   Government",
	}

	Normalize(Payload{"records": []any{record}})

	if v := record[Ministry]; v != "Telangana Government" {
		t.Errorf("Incorrect ministry - expected:%q, got:%q", "Telangana Government", v)
	}
}

func TestNormalizeWithEmptyDescription(t *testing.T) {
	record := Record{
		"Description": "",
	}

	Normalize(Payload{"records": []any{record}})

	if v, ok := record[Description]; !ok || v != "" {
		t.Errorf("Incorrect description - expected:%q, got:%#v", "", v)
	}
}

func TestNormalizeDescriptionAlias(t *testing.T) {
	tests := []struct {
		record   Record
		expected any
	}{
		{Record{"Description": "", "Scheme Description": "alias"}, "alias"},
		{Record{"Scheme Description": "alias"}, "alias"},
		{Record{"Description": "own", "Scheme Description": "alias"}, "own"},
		{Record{"Description": nil, "Scheme Description": "alias"}, "alias"},
		{Record{"Scheme Description": ""}, ""},
	}

	for _, test := range tests {
		Normalize(Payload{"records": []any{test.record}})

		if v := test.record[Description]; v != test.expected {
			t.Errorf("Incorrect description - expected:%q, got:%q", test.expected, v)
		}
	}
}

func TestNormalizeBackfillKeepsExistingValues(t *testing.T) {
	record := Record{
		"Commencement Date": "01-Apr-2024",
		"Stage 1 Deadline":  "",
		"Extra":             "extra",
	}

	Normalize(Payload{"records": []any{record}})

	expected := map[string]any{
		CommencementDate: "01-Apr-2024",
		Stage1Deadline:   "",
		Stage2Deadline:   "",
		Stage3Deadline:   "",
		"Extra":          "extra",
	}

	for k, v := range expected {
		if record[k] != v {
			t.Errorf("Incorrect %q - expected:%q, got:%#v", k, v, record[k])
		}
	}
}

func TestNormalizeTimelines(t *testing.T) {
	tests := []struct {
		record   Record
		expected any
	}{
		{Record{"Stage 3 Deadline": "31-Mar-2025"}, "31-Mar-2025"},
		{Record{"Stage 3 Deadline": "31-Mar-2025", "Timelines (by when)": ""}, "31-Mar-2025"},
		{Record{"Stage 3 Deadline": "31-Mar-2025", "Timelines (by when)": "Q4"}, "Q4"},
		{Record{"Stage 3 Deadline": "", "Timelines (by when)": ""}, ""},
	}

	for _, test := range tests {
		Normalize(Payload{"records": []any{test.record}})

		if v := test.record[Timelines]; v != test.expected {
			t.Errorf("Incorrect timeline - expected:%q, got:%q", test.expected, v)
		}
	}
}

func TestNormalizeSkipsInvalidRecords(t *testing.T) {
	list := []any{
		"not a record",
		42,
		nil,
		[]any{"a", "b"},
		Record{"Ministry": "gujarat government"},
	}

	payload := Payload{"records": list}

	Normalize(payload)

	if v := list[0]; v != "not a record" {
		t.Errorf("Invalid record modified - got %v", v)
	}

	if v := list[4].(Record)[Ministry]; v != "Gujarat Government" {
		t.Errorf("Incorrect ministry - expected:%q, got:%q", "Gujarat Government", v)
	}

	if v := payload[RecordsCount]; v != 5 {
		t.Errorf("Incorrect records_count - expected:%v, got:%v", 5, v)
	}
}

func TestNormalizePagination(t *testing.T) {
	payload := Payload{
		"records": []any{Record{}, Record{}, Record{}},
	}

	Normalize(payload)

	expected := map[string]any{
		RecordsCount:      3,
		RecordsStartIndex: 1,
		RecordsEndIndex:   3,
	}

	for k, v := range expected {
		if payload[k] != v {
			t.Errorf("Incorrect %v - expected:%v, got:%v", k, v, payload[k])
		}
	}
}

func TestNormalizePaginationWithEmptyRecords(t *testing.T) {
	payload := Payload{
		"records": []any{},
	}

	Normalize(payload)

	expected := map[string]any{
		RecordsCount:      0,
		RecordsStartIndex: 0,
		RecordsEndIndex:   0,
	}

	for k, v := range expected {
		if payload[k] != v {
			t.Errorf("Incorrect %v - expected:%v, got:%v", k, v, payload[k])
		}
	}
}

func TestNormalizePaginationWithUpstreamStartIndex(t *testing.T) {
	payload, err := Decode(strings.NewReader(`{"records":[{},{}],"records_start_index":11}`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Decode (%v)", err)
	}

	Normalize(payload)

	if v := payload[RecordsEndIndex]; v != 12 {
		t.Errorf("Incorrect records_end_index - expected:%v, got:%v", 12, v)
	}

	if v := payload[RecordsCount]; v != 2 {
		t.Errorf("Incorrect records_count - expected:%v, got:%v", 2, v)
	}
}

func TestNormalizeAfterAdapt(t *testing.T) {
	payload, err := Decode(strings.NewReader(`{
	  "status": "success",
	  "data": {
	    "records_count": 2,
	    "records": [
	      { "Ministry / Department": "ministry of heavy industries", "Stage 3 Deadline": "30-Jun-2025" },
	      { "Ministry": "Foo   Bar", "Description": "", "Scheme Description": "alias" }
	    ]
	  }
	}`))
	if err != nil {
		t.Fatalf("Unexpected error returned from Decode (%v)", err)
	}

	if err := Adapt(payload); err != nil {
		t.Fatalf("Unexpected error returned from Adapt (%v)", err)
	}

	Normalize(payload)

	list := payload[Records].([]any)
	first := list[0].(Record)
	second := list[1].(Record)

	if v := first[Ministry]; v != "Ministry of Heavy Industries" {
		t.Errorf("Incorrect ministry - expected:%q, got:%q", "Ministry of Heavy Industries", v)
	}

	if v := first[Timelines]; v != "30-Jun-2025" {
		t.Errorf("Incorrect timeline - expected:%q, got:%q", "30-Jun-2025", v)
	}

	if v := second[Ministry]; v != "Foo Bar" {
		t.Errorf("Incorrect ministry - expected:%q, got:%q", "Foo Bar", v)
	}

	if v := second[Description]; v != "alias" {
		t.Errorf("Incorrect description - expected:%q, got:%q", "alias", v)
	}

	if v := Count(payload); v != 2 {
		t.Errorf("Incorrect count - expected:%v, got:%v", 2, v)
	}

	if v := payload[RecordsEndIndex]; v != 2 {
		t.Errorf("Incorrect records_end_index - expected:%v, got:%v", 2, v)
	}
}
