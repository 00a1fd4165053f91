package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-06-01"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-06-01"` {
		t.Fatalf("unexpected encoding %s", out)
	}

	if err := json.Unmarshal([]byte(`"2024-06-01T15:04:05Z"`), &d); err != nil || d.String() != "2024-06-01" {
		t.Fatalf("rfc3339 input: %v %s", err, d)
	}
	if err := json.Unmarshal([]byte(`"June 1st"`), &d); err == nil {
		t.Fatalf("expected error for free text")
	}
	if err := json.Unmarshal([]byte(`20240601`), &d); err == nil {
		t.Fatalf("expected error for number")
	}
}

func TestDateScan(t *testing.T) {
	cases := []any{
		"2024-06-03",
		[]byte("2024-06-03"),
		"2024-06-03 00:00:00+00:00",
		time.Date(2024, 6, 3, 22, 0, 0, 0, time.UTC),
	}
	for _, c := range cases {
		var d Date
		if err := d.Scan(c); err != nil {
			t.Fatalf("scan %v: %v", c, err)
		}
		if d.String() != "2024-06-03" {
			t.Fatalf("scan %v gave %s", c, d)
		}
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error for int")
	}
}

func TestDateArithmetic(t *testing.T) {
	start := NewDate(2024, time.February, 28)
	end := start.AddDays(2)
	if end.String() != "2024-03-01" {
		t.Fatalf("leap day not handled: %s", end)
	}
	if n := start.DaysUntil(end); n != 2 {
		t.Fatalf("expected 2 days, got %d", n)
	}
	if n := end.DaysUntil(start); n != -2 {
		t.Fatalf("expected -2 days, got %d", n)
	}
	if !start.Before(end) || end.Before(start) {
		t.Fatalf("ordering broken")
	}
}
