package core

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-11-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2023 || d.String() != "2023-11-15" {
		t.Fatalf("parsed %q, want 2023-11-15", d)
	}
	if _, err := ParseDate("15.11.2023"); err == nil {
		t.Fatal("expected error for non-ISO format")
	}
	if _, err := ParseDate("2023-02-30"); err == nil {
		t.Fatal("expected error for impossible date")
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-02-29"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Fatalf("marshaled %s", b)
	}
	if err := json.Unmarshal([]byte(`20240229`), &d); err == nil {
		t.Fatal("expected error for non-string date")
	}
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		from, to Date
		want     int
	}{
		{NewDate(2023, 1, 1), NewDate(2024, 1, 1), 365},
		{NewDate(2024, 1, 1), NewDate(2025, 1, 1), 366}, // leap year
		{NewDate(2023, 6, 1), NewDate(2023, 6, 1), 0},
		{NewDate(2023, 6, 2), NewDate(2023, 6, 1), -1},
	}
	for _, tc := range cases {
		if got := tc.from.DaysUntil(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: got %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}
