package mailer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

func TestEscapeCSVField(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"has,comma", `"has,comma"`},
		{`has "quotes"`, `"has ""quotes"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"carriage\rreturn", "\"carriage\rreturn\""},
		{"", ""},
	}
	for _, c := range cases {
		if got := EscapeCSVField(c.in); got != c.want {
			t.Fatalf("EscapeCSVField(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildCSV_RoundTripsThroughStandardReader(t *testing.T) {
	fields := []labeledField{
		{"Name", `Ramesh "RK" Kulkarni`},
		{"Items", "TMT bars, 12mm\n500 pieces"},
		{"Notes", ""},
	}
	data := buildCSV(fields)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("generated CSV does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and data row, got %d rows", len(records))
	}
	if records[0][0] != "Name" || records[0][2] != "Notes" {
		t.Fatalf("unexpected header row: %v", records[0])
	}
	for i, f := range fields {
		if records[1][i] != f.Value {
			t.Fatalf("column %d: got %q, want %q", i, records[1][i], f.Value)
		}
	}
}

func TestBuildCSV_UsesCRLF(t *testing.T) {
	data := string(buildCSV([]labeledField{{"A", "1"}}))
	if !strings.HasSuffix(data, "\r\n") || strings.Count(data, "\r\n") != 2 {
		t.Fatalf("expected CRLF row terminators, got %q", data)
	}
}

func TestCSVFilename(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 5, 0, time.UTC)

	got := csvFilename("Ramesh Kulkarni", at)
	if got != "lead-20260314-093005-RameshKulkarni.csv" {
		t.Fatalf("unexpected filename %q", got)
	}

	got = csvFilename("../../etc/passwd; rm -rf", at)
	if strings.ContainsAny(got, "/;| ") {
		t.Fatalf("filename not sanitized: %q", got)
	}

	got = csvFilename("", at)
	if !strings.Contains(got, "lead") {
		t.Fatalf("expected fallback stem in %q", got)
	}
}
