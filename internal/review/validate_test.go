package review

import (
	"errors"
	"testing"
)

func TestCheckResponse_Valid(t *testing.T) {
	raw := []byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1609459200}`)
	page, err := CheckResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Homeworks) != 1 {
		t.Fatalf("expected 1 homework, got %d", len(page.Homeworks))
	}
	if page.CurrentDate != 1609459200 {
		t.Errorf("expected current_date 1609459200, got %d", page.CurrentDate)
	}
	hw := page.Homeworks[0]
	if hw.Name == nil || *hw.Name != "hw1" {
		t.Error("homework_name not decoded")
	}
	if hw.Status == nil || *hw.Status != "approved" {
		t.Error("status not decoded")
	}
}

func TestCheckResponse_EmptyList(t *testing.T) {
	page, err := CheckResponse([]byte(`{"homeworks":[],"current_date":1700000000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Homeworks) != 0 {
		t.Errorf("expected empty list, got %d records", len(page.Homeworks))
	}
}

func TestCheckResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty object", `{}`, ErrMissingKeys},
		{"missing current_date", `{"homeworks":[]}`, ErrMissingKeys},
		{"missing homeworks", `{"current_date":1}`, ErrMissingKeys},
		{"top-level array", `[{"homeworks":[]}]`, ErrMalformed},
		{"top-level string", `"homeworks"`, ErrMalformed},
		{"top-level null", `null`, ErrMalformed},
		{"not json at all", `<html>504</html>`, ErrMalformed},
		{"homeworks null", `{"homeworks":null,"current_date":1}`, ErrWrongType},
		{"homeworks object", `{"homeworks":{"hw1":"approved"},"current_date":1}`, ErrWrongType},
		{"homeworks string", `{"homeworks":"none","current_date":1}`, ErrWrongType},
		{"current_date string", `{"homeworks":[],"current_date":"today"}`, ErrWrongType},
		{"current_date fractional", `{"homeworks":[],"current_date":15.5}`, ErrWrongType},
		{"current_date null", `{"homeworks":[],"current_date":null}`, ErrWrongType},
	}
	for _, tt := range tests {
		_, err := CheckResponse([]byte(tt.raw))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}
