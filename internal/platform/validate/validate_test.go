package validate

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestErrors_Empty(t *testing.T) {
	var errs Errors
	if errs.Err() != nil {
		t.Error("expected nil for empty error set")
	}
}

func TestErrors_Collects(t *testing.T) {
	var errs Errors
	errs.Required("patient_name", "")
	errs.Required("mobile_number", "9876543210")
	errs.Email("email", "not-an-email")

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Field != "patient_name" {
		t.Errorf("expected patient_name, got %s", errs[0].Field)
	}
	if errs[1].Field != "email" {
		t.Errorf("expected email, got %s", errs[1].Field)
	}
	if errs.Err() == nil {
		t.Error("expected non-nil error")
	}
}

func TestAsErrors(t *testing.T) {
	var errs Errors
	errs.Add("gender", "must be one of: male, female, other")

	wrapped := fmt.Errorf("create patient: %w", errs.Err())
	got, ok := AsErrors(wrapped)
	if !ok {
		t.Fatal("expected AsErrors to unwrap")
	}
	if len(got) != 1 || got[0].Field != "gender" {
		t.Errorf("unexpected unwrapped errors: %+v", got)
	}

	if _, ok := AsErrors(fmt.Errorf("plain error")); ok {
		t.Error("expected plain error not to unwrap")
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"a@b.com", true},
		{"first.last@hospital.example.org", true},
		{"", true}, // empty passes; pair with Required
		{"missing-at.com", false},
		{"a@b", false},
		{"a b@c.com", false},
	}
	for _, tc := range cases {
		var errs Errors
		errs.Email("email", tc.value)
		if tc.ok != (len(errs) == 0) {
			t.Errorf("Email(%q): expected ok=%v, got errors %+v", tc.value, tc.ok, errs)
		}
	}
}

func TestMobile(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"", true},
		{"12345", false},
		{"not-a-number", false},
	}
	for _, tc := range cases {
		var errs Errors
		errs.Mobile("mobile_number", tc.value)
		if tc.ok != (len(errs) == 0) {
			t.Errorf("Mobile(%q): expected ok=%v, got errors %+v", tc.value, tc.ok, errs)
		}
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"male", "female", "other"}

	var errs Errors
	errs.OneOf("gender", "female", allowed)
	if len(errs) != 0 {
		t.Errorf("expected no errors for allowed value, got %+v", errs)
	}

	errs = nil
	errs.OneOf("gender", "unknown", allowed)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error for disallowed value, got %d", len(errs))
	}
}

func TestDate(t *testing.T) {
	var errs Errors
	d := errs.Date("dob", "1990-06-15")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if d.Year() != 1990 || d.Month() != 6 || d.Day() != 15 {
		t.Errorf("unexpected parsed date: %v", d)
	}

	errs = nil
	errs.Date("dob", "15/06/1990")
	if len(errs) != 1 {
		t.Errorf("expected format error, got %+v", errs)
	}

	errs = nil
	errs.Date("dob", "")
	if len(errs) != 1 {
		t.Errorf("expected required error, got %+v", errs)
	}
}

func TestOptionalDate(t *testing.T) {
	var errs Errors
	if d := errs.OptionalDate("start_date", ""); d != nil || len(errs) != 0 {
		t.Errorf("expected nil for empty value, got %v / %+v", d, errs)
	}
	if d := errs.OptionalDate("start_date", "2025-01-31"); d == nil || len(errs) != 0 {
		t.Errorf("expected parsed date, got %v / %+v", d, errs)
	}
}

func TestOptionalTime(t *testing.T) {
	var errs Errors
	tm := errs.OptionalTime("incoming_time", "09:30")
	if tm == nil || len(errs) != 0 {
		t.Fatalf("expected parsed time, got %v / %+v", tm, errs)
	}
	if tm.Hour() != 9 || tm.Minute() != 30 {
		t.Errorf("unexpected time: %v", tm)
	}

	errs = nil
	if tm := errs.OptionalTime("incoming_time", "late"); tm != nil || len(errs) != 1 {
		t.Errorf("expected format error, got %v / %+v", tm, errs)
	}
}

func TestAmount(t *testing.T) {
	var errs Errors
	d := errs.Amount("amount", "1000.00")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if !d.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unexpected decimal: %s", d)
	}

	errs = nil
	errs.Amount("amount", "-5")
	if len(errs) != 1 {
		t.Errorf("expected negative rejection, got %+v", errs)
	}

	errs = nil
	errs.Amount("amount", "abc")
	if len(errs) != 1 {
		t.Errorf("expected parse rejection, got %+v", errs)
	}
}

func TestIntHelpers(t *testing.T) {
	var errs Errors
	errs.NonNegativeInt("experience", 0)
	errs.PositiveInt("total_beds", 10)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}

	errs = nil
	errs.NonNegativeInt("experience", -1)
	errs.PositiveInt("total_beds", 0)
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %+v", errs)
	}
}

func TestMinLen(t *testing.T) {
	var errs Errors
	errs.MinLen("password", "secret123", 8)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}

	errs = nil
	errs.MinLen("password", "short", 8)
	if len(errs) != 1 {
		t.Errorf("expected length rejection, got %+v", errs)
	}
}
