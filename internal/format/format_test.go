package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	d := time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC)
	if got := Date(d, "en"); got != "Jun 13, 2026" {
		t.Fatalf("en: got %q", got)
	}
	if got := Date(d, "fa"); got != "۲۰۲۶/۰۶/۱۳" {
		t.Fatalf("fa: got %q", got)
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("3 / 12", "fa"); got != "۳ / ۱۲" {
		t.Fatalf("fa digits: got %q", got)
	}
	if got := Digits("3 / 12", "en"); got != "3 / 12" {
		t.Fatalf("en digits must pass through, got %q", got)
	}
}
