package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDateRecent(t *testing.T) {
	got := FormatDate(time.Now().Add(-2 * time.Hour))
	if !strings.Contains(got, "ago") {
		t.Errorf("recent timestamp = %q, want relative form", got)
	}
}

func TestFormatDateOld(t *testing.T) {
	old := time.Date(2024, 3, 9, 15, 4, 0, 0, time.Local)
	got := FormatDate(old)
	if got != "03/09/2024 3:04 PM" {
		t.Errorf("old timestamp = %q, want 03/09/2024 3:04 PM", got)
	}
}

func TestRandomSuffix(t *testing.T) {
	a, b := RandomSuffix(), RandomSuffix()
	if len(a) != 13 {
		t.Errorf("len = %d, want 13", len(a))
	}
	if a == b {
		t.Error("two suffixes collided")
	}
	if strings.Contains(a, "-") {
		t.Errorf("suffix %q contains a dash", a)
	}
}
