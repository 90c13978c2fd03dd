package services

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("somchai01"); err != nil {
		t.Errorf("valid username rejected: %v", err)
	}
	if err := ValidateUsername(""); err == nil {
		t.Error("empty username accepted")
	}
	if err := ValidateUsername(strings.Repeat("a", 51)); err == nil {
		t.Error("51-char username accepted")
	}
	for _, bad := range []string{"with space", "dash-ed", "ünïcode", "semi;colon"} {
		if err := ValidateUsername(bad); err == nil {
			t.Errorf("username %q accepted", bad)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("John Smith"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateName("John  Smith"); err == nil {
		t.Error("double space accepted")
	}
	if err := ValidateName("John_Smith"); err == nil {
		t.Error("underscore accepted")
	}
	if err := ValidateName(""); err == nil {
		t.Error("empty name accepted")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	for _, bad := range []string{"", "no-at-sign", "two@@example.com", "user@nodomain", "a b@example.com"} {
		if err := ValidateEmail(bad); err == nil {
			t.Errorf("email %q accepted", bad)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("hunter2"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("empty password accepted")
	}
	if err := ValidatePassword(strings.Repeat("x", 201)); err == nil {
		t.Error("201-char password accepted")
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription(""); err != nil {
		t.Errorf("empty description rejected: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 200)); err != nil {
		t.Errorf("200-char description rejected: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 201)); err == nil {
		t.Error("201-char description accepted")
	}
}
