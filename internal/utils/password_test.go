package utils

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "Str0ng!pass", nil},
		{"minimum length", "aA1!bcd", nil},
		{"too short", "aA1!bc", ErrPasswordTooShort},
		{"too long", "aA1!" + strings.Repeat("x", 61), ErrPasswordTooLong},
		{"no upper case", "str0ng!pass", ErrPasswordNoMixedCase},
		{"no lower case", "STR0NG!PASS", ErrPasswordNoMixedCase},
		{"no digit", "Strong!pass", ErrPasswordNoDigit},
		{"no special", "Str0ngpass", ErrPasswordNoSpecial},
	}

	for _, tc := range cases {
		if got := ValidatePassword(tc.password); got != tc.want {
			t.Errorf("%s: ValidatePassword(%q) = %v, want %v", tc.name, tc.password, got, tc.want)
		}
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Str0ng!pass" {
		t.Fatal("hash must not equal the plain password")
	}

	if !VerifyPassword(hash, "Str0ng!pass") {
		t.Error("correct password should verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password should not verify")
	}
}
