package authutil

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse 1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse 1" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword("correct horse 1", hash) {
		t.Error("expected matching password to check out")
	}
	if CheckPassword("wrong horse 1", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestCheckPassword_BadHash(t *testing.T) {
	if CheckPassword("anything", "not-a-bcrypt-hash") {
		t.Error("expected malformed hash to fail closed")
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		wantErr  bool
	}{
		{"short1", true},
		{"alllettershere", true},
		{"1234567890123", true},
		{"goodpassword1", false},
		{"Another0kPassword", false},
	}
	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.wantErr && err == nil {
			t.Errorf("ValidatePassword(%q): expected error", tc.password)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("ValidatePassword(%q): unexpected error %v", tc.password, err)
		}
	}
}

func TestPasswordRules_MentionsLength(t *testing.T) {
	if !strings.Contains(PasswordRules(), "10") {
		t.Error("expected rules text to mention the minimum length")
	}
}

func TestIsValidEmail_Valid(t *testing.T) {
	validEmails := []string{
		"test@example.com",
		"user@domain.org",
		"name.surname@company.co.uk",
		"a@b.co",
	}
	for _, email := range validEmails {
		if !IsValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
}

func TestIsValidEmail_Invalid(t *testing.T) {
	invalidEmails := []string{
		"testexample.com",
		"test@@example.com",
		"@example.com",
		"test@example",
		"test@example.",
		"test@.example.com",
		"",
	}
	for _, email := range invalidEmails {
		if IsValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
