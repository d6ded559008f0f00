package validation

import (
	"testing"
)

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		want        bool
		wantInvalid []string
	}{
		{
			name:   "all fields filled",
			fields: map[string]string{"username": "admin", "password": "admin123"},
			want:   true,
		},
		{
			name:        "one empty field",
			fields:      map[string]string{"username": "admin", "password": ""},
			want:        false,
			wantInvalid: []string{"password"},
		},
		{
			name:        "whitespace counts as empty",
			fields:      map[string]string{"username": "   ", "password": "admin123"},
			want:        false,
			wantInvalid: []string{"username"},
		},
		{
			name:        "all fields empty",
			fields:      map[string]string{"username": "", "password": ""},
			want:        false,
			wantInvalid: []string{"username", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewForm()
			// insertion order fixed for deterministic Invalid()
			for _, name := range []string{"username", "password"} {
				form.Require(name, tt.fields[name])
			}

			if got := form.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}

			invalid := form.Invalid()
			if len(invalid) != len(tt.wantInvalid) {
				t.Fatalf("Invalid() = %v, want %v", invalid, tt.wantInvalid)
			}
			for i, name := range tt.wantInvalid {
				if invalid[i] != name {
					t.Errorf("Invalid()[%d] = %q, want %q", i, invalid[i], name)
				}
			}
		})
	}
}

func TestFormFields(t *testing.T) {
	form := NewForm().
		Require("firstName", "Asha").
		Require("lastName", "")

	form.Validate()
	fields := form.Fields()

	if len(fields) != 2 {
		t.Fatalf("Fields() length = %d, want 2", len(fields))
	}
	if !fields[0].Valid || fields[0].Name != "firstName" {
		t.Errorf("Fields()[0] = %+v, want valid firstName", fields[0])
	}
	if fields[1].Valid || fields[1].Message == "" {
		t.Errorf("Fields()[1] = %+v, want invalid lastName with message", fields[1])
	}
}

func TestFormRequireOverwrite(t *testing.T) {
	form := NewForm().
		Require("email", "").
		Require("email", "student@skylink.edu")

	if !form.Validate() {
		t.Error("Validate() = false after the field was re-set with a value")
	}
	if len(form.Fields()) != 1 {
		t.Errorf("Fields() length = %d, want 1 (no duplicate entries)", len(form.Fields()))
	}
}

func TestCompiledPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"valid email", "email", "student@skylink.edu", true},
		{"email missing domain", "email", "student@", false},
		{"valid mobile", "mobile", "9876543210", true},
		{"short mobile", "mobile", "98765", false},
		{"mobile with letters", "mobile", "98765abcde", false},
		{"valid aadhar", "aadhar", "123456789012", true},
		{"short aadhar", "aadhar", "12345678901", false},
		{"valid pincode", "pincode", "400001", true},
		{"long pincode", "pincode", "4000011", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.pattern {
			case "email":
				got = CompiledPatterns.Email.MatchString(tt.input)
			case "mobile":
				got = CompiledPatterns.Mobile.MatchString(tt.input)
			case "aadhar":
				got = CompiledPatterns.Aadhar.MatchString(tt.input)
			case "pincode":
				got = CompiledPatterns.Pincode.MatchString(tt.input)
			}
			if got != tt.want {
				t.Errorf("pattern %s match %q = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}
