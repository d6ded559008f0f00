package models

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestAdmissionStatusValid(t *testing.T) {
	tests := []struct {
		status AdmissionStatus
		want   bool
	}{
		{AdmissionPending, true},
		{AdmissionApproved, true},
		{AdmissionRejected, true},
		{AdmissionStatus("pending"), false}, // case sensitive
		{AdmissionStatus("Waitlisted"), false},
		{AdmissionStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("AdmissionStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// admissionTableColumns parses the column names out of the admission
// CREATE TABLE statement in the bundled initial migration.
func admissionTableColumns(t *testing.T) map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile("../../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("reading initial migration: %v", err)
	}

	_, after, found := strings.Cut(string(ddl), "CREATE TABLE IF NOT EXISTS admission (")
	if !found {
		t.Fatal("initial migration has no admission table")
	}
	body, _, found := strings.Cut(after, ");")
	if !found {
		t.Fatal("admission table statement is not terminated")
	}

	columns := make(map[string]bool)
	for _, line := range strings.Split(body, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || strings.HasPrefix(fields[0], "CHECK") {
			continue
		}
		columns[fields[0]] = true
	}
	return columns
}

func TestAdmissionTagsMatchSchema(t *testing.T) {
	columns := admissionTableColumns(t)

	typ := reflect.TypeOf(Admission{})
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue // join-populated fields carry no db tag
		}
		if !columns[tag] {
			t.Errorf("Admission.%s db tag %q has no matching admission column", field.Name, tag)
		}
	}
}

func TestResultStatusValid(t *testing.T) {
	tests := []struct {
		status ResultStatus
		want   bool
	}{
		{ResultPass, true},
		{ResultFail, true},
		{ResultATKT, true},
		{ResultStatus("atkt"), false},
		{ResultStatus("Absent"), false},
		{ResultStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("ResultStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPaymentStatusValid(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   bool
	}{
		{PaymentPending, true},
		{PaymentPaid, true},
		{PaymentFailed, true},
		{PaymentStatus("Refunded"), false},
		{PaymentStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("PaymentStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
