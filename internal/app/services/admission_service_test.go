package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

func validAdmissionRequest() *dto.CreateAdmissionRequest {
	return &dto.CreateAdmissionRequest{
		CourseID:    1,
		StudentName: "Asha Kumar",
		Email:       "asha@skylink.edu",
		DateOfBirth: "2004-06-15",
		FatherName:  "Ravi Kumar",
		MotherName:  "Meena Kumar",
		MobileNo:    "9876543210",
		AadharNo:    "123456789012",
		Address:     "12 College Road",
		State:       "Maharashtra",
		District:    "Pune",
		Pincode:     "411001",
		Gender:      "Female",
	}
}

func TestCreateAdmission_Validation(t *testing.T) {
	svc := NewAdmissionService(nil, nil, zerolog.Nop())

	tests := []struct {
		name   string
		mutate func(req *dto.CreateAdmissionRequest)
	}{
		{"missing student name", func(r *dto.CreateAdmissionRequest) { r.StudentName = "" }},
		{"whitespace father name", func(r *dto.CreateAdmissionRequest) { r.FatherName = "   " }},
		{"missing address", func(r *dto.CreateAdmissionRequest) { r.Address = "" }},
		{"invalid email", func(r *dto.CreateAdmissionRequest) { r.Email = "not-an-email" }},
		{"short mobile", func(r *dto.CreateAdmissionRequest) { r.MobileNo = "12345" }},
		{"short aadhar", func(r *dto.CreateAdmissionRequest) { r.AadharNo = "1234" }},
		{"bad pincode", func(r *dto.CreateAdmissionRequest) { r.Pincode = "41100" }},
		{"marks above total", func(r *dto.CreateAdmissionRequest) {
			obtain, total := 95, 90
			r.ObtainMarks, r.TotalMarks = &obtain, &total
		}},
		{"zero total marks", func(r *dto.CreateAdmissionRequest) {
			obtain, total := 0, 0
			r.ObtainMarks, r.TotalMarks = &obtain, &total
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAdmissionRequest()
			tt.mutate(req)

			_, err := svc.CreateAdmission(context.Background(), 1, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateAdmission() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestCreateAdmission_NilRequest(t *testing.T) {
	svc := NewAdmissionService(nil, nil, zerolog.Nop())

	_, err := svc.CreateAdmission(context.Background(), 1, nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("CreateAdmission(nil) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestCreateAdmission_MissingFieldsReported(t *testing.T) {
	svc := NewAdmissionService(nil, nil, zerolog.Nop())

	req := validAdmissionRequest()
	req.MotherName = ""
	req.State = ""

	_, err := svc.CreateAdmission(context.Background(), 1, req)

	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("CreateAdmission() error = %v, want *apperrors.CustomError", err)
	}

	fields, ok := customErr.Details["fields"].([]string)
	if !ok {
		t.Fatalf("CustomError details missing field list: %+v", customErr.Details)
	}
	if len(fields) != 2 || fields[0] != "motherName" || fields[1] != "state" {
		t.Errorf("invalid fields = %v, want [motherName state]", fields)
	}
}

func TestGetAllAdmissions_UnknownStatus(t *testing.T) {
	svc := NewAdmissionService(nil, nil, zerolog.Nop())

	status := models.AdmissionStatus("Waitlisted")
	_, _, err := svc.GetAllAdmissions(context.Background(), &status, 1, 20)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("GetAllAdmissions() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestUpdateAdmissionStatus_Validation(t *testing.T) {
	svc := NewAdmissionService(nil, nil, zerolog.Nop())

	if err := svc.UpdateAdmissionStatus(context.Background(), 0, models.AdmissionApproved); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateAdmissionStatus() with zero ID error = %v, want %v", err, apperrors.ErrValidationFailed)
	}

	if err := svc.UpdateAdmissionStatus(context.Background(), 1, models.AdmissionStatus("approved")); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateAdmissionStatus() with lowercase status error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}
