package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

// Validation runs before any repository access, so a nil repository is
// fine for these paths.

func TestCreateCourse_Validation(t *testing.T) {
	svc := NewCourseService(nil)

	tests := []struct {
		name   string
		course *models.Course
	}{
		{"nil course", nil},
		{"empty name", &models.Course{CourseName: "  ", CourseCode: "BBA001", DurationYears: 3}},
		{"lowercase code", &models.Course{CourseName: "BBA", CourseCode: "bba001", DurationYears: 3}},
		{"code with spaces", &models.Course{CourseName: "BBA", CourseCode: "BBA 001", DurationYears: 3}},
		{"empty code", &models.Course{CourseName: "BBA", CourseCode: "", DurationYears: 3}},
		{"zero duration", &models.Course{CourseName: "BBA", CourseCode: "BBA001", DurationYears: 0}},
		{"negative duration", &models.Course{CourseName: "BBA", CourseCode: "BBA001", DurationYears: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateCourse(context.Background(), tt.course)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateCourse() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestUpdateCourse_RequiresID(t *testing.T) {
	svc := NewCourseService(nil)

	course := &models.Course{CourseName: "BBA", CourseCode: "BBA001", DurationYears: 3}
	err := svc.UpdateCourse(context.Background(), course)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateCourse() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestGetCourseByID_InvalidID(t *testing.T) {
	svc := NewCourseService(nil)

	for _, id := range []int64{0, -1} {
		if _, err := svc.GetCourseByID(context.Background(), id); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("GetCourseByID(%d) error = %v, want %v", id, err, apperrors.ErrValidationFailed)
		}
	}
}

func TestDeleteCourse_InvalidID(t *testing.T) {
	svc := NewCourseService(nil)

	if err := svc.DeleteCourse(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("DeleteCourse(0) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestIsValidCourseCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"BBA001", true},
		{"DS001", true},
		{"MBA", true},
		{"001", true},
		{"bba001", false},
		{"BBA-001", false},
		{"BBA 001", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		if got := isValidCourseCode(tt.code); got != tt.want {
			t.Errorf("isValidCourseCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
