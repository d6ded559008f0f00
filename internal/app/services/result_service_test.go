package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/app/repositories"
	"github.com/skylink-edu/campus-linker/internal/pkg/apperrors"
)

func TestPublishResult_Validation(t *testing.T) {
	svc := NewResultService(nil, nil, nil, zerolog.Nop())

	badCGPA := 11.5
	tests := []struct {
		name string
		req  *dto.CreateResultRequest
	}{
		{"nil request", nil},
		{"unknown status", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: 60, TotalMarks: 100, ResultStatus: "Absent"}},
		{"lowercase status", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: 60, TotalMarks: 100, ResultStatus: "pass"}},
		{"marks above total", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: 110, TotalMarks: 100, ResultStatus: "Pass"}},
		{"negative marks", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: -5, TotalMarks: 100, ResultStatus: "Fail"}},
		{"zero total", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: 0, TotalMarks: 0, ResultStatus: "Pass"}},
		{"cgpa out of range", &dto.CreateResultRequest{StudentID: 1, ExamID: 1, ObtainMarks: 60, TotalMarks: 100, CGPA: &badCGPA, ResultStatus: "Pass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PublishResult(context.Background(), tt.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("PublishResult() error = %v, want %v", err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestGetResultByID_InvalidID(t *testing.T) {
	svc := NewResultService(nil, nil, nil, zerolog.Nop())

	if _, err := svc.GetResultByID(context.Background(), 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("GetResultByID(0) error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}

func TestGetAllResults_UnknownStatusFilter(t *testing.T) {
	svc := NewResultService(nil, nil, nil, zerolog.Nop())

	status := models.ResultStatus("Withheld")
	_, _, err := svc.GetAllResults(context.Background(), repositories.ResultFilter{Status: &status}, 1, 20)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("GetAllResults() error = %v, want %v", err, apperrors.ErrValidationFailed)
	}
}
