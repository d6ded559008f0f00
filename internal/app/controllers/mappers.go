package controllers

import (
	"time"

	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/pkg/helpers"
)

// Model-to-DTO mapping. Date-only columns go out as yyyy-mm-dd,
// timestamps as RFC 3339.

func toAdmissionResponse(admission *models.Admission) dto.AdmissionResponse {
	return dto.AdmissionResponse{
		ID:             admission.ID,
		RegistrationID: admission.RegistrationID,
		CourseID:       admission.CourseID,
		CourseName:     admission.CourseName,
		StudentName:    admission.StudentName,
		Email:          admission.Email,
		DateOfBirth:    admission.DateOfBirth.Format(helpers.DateOnly),
		FatherName:     admission.FatherName,
		MotherName:     admission.MotherName,
		MobileNo:       admission.MobileNo,
		AadharNo:       admission.AadharNo,
		Address:        admission.Address,
		State:          admission.State,
		District:       admission.District,
		Pincode:        admission.Pincode,
		Gender:         admission.Gender,
		PreviousCGPA:   admission.PreviousCGPA,
		ObtainMarks:    admission.ObtainMarks,
		TotalMarks:     admission.TotalMarks,
		Percentage:     admission.Percentage,
		PassingYear:    admission.PassingYear,
		PhotoPath:      admission.PhotoPath,
		IDProofPath:    admission.IDProofPath,
		SignPath:       admission.SignPath,
		MarklistPath:   admission.MarklistPath,
		Status:         string(admission.Status),
		CreatedAt:      admission.CreatedAt.Format(time.RFC3339),
	}
}

func toAdmissionResponses(admissions []*models.Admission) []dto.AdmissionResponse {
	responses := make([]dto.AdmissionResponse, 0, len(admissions))
	for _, admission := range admissions {
		responses = append(responses, toAdmissionResponse(admission))
	}
	return responses
}

func toStudentResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          student.ID,
		AdmissionID: student.AdmissionID,
		CourseID:    student.CourseID,
		CourseName:  student.CourseName,
		StudentName: student.StudentName,
		CreatedAt:   student.CreatedAt.Format(time.RFC3339),
	}
}

func toStudentResponses(students []*models.Student) []dto.StudentResponse {
	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, toStudentResponse(student))
	}
	return responses
}

func toExamResponse(exam *models.Exam) dto.ExamResponse {
	return dto.ExamResponse{
		ID:              exam.ID,
		ExamName:        exam.ExamName,
		Subject:         exam.Subject,
		ExamType:        exam.ExamType,
		CourseID:        exam.CourseID,
		CourseName:      exam.CourseName,
		ExamDate:        exam.ExamDate.Format(helpers.DateOnly),
		ExamTime:        exam.ExamTime,
		DurationMinutes: exam.DurationMinutes,
		MaxMarks:        exam.MaxMarks,
		ExamFee:         exam.ExamFee,
		Instructions:    exam.Instructions,
	}
}

func toExamResponses(exams []*models.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		responses = append(responses, toExamResponse(exam))
	}
	return responses
}

func toResultResponse(result *models.Result) dto.ResultResponse {
	return dto.ResultResponse{
		ID:           result.ID,
		StudentID:    result.StudentID,
		StudentName:  result.StudentName,
		ExamID:       result.ExamID,
		ExamName:     result.ExamName,
		Subject:      result.Subject,
		ObtainMarks:  result.ObtainMarks,
		TotalMarks:   result.TotalMarks,
		Grade:        result.Grade,
		CGPA:         result.CGPA,
		ResultStatus: string(result.ResultStatus),
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
	}
}

func toResultResponses(results []*models.Result) []dto.ResultResponse {
	responses := make([]dto.ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toResultResponse(result))
	}
	return responses
}

func toFeeResponse(fee *models.Fee) dto.FeeResponse {
	response := dto.FeeResponse{
		ID:            fee.ID,
		AdmissionID:   fee.AdmissionID,
		StudentName:   fee.StudentName,
		FeeCategory:   fee.FeeCategory,
		Amount:        fee.Amount,
		PaymentMethod: fee.PaymentMethod,
		PaymentStatus: string(fee.PaymentStatus),
		CreatedAt:     fee.CreatedAt.Format(time.RFC3339),
	}
	if fee.PaymentDate != nil {
		paymentDate := fee.PaymentDate.Format(time.RFC3339)
		response.PaymentDate = &paymentDate
	}
	return response
}

func toFeeResponses(fees []*models.Fee) []dto.FeeResponse {
	responses := make([]dto.FeeResponse, 0, len(fees))
	for _, fee := range fees {
		responses = append(responses, toFeeResponse(fee))
	}
	return responses
}

func toActivityResponse(activity *models.SocialActivity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:               activity.ID,
		StudentID:        activity.StudentID,
		StudentName:      activity.StudentName,
		ActivityCategory: activity.ActivityCategory,
		ActivityDate:     activity.ActivityDate.Format(helpers.DateOnly),
		Description:      activity.Description,
		CreatedAt:        activity.CreatedAt.Format(time.RFC3339),
	}
}

func toActivityResponses(activities []*models.SocialActivity) []dto.ActivityResponse {
	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, toActivityResponse(activity))
	}
	return responses
}

func toCourseResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:            course.ID,
		CourseName:    course.CourseName,
		CourseCode:    course.CourseCode,
		DurationYears: course.DurationYears,
	}
}

func toCourseResponses(courses []*models.Course) []dto.CourseResponse {
	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, toCourseResponse(course))
	}
	return responses
}

func toCourseFeeResponses(fees []*models.CourseFee) []dto.CourseFeeResponse {
	responses := make([]dto.CourseFeeResponse, 0, len(fees))
	for _, fee := range fees {
		responses = append(responses, dto.CourseFeeResponse{
			ID:          fee.ID,
			CourseID:    fee.CourseID,
			FeeCategory: fee.FeeCategory,
			Amount:      fee.Amount,
		})
	}
	return responses
}
