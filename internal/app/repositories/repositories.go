package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RegistrationRepository *RegistrationRepository
	TokenRepository        *TokenRepository
	CourseRepository       *CourseRepository
	AdmissionRepository    *AdmissionRepository
	StudentRepository      *StudentRepository
	ExamRepository         *ExamRepository
	ResultRepository       *ResultRepository
	FeeRepository          *FeeRepository
	ActivityRepository     *ActivityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RegistrationRepository: NewRegistrationRepository(db),
		TokenRepository:        NewTokenRepository(db),
		CourseRepository:       NewCourseRepository(db),
		AdmissionRepository:    NewAdmissionRepository(db),
		StudentRepository:      NewStudentRepository(db),
		ExamRepository:         NewExamRepository(db),
		ResultRepository:       NewResultRepository(db),
		FeeRepository:          NewFeeRepository(db),
		ActivityRepository:     NewActivityRepository(db),
	}
}
