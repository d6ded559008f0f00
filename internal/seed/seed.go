// Package seed loads the illustrative starter data: the course catalog,
// a pair of demo accounts, published fee structures and a first exam
// per course. Apply issues plain INSERTs, so running it against a
// populated database fails on the account unique constraints; the
// bootstrap only calls it when the registration table is empty.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylink-edu/campus-linker/internal/pkg/auth"
	"github.com/skylink-edu/campus-linker/internal/pkg/logger"
)

// Account is a seeded login
type Account struct {
	Username string
	Password string // plain; hashed at apply time
	Email    string
	MobileNo string
	Role     string
}

// Course is a seeded catalog entry
type Course struct {
	Name          string
	Code          string
	DurationYears int
}

// CourseFee is a seeded fee category, keyed by course code
type CourseFee struct {
	CourseCode string
	Category   string
	Amount     float64
}

// Exam is a seeded exam, keyed by course code
type Exam struct {
	Name            string
	Subject         string
	Type            string
	CourseCode      string
	Date            string
	Time            string
	DurationMinutes int
	MaxMarks        int
	Fee             float64
}

// Accounts are the two demo logins
var Accounts = []Account{
	{Username: "admin", Password: "admin123", Email: "admin@skylink.edu", MobileNo: "9876543210", Role: "admin"},
	{Username: "student", Password: "student123", Email: "student@skylink.edu", MobileNo: "9876543211", Role: "student"},
}

// Courses is the starter catalog
var Courses = []Course{
	{Name: "BBA", Code: "BBA001", DurationYears: 3},
	{Name: "B.Com", Code: "BCOM001", DurationYears: 3},
	{Name: "B.Sc", Code: "BSC001", DurationYears: 3},
	{Name: "MBA", Code: "MBA001", DurationYears: 2},
	{Name: "M.Com", Code: "MCOM001", DurationYears: 2},
	{Name: "M.Sc", Code: "MSC001", DurationYears: 2},
	{Name: "Data Science", Code: "DS001", DurationYears: 3},
}

// CourseFees are the published fee structures
var CourseFees = []CourseFee{
	{CourseCode: "BBA001", Category: "Tuition Fee", Amount: 45000},
	{CourseCode: "BBA001", Category: "Admission Fee", Amount: 5000},
	{CourseCode: "BCOM001", Category: "Tuition Fee", Amount: 35000},
	{CourseCode: "BCOM001", Category: "Admission Fee", Amount: 5000},
	{CourseCode: "BSC001", Category: "Tuition Fee", Amount: 40000},
	{CourseCode: "BSC001", Category: "Admission Fee", Amount: 5000},
	{CourseCode: "MBA001", Category: "Tuition Fee", Amount: 80000},
	{CourseCode: "MBA001", Category: "Admission Fee", Amount: 10000},
	{CourseCode: "MCOM001", Category: "Tuition Fee", Amount: 50000},
	{CourseCode: "MCOM001", Category: "Admission Fee", Amount: 7500},
	{CourseCode: "MSC001", Category: "Tuition Fee", Amount: 55000},
	{CourseCode: "MSC001", Category: "Admission Fee", Amount: 7500},
	{CourseCode: "DS001", Category: "Tuition Fee", Amount: 90000},
	{CourseCode: "DS001", Category: "Admission Fee", Amount: 10000},
}

// Exams is one scheduled exam per course
var Exams = []Exam{
	{Name: "BBA Semester 1", Subject: "Principles of Management", Type: "Semester", CourseCode: "BBA001", Date: "2026-11-10", Time: "10:00 AM", DurationMinutes: 180, MaxMarks: 100, Fee: 500},
	{Name: "B.Com Semester 1", Subject: "Financial Accounting", Type: "Semester", CourseCode: "BCOM001", Date: "2026-11-11", Time: "10:00 AM", DurationMinutes: 180, MaxMarks: 100, Fee: 500},
	{Name: "B.Sc Semester 1", Subject: "Physics I", Type: "Semester", CourseCode: "BSC001", Date: "2026-11-12", Time: "10:00 AM", DurationMinutes: 180, MaxMarks: 100, Fee: 500},
	{Name: "MBA Trimester 1", Subject: "Managerial Economics", Type: "Trimester", CourseCode: "MBA001", Date: "2026-11-13", Time: "02:00 PM", DurationMinutes: 120, MaxMarks: 100, Fee: 800},
	{Name: "M.Com Semester 1", Subject: "Advanced Accounting", Type: "Semester", CourseCode: "MCOM001", Date: "2026-11-14", Time: "02:00 PM", DurationMinutes: 180, MaxMarks: 100, Fee: 600},
	{Name: "M.Sc Semester 1", Subject: "Mathematical Methods", Type: "Semester", CourseCode: "MSC001", Date: "2026-11-15", Time: "10:00 AM", DurationMinutes: 180, MaxMarks: 100, Fee: 600},
	{Name: "Data Science Semester 1", Subject: "Statistics for Data Science", Type: "Semester", CourseCode: "DS001", Date: "2026-11-16", Time: "10:00 AM", DurationMinutes: 180, MaxMarks: 100, Fee: 800},
}

// IsEmpty reports whether the registration table has no rows
func IsEmpty(ctx context.Context, db *pgxpool.Pool) (bool, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM registration`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check registration table: %w", err)
	}
	return count == 0, nil
}

// Apply inserts all fixtures in a single transaction
func Apply(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, account := range Accounts {
		hashed, err := auth.HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO registration (username, password, email, mobile_no, role) VALUES ($1, $2, $3, $4, $5)`,
			account.Username, hashed, account.Email, account.MobileNo, account.Role)
		if err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.Username, err)
		}
	}

	courseIDs := make(map[string]int64, len(Courses))
	for _, course := range Courses {
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO course (course_name, course_code, duration_years) VALUES ($1, $2, $3) RETURNING id`,
			course.Name, course.Code, course.DurationYears).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to seed course %s: %w", course.Code, err)
		}
		courseIDs[course.Code] = id
	}

	for _, fee := range CourseFees {
		if err := seedCourseFee(ctx, tx, courseIDs, fee); err != nil {
			return err
		}
	}

	for _, exam := range Exams {
		_, err := tx.Exec(ctx,
			`INSERT INTO exam (exam_name, subject, exam_type, course_id, exam_date, exam_time, duration_minutes, max_marks, exam_fee)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			exam.Name, exam.Subject, exam.Type, courseIDs[exam.CourseCode],
			exam.Date, exam.Time, exam.DurationMinutes, exam.MaxMarks, exam.Fee)
		if err != nil {
			return fmt.Errorf("failed to seed exam %s: %w", exam.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info().
		Int("accounts", len(Accounts)).
		Int("courses", len(Courses)).
		Int("exams", len(Exams)).
		Msg("Seed data applied")

	return nil
}

func seedCourseFee(ctx context.Context, tx pgx.Tx, courseIDs map[string]int64, fee CourseFee) error {
	courseID, ok := courseIDs[fee.CourseCode]
	if !ok {
		return fmt.Errorf("unknown course code in seed fee: %s", fee.CourseCode)
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO course_fee (course_id, fee_category, amount) VALUES ($1, $2, $3)`,
		courseID, fee.Category, fee.Amount)
	if err != nil {
		return fmt.Errorf("failed to seed course fee %s/%s: %w", fee.CourseCode, fee.Category, err)
	}

	return nil
}
