package seed

import "testing"

func TestAccountsFixture(t *testing.T) {
	if len(Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(Accounts))
	}

	var admin, student bool
	for _, account := range Accounts {
		switch account.Role {
		case "admin":
			admin = true
		case "student":
			student = true
		default:
			t.Errorf("account %s has unknown role %q", account.Username, account.Role)
		}

		if account.Username == "" || account.Password == "" {
			t.Errorf("account %+v is missing credentials", account)
		}
		if account.Email == "" || account.MobileNo == "" {
			t.Errorf("account %s is missing contact details", account.Username)
		}
	}

	if !admin {
		t.Error("no admin account in seed data")
	}
	if !student {
		t.Error("no student account in seed data")
	}
}

func TestCoursesFixture(t *testing.T) {
	if len(Courses) != 7 {
		t.Fatalf("len(Courses) = %d, want 7", len(Courses))
	}

	codes := make(map[string]bool)
	for _, course := range Courses {
		if course.Name == "" || course.Code == "" {
			t.Errorf("course %+v is incomplete", course)
		}
		if course.DurationYears <= 0 {
			t.Errorf("course %s has non-positive duration %d", course.Code, course.DurationYears)
		}
		if codes[course.Code] {
			t.Errorf("duplicate course code %q", course.Code)
		}
		codes[course.Code] = true
	}
}

func TestCourseFeesReferenceKnownCourses(t *testing.T) {
	codes := make(map[string]bool)
	for _, course := range Courses {
		codes[course.Code] = true
	}

	for _, fee := range CourseFees {
		if !codes[fee.CourseCode] {
			t.Errorf("course fee references unknown course code %q", fee.CourseCode)
		}
		if fee.Amount <= 0 {
			t.Errorf("course fee %s/%s has non-positive amount", fee.CourseCode, fee.Category)
		}
	}

	// Every course should have at least one published fee
	covered := make(map[string]bool)
	for _, fee := range CourseFees {
		covered[fee.CourseCode] = true
	}
	for code := range codes {
		if !covered[code] {
			t.Errorf("course %q has no seeded fee structure", code)
		}
	}
}

func TestExamsReferenceKnownCourses(t *testing.T) {
	if len(Exams) != 7 {
		t.Fatalf("len(Exams) = %d, want 7", len(Exams))
	}

	codes := make(map[string]bool)
	for _, course := range Courses {
		codes[course.Code] = true
	}

	for _, exam := range Exams {
		if !codes[exam.CourseCode] {
			t.Errorf("exam %s references unknown course code %q", exam.Name, exam.CourseCode)
		}
		if exam.MaxMarks <= 0 || exam.DurationMinutes <= 0 {
			t.Errorf("exam %s has invalid marks/duration", exam.Name)
		}
	}
}
