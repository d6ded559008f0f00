package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skylink-edu/campus-linker/internal/app/controllers"
	"github.com/skylink-edu/campus-linker/internal/app/models"
	"github.com/skylink-edu/campus-linker/internal/app/models/dto"
	"github.com/skylink-edu/campus-linker/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	admissionController *controllers.AdmissionController,
	studentController *controllers.StudentController,
	examController *controllers.ExamController,
	resultController *controllers.ResultController,
	feeController *controllers.FeeController,
	activityController *controllers.ActivityController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Public catalog routes ---
	// Courses and scheduled exams are browsable without an account so
	// that applicants can review the catalog before registering.
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/fees", courseController.GetCourseFees)
	}

	exams := v1.Group("/exams")
	{
		exams.GET("", examController.GetAllExams)
		exams.GET("/:id", examController.GetExamByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Course management (admin only)
		coursesAdminProtected := authenticated.Group("/courses")
		coursesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			coursesAdminProtected.POST("", courseController.CreateCourse)
			coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
			coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
		}

		// Admission routes - applicants file and track their own
		// applications; only admins review and decide them
		admissions := authenticated.Group("/admissions")
		{
			admissions.POST("", admissionController.CreateAdmission)
			admissions.GET("", admissionController.GetAdmissions)
			admissions.GET("/:id", admissionController.GetAdmissionByID)

			admissionsAdminProtected := admissions.Group("")
			admissionsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				admissionsAdminProtected.PUT("/:id/status", admissionController.UpdateAdmissionStatus)
			}
		}

		// Student routes - enrollment is an admin decision, the rest is
		// readable by any authenticated account
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			students.GET("/:id", studentController.GetStudentByID)
			students.GET("/:id/results", studentController.GetStudentResults)
			students.GET("/:id/activities", studentController.GetStudentActivities)

			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				studentsAdminProtected.POST("", studentController.EnrollStudent)
			}
		}

		// Exam management (admin only; listing is public above)
		examsAdminProtected := authenticated.Group("/exams")
		examsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			examsAdminProtected.POST("", examController.CreateExam)
			examsAdminProtected.PUT("/:id", examController.UpdateExam)
			examsAdminProtected.DELETE("/:id", examController.DeleteExam)
		}

		// Result routes - publishing is admin-only
		results := authenticated.Group("/results")
		{
			results.GET("", resultController.GetAllResults)
			results.GET("/:id", resultController.GetResultByID)

			resultsAdminProtected := results.Group("")
			resultsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				resultsAdminProtected.POST("", resultController.PublishResult)
			}
		}

		// Fee routes - admins raise fee records and register payments
		fees := authenticated.Group("/fees")
		{
			fees.GET("", feeController.GetFees)
			fees.GET("/:id", feeController.GetFeeByID)

			feesAdminProtected := fees.Group("")
			feesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				feesAdminProtected.POST("", feeController.CreateFee)
				feesAdminProtected.PUT("/:id/payment", feeController.RecordPayment)
			}
		}

		// Activity log routes
		activities := authenticated.Group("/activities")
		{
			activities.GET("", activityController.GetActivities)
			activities.GET("/:id", activityController.GetActivityByID)

			activitiesAdminProtected := activities.Group("")
			activitiesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				activitiesAdminProtected.POST("", activityController.LogActivity)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
