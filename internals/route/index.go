package routes

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"careermap_backend/internals/configs"
	adminRoute "careermap_backend/internals/features/admin/route"
	assessmentRoute "careermap_backend/internals/features/assessments/assessments/route"
	careerRoute "careermap_backend/internals/features/assessments/careers/route"
	questionRoute "careermap_backend/internals/features/assessments/questions/route"
	coreRoute "careermap_backend/internals/features/core/route"
	courseRoute "careermap_backend/internals/features/courses/route"
	courseService "careermap_backend/internals/features/courses/service"
	jobRoute "careermap_backend/internals/features/jobs/route"
	authRoute "careermap_backend/internals/features/users/auth/route"
	userRoute "careermap_backend/internals/features/users/user/route"
	authMiddleware "careermap_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	useMidtransProd := false
	if v := configs.GetEnv("MIDTRANS_USE_PROD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useMidtransProd = b
		}
	}
	courseService.InitMidtrans(configs.MidtransServerKey, useMidtransProd)

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting public routes...")
	authRoute.AuthRoutes(app, db)
	coreRoute.CoreRoutes(app, db)
	courseRoute.CoursePublicRoutes(app, db)
	jobRoute.JobPublicRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Mounting user routes...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	userRoute.UserRoutes(private, db)
	assessmentRoute.AssessmentUserRoutes(private, db)
	courseRoute.CourseUserRoutes(private, db)
	jobRoute.JobUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Mounting admin routes...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireAdmin(),
	)

	questionRoute.QuestionAdminRoutes(admin, db)
	careerRoute.CareerAdminRoutes(admin, db)
	adminRoute.AdminStatsRoutes(admin, db)
}
