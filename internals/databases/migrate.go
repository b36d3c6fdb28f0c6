package database

import (
	"log"

	assessmentModel "careermap_backend/internals/features/assessments/assessments/model"
	careerModel "careermap_backend/internals/features/assessments/careers/model"
	questionModel "careermap_backend/internals/features/assessments/questions/model"
	coreModel "careermap_backend/internals/features/core/model"
	courseModel "careermap_backend/internals/features/courses/model"
	jobModel "careermap_backend/internals/features/jobs/model"
	authModel "careermap_backend/internals/features/users/auth/model"
	userModel "careermap_backend/internals/features/users/user/model"
)

// Migrate creates or updates the schema. Opt-in via DB_AUTO_MIGRATE,
// production schemas are managed outside the app.
func Migrate() {
	err := DB.AutoMigrate(
		&coreModel.StateModel{},
		&coreModel.CityModel{},
		&coreModel.CityStateModel{},
		&coreModel.CollegeModel{},
		&coreModel.BranchModel{},
		&coreModel.DegreeModel{},
		&userModel.UserModel{},
		&authModel.OTPModel{},
		&authModel.RefreshTokenModel{},
		&questionModel.QuestionModel{},
		&careerModel.CareerPathModel{},
		&assessmentModel.AssessmentModel{},
		&assessmentModel.UserResponseModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseSkillModel{},
		&courseModel.EnrollmentModel{},
		&courseModel.CourseBundleModel{},
		&jobModel.JobModel{},
		&jobModel.ApplicationModel{},
	)
	if err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
	log.Println("auto migrate done")
}
