package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careermap_backend/internals/features/assessments/assessments/dto"
	aModel "careermap_backend/internals/features/assessments/assessments/model"
	"careermap_backend/internals/features/assessments/assessments/service"
	careerModel "careermap_backend/internals/features/assessments/careers/model"
	qModel "careermap_backend/internals/features/assessments/questions/model"
	coreModel "careermap_backend/internals/features/core/model"
	userModel "careermap_backend/internals/features/users/user/model"
	helper "careermap_backend/internals/helpers"
)

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate

	// seed for the question selector; swap in tests for determinism
	SelectorSeed func() int64
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{
		DB:           db,
		Validate:     validator.New(),
		SelectorSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// POST /api/u/assessments
// Starts a new attempt. Prior completed attempts are removed (retake rule);
// a still-pending attempt is resumed instead of duplicated.
func (ctrl *AssessmentController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var pending aModel.AssessmentModel
	err = ctrl.DB.
		Where("assessment_user_id = ? AND assessment_status = ?", userID, aModel.StatusPending).
		First(&pending).Error
	if err == nil {
		return helper.JsonOK(c, "Pending assessment resumed", pending)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check pending assessment")
	}

	techTrack, err := ctrl.userIsTechTrack(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	var bank []qModel.QuestionModel
	if err := ctrl.DB.
		Select("question_id", "question_category").
		Find(&bank).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question bank")
	}

	selector := service.NewSelector(ctrl.SelectorSeed())
	order := selector.Draw(bank, techTrack)

	assessment := aModel.AssessmentModel{
		AssessmentUserID:        userID,
		AssessmentQuestionOrder: order,
		AssessmentStatus:        aModel.StatusPending,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// retake: drop earlier completed attempts and their answers
		var oldIDs []uuid.UUID
		if err := tx.Model(&aModel.AssessmentModel{}).
			Where("assessment_user_id = ? AND assessment_status = ?", userID, aModel.StatusCompleted).
			Pluck("assessment_id", &oldIDs).Error; err != nil {
			return err
		}
		if len(oldIDs) > 0 {
			if err := tx.Where("user_response_assessment_id IN ?", oldIDs).
				Delete(&aModel.UserResponseModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("assessment_id IN ?", oldIDs).
				Delete(&aModel.AssessmentModel{}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&assessment).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start assessment")
	}

	return helper.JsonCreated(c, "Assessment started", assessment)
}

// GET /api/u/assessments/:id
// The attempt plus its questions in the stored order.
func (ctrl *AssessmentController) Detail(c *fiber.Ctx) error {
	assessment, err := ctrl.ownedAssessment(c)
	if err != nil {
		return err
	}

	questions, err := ctrl.questionsInOrder(assessment.AssessmentQuestionOrder)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	public := make([]dto.QuestionPublic, 0, len(questions))
	for _, q := range questions {
		public = append(public, dto.ToQuestionPublic(q))
	}

	return helper.JsonOK(c, "Assessment found", fiber.Map{
		"assessment": assessment,
		"questions":  public,
	})
}

// POST /api/u/assessments/:id/answers
// Upserts one answer. Questions outside the fixed order are rejected.
func (ctrl *AssessmentController) Answer(c *fiber.Ctx) error {
	assessment, err := ctrl.ownedAssessment(c)
	if err != nil {
		return err
	}
	if assessment.Completed() {
		return helper.JsonError(c, fiber.StatusConflict, "Assessment already completed")
	}

	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if !assessment.HasQuestion(req.QuestionID) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Question is not part of this assessment")
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	response := aModel.UserResponseModel{
		UserResponseAssessmentID:   assessment.AssessmentID,
		UserResponseQuestionID:     questionID,
		UserResponseSelectedOption: req.SelectedOption,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_response_assessment_id"},
			{Name: "user_response_question_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"user_response_selected_option", "user_response_updated_at"}),
	}).Create(&response).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save answer")
	}

	return helper.JsonOK(c, "Answer saved", response)
}

// POST /api/u/assessments/:id/submit
// Scores the attempt once. Submitting a completed assessment returns the
// stored result unchanged.
func (ctrl *AssessmentController) Submit(c *fiber.Ctx) error {
	assessment, err := ctrl.ownedAssessment(c)
	if err != nil {
		return err
	}
	if assessment.Completed() {
		return helper.JsonOK(c, "Assessment already completed", fiber.Map{
			"assessment_id": assessment.AssessmentID,
			"score":         assessment.AssessmentScore,
			"result_data":   assessment.AssessmentResult,
		})
	}

	var responses []aModel.UserResponseModel
	if err := ctrl.DB.
		Where("user_response_assessment_id = ?", assessment.AssessmentID).
		Find(&responses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load answers")
	}

	questions, err := ctrl.questionsInOrder(assessment.AssessmentQuestionOrder)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	result := service.Score(questions, responses)

	var paths []careerModel.CareerPathModel
	if err := ctrl.DB.Order("career_path_min_score ASC").Find(&paths).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load career paths")
	}

	if career := service.MatchCareer(paths, result.Score); career != nil {
		result.Career = &service.CareerMatch{
			CareerID:    career.CareerPathCareerID,
			Title:       career.CareerPathTitle,
			Description: career.CareerPathDescription,
			MinScore:    career.CareerPathMinScore,
		}
		result.SkillGaps = service.SkillGaps(career.CareerPathRequiredSkills, result.SkillAccuracy)
	} else {
		result.SkillGaps = []string{}
	}

	courses, err := service.RecommendCourses(ctrl.DB, result.SkillGaps)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course recommendations")
	}
	result.RecommendedCourses = courses

	payload, err := json.Marshal(result)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode result")
	}

	if err := ctrl.DB.Model(&aModel.AssessmentModel{}).
		Where("assessment_id = ?", assessment.AssessmentID).
		Updates(map[string]interface{}{
			"assessment_status": aModel.StatusCompleted,
			"assessment_score":  result.Score,
			"assessment_result": payload,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save result")
	}

	return helper.JsonOK(c, "Assessment completed", fiber.Map{
		"assessment_id": assessment.AssessmentID,
		"score":         result.Score,
		"result_data":   result,
	})
}

// GET /api/u/assessments/:id/result
func (ctrl *AssessmentController) Result(c *fiber.Ctx) error {
	assessment, err := ctrl.ownedAssessment(c)
	if err != nil {
		return err
	}
	if !assessment.Completed() {
		return helper.JsonError(c, fiber.StatusNotFound, "Assessment has no result yet")
	}

	return helper.JsonOK(c, "Result found", fiber.Map{
		"assessment_id": assessment.AssessmentID,
		"score":         assessment.AssessmentScore,
		"date_taken":    assessment.AssessmentDateTaken,
		"result_data":   assessment.AssessmentResult,
	})
}

/* ===============================
   internals
=================================*/

// ownedAssessment resolves :id for the authenticated caller. Errors come
// back as fiber errors so callers can return them directly; the returned
// assessment is non-nil exactly when the error is nil.
func (ctrl *AssessmentController) ownedAssessment(c *fiber.Ctx) (*aModel.AssessmentModel, error) {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid assessment id")
	}

	var assessment aModel.AssessmentModel
	if err := ctrl.DB.
		Where("assessment_id = ? AND assessment_user_id = ?", id, userID).
		First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Assessment not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load assessment")
	}
	return &assessment, nil
}

// questionsInOrder loads questions by id and returns them in the fixed
// attempt order, skipping ids that no longer resolve.
func (ctrl *AssessmentController) questionsInOrder(order []string) ([]qModel.QuestionModel, error) {
	if len(order) == 0 {
		return []qModel.QuestionModel{}, nil
	}

	var rows []qModel.QuestionModel
	if err := ctrl.DB.Where("question_id IN ?", order).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]qModel.QuestionModel, len(rows))
	for _, q := range rows {
		byID[q.QuestionID.String()] = q
	}

	out := make([]qModel.QuestionModel, 0, len(order))
	for _, id := range order {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (ctrl *AssessmentController) userIsTechTrack(userID uuid.UUID) (bool, error) {
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return false, err
	}
	if user.DegreeID == nil {
		return false, nil
	}
	var degree coreModel.DegreeModel
	if err := ctrl.DB.First(&degree, "id = ?", *user.DegreeID).Error; err != nil {
		return false, nil
	}
	return degree.IsTech, nil
}
