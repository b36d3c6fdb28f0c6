package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"careermap_backend/internals/features/assessments/questions/dto"
	qModel "careermap_backend/internals/features/assessments/questions/model"
	helper "careermap_backend/internals/helpers"
)

type QuestionAdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewQuestionAdminController(db *gorm.DB) *QuestionAdminController {
	return &QuestionAdminController{DB: db, Validate: validator.New()}
}

// GET /api/a/questions?category=&page=&per_page=
func (ctrl *QuestionAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&qModel.QuestionModel{})
	if cat := c.Query("category"); cat != "" {
		if !qModel.ValidCategory(cat) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown category")
		}
		q = q.Where("question_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var rows []qModel.QuestionModel
	if err := q.Order("question_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list questions")
	}

	return helper.JsonOK(c, "Questions found", fiber.Map{
		"questions":  rows,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// POST /api/a/questions
func (ctrl *QuestionAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.CorrectOption != "" {
		if _, ok := req.Options[req.CorrectOption]; !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "correct_option must be one of the option keys")
		}
	}

	question := req.ToModel()
	if err := ctrl.DB.Create(question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", question)
}

// DELETE /api/a/questions/:id
func (ctrl *QuestionAdminController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	res := ctrl.DB.Where("question_id = ?", id).Delete(&qModel.QuestionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "Question deleted", nil)
}
