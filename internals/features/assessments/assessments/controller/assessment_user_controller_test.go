package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	aModel "careermap_backend/internals/features/assessments/assessments/model"
	careerModel "careermap_backend/internals/features/assessments/careers/model"
	qModel "careermap_backend/internals/features/assessments/questions/model"
)

// openAttemptDB creates the attempt tables by hand; the postgres defaults in
// the model tags do not exist on sqlite, so ids are set explicitly in tests.
func openAttemptDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE assessments (
			assessment_id TEXT PRIMARY KEY,
			assessment_user_id TEXT NOT NULL,
			assessment_question_order TEXT,
			assessment_status TEXT NOT NULL DEFAULT 'pending',
			assessment_score INTEGER NOT NULL DEFAULT 0,
			assessment_result TEXT,
			assessment_date_taken DATETIME
		)`,
		`CREATE TABLE user_responses (
			user_response_id TEXT,
			user_response_assessment_id TEXT NOT NULL,
			user_response_question_id TEXT NOT NULL,
			user_response_selected_option TEXT NOT NULL,
			user_response_created_at DATETIME,
			user_response_updated_at DATETIME,
			UNIQUE (user_response_assessment_id, user_response_question_id)
		)`,
		`CREATE TABLE questions (
			question_id TEXT PRIMARY KEY,
			question_text TEXT,
			question_options TEXT,
			question_correct_option TEXT,
			question_category TEXT,
			question_skill_tag TEXT,
			question_difficulty TEXT,
			question_trait_map TEXT,
			question_created_at DATETIME
		)`,
		`CREATE TABLE career_paths (
			career_path_id TEXT PRIMARY KEY,
			career_path_career_id TEXT,
			career_path_title TEXT,
			career_path_description TEXT,
			career_path_min_score INTEGER,
			career_path_required_skills TEXT,
			career_path_created_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

// newAttemptApp mounts the attempt routes behind a stand-in for the auth
// middleware. An empty userID simulates an unauthenticated request.
func newAttemptApp(db *gorm.DB, userID string) *fiber.App {
	ctrl := NewAssessmentController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	})
	app.Post("/assessments", ctrl.Start)
	app.Get("/assessments/:id", ctrl.Detail)
	app.Post("/assessments/:id/answers", ctrl.Answer)
	app.Post("/assessments/:id/submit", ctrl.Submit)
	app.Get("/assessments/:id/result", ctrl.Result)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, string) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func seedQuestion(t *testing.T, db *gorm.DB, category, correct, skill string) qModel.QuestionModel {
	t.Helper()
	q := qModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionText:          "pick one",
		QuestionOptions:       map[string]string{"A": "first", "B": "second"},
		QuestionCorrectOption: correct,
		QuestionCategory:      category,
		QuestionSkillTag:      skill,
		QuestionDifficulty:    qModel.DifficultyMedium,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func seedAttempt(t *testing.T, db *gorm.DB, userID uuid.UUID, order []string, status string) aModel.AssessmentModel {
	t.Helper()
	a := aModel.AssessmentModel{
		AssessmentID:            uuid.New(),
		AssessmentUserID:        userID,
		AssessmentQuestionOrder: order,
		AssessmentStatus:        status,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func TestAttemptLookupRejectsBadRequests(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	other := uuid.New()
	attempt := seedAttempt(t, db, other, []string{}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())

	status, _ := doJSON(t, app, "GET", "/assessments/not-a-uuid", nil)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/assessments/"+uuid.NewString(), nil)
	require.Equal(t, fiber.StatusNotFound, status)

	// owned by someone else, indistinguishable from missing
	status, _ = doJSON(t, app, "GET", "/assessments/"+attempt.AssessmentID.String(), nil)
	require.Equal(t, fiber.StatusNotFound, status)

	anon := newAttemptApp(db, "")
	status, _ = doJSON(t, anon, "GET", "/assessments/"+attempt.AssessmentID.String(), nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestDetailHidesAnswerKey(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	q := seedQuestion(t, db, qModel.CategoryTechnical, "A", "python")
	attempt := seedAttempt(t, db, owner, []string{q.QuestionID.String()}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())
	status, body := doJSON(t, app, "GET", "/assessments/"+attempt.AssessmentID.String(), nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, q.QuestionID.String())
	require.NotContains(t, body, "question_correct_option")
}

func TestAnswerRejectsQuestionOutsideOrder(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	inOrder := seedQuestion(t, db, qModel.CategoryTechnical, "A", "python")
	stray := seedQuestion(t, db, qModel.CategoryTechnical, "B", "sql")
	attempt := seedAttempt(t, db, owner, []string{inOrder.QuestionID.String()}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())
	path := "/assessments/" + attempt.AssessmentID.String() + "/answers"

	status, body := doJSON(t, app, "POST", path, fiber.Map{
		"question_id":     stray.QuestionID.String(),
		"selected_option": "B",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body, "not part of this assessment")

	var count int64
	require.NoError(t, db.Model(&aModel.UserResponseModel{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAnswerOverwritesPreviousChoice(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	q := seedQuestion(t, db, qModel.CategoryTechnical, "A", "python")
	attempt := seedAttempt(t, db, owner, []string{q.QuestionID.String()}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())
	path := "/assessments/" + attempt.AssessmentID.String() + "/answers"

	for _, option := range []string{"A", "B"} {
		status, _ := doJSON(t, app, "POST", path, fiber.Map{
			"question_id":     q.QuestionID.String(),
			"selected_option": option,
		})
		require.Equal(t, fiber.StatusOK, status)
	}

	var rows []aModel.UserResponseModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "B", rows[0].UserResponseSelectedOption)
}

func TestSubmitScoresOnce(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	q := seedQuestion(t, db, qModel.CategoryTechnical, "A", "python")
	require.NoError(t, db.Create(&careerModel.CareerPathModel{
		CareerPathID:             uuid.New(),
		CareerPathCareerID:       "software-developer",
		CareerPathTitle:          "Software Developer",
		CareerPathMinScore:       50,
		CareerPathRequiredSkills: pq.StringArray{"python"},
	}).Error)
	attempt := seedAttempt(t, db, owner, []string{q.QuestionID.String()}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())
	base := "/assessments/" + attempt.AssessmentID.String()

	status, _ := doJSON(t, app, "POST", base+"/answers", fiber.Map{
		"question_id":     q.QuestionID.String(),
		"selected_option": "A",
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, app, "POST", base+"/submit", nil)
	require.Equal(t, fiber.StatusOK, status)

	var first struct {
		Data struct {
			Score int `json:"score"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	require.Equal(t, 100, first.Data.Score)

	var stored aModel.AssessmentModel
	require.NoError(t, db.First(&stored, "assessment_id = ?", attempt.AssessmentID).Error)
	require.Equal(t, aModel.StatusCompleted, stored.AssessmentStatus)
	require.Equal(t, 100, stored.AssessmentScore)
	require.NotEmpty(t, stored.AssessmentResult)

	// flip the answer to what would now score 70; resubmitting must not recompute
	require.NoError(t, db.Model(&aModel.UserResponseModel{}).
		Where("user_response_assessment_id = ?", attempt.AssessmentID).
		Update("user_response_selected_option", "B").Error)

	status, body = doJSON(t, app, "POST", base+"/submit", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "already completed")

	var second struct {
		Data struct {
			Score int `json:"score"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	require.Equal(t, 100, second.Data.Score)

	require.NoError(t, db.First(&stored, "assessment_id = ?", attempt.AssessmentID).Error)
	require.Equal(t, 100, stored.AssessmentScore)

	// answering after completion is a conflict
	status, _ = doJSON(t, app, "POST", base+"/answers", fiber.Map{
		"question_id":     q.QuestionID.String(),
		"selected_option": "A",
	})
	require.Equal(t, fiber.StatusConflict, status)
}

func TestResultUnavailableWhilePending(t *testing.T) {
	db := openAttemptDB(t)
	owner := uuid.New()
	attempt := seedAttempt(t, db, owner, []string{}, aModel.StatusPending)

	app := newAttemptApp(db, owner.String())
	status, _ := doJSON(t, app, "GET", "/assessments/"+attempt.AssessmentID.String()+"/result", nil)
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestStartSurfacesPendingLookupFailure(t *testing.T) {
	// no tables at all, so the pending-attempt lookup fails with a real
	// database error rather than a not-found
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := newAttemptApp(db, uuid.NewString())
	status, body := doJSON(t, app, "POST", "/assessments", nil)
	require.Equal(t, fiber.StatusInternalServerError, status)
	require.True(t, strings.Contains(body, "pending"))
}
