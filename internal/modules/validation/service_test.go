package validation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/foundrbox/core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubClient struct {
	reply string
	err   error
	calls int
}

func (s *stubClient) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func validDTO() *ValidateIdeaDTO {
	return &ValidateIdeaDTO{
		UserID:          "user-1",
		IdeaTitle:       "Inventory copilot",
		IdeaDescription: "AI assistant that forecasts stock-outs for small retailers",
		TargetAudience:  "Independent retail shops",
	}
}

func TestValidatePersistsAndReturnsParsedResult(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: `{
		"overall_score": 72,
		"category_scores": {
			"problem_clarity": 80, "solution_fit": 75, "value_proposition": 70,
			"technical_feasibility": 68, "business_model": 66, "execution_readiness": 72
		},
		"strengths": ["clear problem"], "weaknesses": [], "opportunities": [],
		"risks": [], "recommendations": [], "next_steps": [],
		"validation_methods": [],
		"feasibility_assessment": {"technical_complexity":"Low","resource_intensity":"Medium","time_to_prototype":"1-2 months"},
		"improvement_suggestions": [], "success_likelihood": "High", "innovation_level": "Incremental"
	}`}
	svc := NewService(db, ai, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `idea_validations`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `idea_validations`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	record, err := svc.Validate(context.Background(), validDTO())
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, "completed", record.Status)
	assert.Equal(t, 72, record.OverallScore)
	assert.Equal(t, 72, record.ValidationResult.OverallScore)
	assert.Equal(t, 80, record.ValidationResult.CategoryScores.ProblemClarity)
	assert.Equal(t, "High", record.ValidationResult.SuccessLikelihood)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateSubstitutesFallbackOnUnusableOutput(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "prose without json", reply: "I cannot analyze this idea right now."},
		{name: "broken json", reply: `{"overall_score": 72,`},
		{name: "missing required key", reply: `{"overall_score": 72}`},
		{name: "completion error", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			svc := NewService(db, &stubClient{reply: tt.reply, err: tt.err}, zap.NewNop())

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO `idea_validations`").WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectCommit()
			mock.ExpectBegin()
			mock.ExpectExec("UPDATE `idea_validations`").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			record, err := svc.Validate(context.Background(), validDTO())
			require.NoError(t, err)

			assert.Equal(t, "completed", record.Status)
			assert.Equal(t, 70, record.OverallScore)
			assert.Equal(t, "Medium", record.ValidationResult.SuccessLikelihood)
			assert.NotEmpty(t, record.ValidationResult.Strengths)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestValidateSurfacesPersistenceFailure(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: "{}"}
	svc := NewService(db, ai, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `idea_validations`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Validate(context.Background(), validDTO())
	require.ErrorIs(t, err, errSaveIdea)
	assert.Zero(t, ai.calls, "completion must not run when the request row cannot be saved")
}

func TestFallbackResultIsDeterministic(t *testing.T) {
	a := fallbackResult("Inventory copilot", "Forecasts stock-outs")
	b := fallbackResult("Inventory copilot", "Forecasts stock-outs")
	assert.Equal(t, a, b)

	assert.Equal(t, 70, a.OverallScore)
	assert.Len(t, a.Strengths, 3)
	assert.Len(t, a.NextSteps, 3)
	assert.Equal(t, "Medium", a.FeasibilityAssessment.TechnicalComplexity)
	assert.Contains(t, a.Strengths[0], "Inventory copilot")
}

func TestSanitizeResultClampsAndCoerces(t *testing.T) {
	var r models.ValidationResult
	r.OverallScore = 140
	r.CategoryScores.ProblemClarity = -5
	r.SuccessLikelihood = "Sure thing"
	r.InnovationLevel = ""
	r.FeasibilityAssessment.TechnicalComplexity = "Extreme"
	r.Strengths = nil

	sanitizeResult(&r)

	assert.Equal(t, 100, r.OverallScore)
	assert.Equal(t, 0, r.CategoryScores.ProblemClarity)
	assert.Equal(t, "Medium", r.SuccessLikelihood)
	assert.Equal(t, "Significant", r.InnovationLevel)
	assert.Equal(t, "Medium", r.FeasibilityAssessment.TechnicalComplexity)
	assert.NotNil(t, r.Strengths)
}

func TestBuildPromptDefaultsBlankFields(t *testing.T) {
	prompt := buildPrompt(&ValidateIdeaDTO{
		IdeaTitle:       "Inventory copilot",
		IdeaDescription: "Forecasts stock-outs",
		BusinessModel:   "  ",
	})

	assert.Contains(t, prompt, "Title: Inventory copilot")
	assert.Contains(t, prompt, "Business Model: Not specified")
	assert.Contains(t, prompt, "Target Audience: Not specified")
	assert.NotContains(t, prompt, "Description: Not specified")
}

func TestValidateIdeaHandlerRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ai := &stubClient{}
	h := NewHandler(NewService(nil, ai, zap.NewNop()), zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	body := `{"user_id":"user-1","idea_description":"no title supplied"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate-idea", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Zero(t, ai.calls)
}
