package pitch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func expectPitchInsert(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `pitch_assistant`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
}

func TestGeneratePersistsParsedDeck(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: `{
		"executive_summary": {"pitch_theme": "t", "key_narrative": "n", "target_audience": "VCs", "presentation_duration": "10 minutes", "total_slides": 2},
		"slides": [
			{"slide_number": 1, "title": "Problem", "purpose": "p", "content_strategy": "c", "key_elements": [], "visual_recommendations": "", "talking_points": [], "duration_seconds": 60, "design_tips": ""},
			{"slide_number": 2, "title": "Solution", "purpose": "p", "content_strategy": "c", "key_elements": [], "visual_recommendations": "", "talking_points": [], "duration_seconds": 90, "design_tips": ""}
		],
		"storytelling_flow": {"hook": "h", "problem_narrative": "", "solution_reveal": "", "market_opportunity": "", "competitive_advantage": "", "traction_story": "", "financial_projection": "", "call_to_action": ""},
		"design_guidelines": {"color_scheme": "", "typography_recommendations": "", "visual_style": "Modern", "image_suggestions": [], "chart_types": [], "branding_tips": ""},
		"presenter_tips": {"opening_strategy": "", "body_language": "", "transition_techniques": [], "handling_questions": "", "closing_strategy": ""},
		"customization_suggestions": [],
		"success_metrics": {"pitch_effectiveness_score": 82, "investor_readiness": "Investment Ready", "strengths": [], "improvement_areas": []}
	}`}
	svc := NewService(db, ai, zap.NewNop())

	expectPitchInsert(mock)

	record, err := svc.Generate(context.Background(), &GeneratePitchDTO{
		UserID:    "user-1",
		IdeaTitle: "Inventory copilot",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.Len(t, record.PitchContent.Slides, 2)
	assert.Equal(t, 82, record.PitchContent.SuccessMetrics.PitchEffectivenessScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateSubstitutesFallbackDeck(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "completion error", err: context.DeadlineExceeded},
		{name: "prose reply", reply: "Here is a great pitch idea for you!"},
		{name: "missing slides key", reply: `{"executive_summary": {"pitch_theme": "t"}}`},
		{name: "empty slides array", reply: `{"executive_summary": {"pitch_theme": "t"}, "slides": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			svc := NewService(db, &stubClient{reply: tt.reply, err: tt.err}, zap.NewNop())

			expectPitchInsert(mock)

			record, err := svc.Generate(context.Background(), &GeneratePitchDTO{
				UserID:    "user-1",
				IdeaTitle: "Inventory copilot",
			})
			require.NoError(t, err)

			content := record.PitchContent
			assert.Equal(t, 70, content.SuccessMetrics.PitchEffectivenessScore)
			assert.Equal(t, "Getting Ready", content.SuccessMetrics.InvestorReadiness)
			require.Len(t, content.Slides, 2)
			assert.Equal(t, "Problem", content.Slides[0].Title)
			assert.Equal(t, "Solution", content.Slides[1].Title)
			assert.Contains(t, content.ExecutiveSummary.PitchTheme, "Inventory copilot")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFallbackPitchIsDeterministic(t *testing.T) {
	assert.Equal(t, fallbackPitch("X"), fallbackPitch("X"))
}

func TestGenerateSurfacesPersistenceFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, &stubClient{err: context.DeadlineExceeded}, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `pitch_assistant`").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Generate(context.Background(), &GeneratePitchDTO{UserID: "u", IdeaTitle: "X"})
	require.ErrorIs(t, err, errSavePitch)
}

func TestGeneratePitchHandlerRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ai := &stubClient{}
	h := NewHandler(NewService(nil, ai, zap.NewNop()), zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate-pitch", strings.NewReader(`{"user_id":"u"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Zero(t, ai.calls)
}

func TestBuildPromptDefaultsDescription(t *testing.T) {
	prompt := buildPrompt(&GeneratePitchDTO{IdeaTitle: "X"})
	assert.Contains(t, prompt, "No detailed description provided")
}
