package growth

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
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubClient) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	s.calls++
	s.lastPrompt = userPrompt
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

func messageColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "role", "content"})
}

func expectInsert(mock sqlmock.Sqlmock, table string) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `" + table + "`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
}

// First turn on a fresh thread: the conversation is created, both messages
// land, and message_count is exactly 2.
func TestChatFirstTurnCountsTwoMessages(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: "Welcome! Happy to help you grow."}
	svc := NewService(db, ai, zap.NewNop())

	expectInsert(mock, "growth_conversations")
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT .* FROM `growth_messages`").WillReturnRows(messageColumns())
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `growth_conversations`").
		WithArgs(sqlmock.AnyArg(), int64(2), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reply, err := svc.Chat(context.Background(), &ChatDTO{
		UserID:  "user-1",
		Message: "How do I find my first customers?",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, ai.calls)
	assert.NotEmpty(t, reply.ConversationID)
	assert.Equal(t, "Welcome! Happy to help you grow.", reply.Response)
	assert.Empty(t, reply.Insights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatContinuesExistingThreadWithHistory(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: "Great follow-up."}
	svc := NewService(db, ai, zap.NewNop())

	expectInsert(mock, "growth_messages")
	rows := messageColumns().
		AddRow("m2", "conv-1", "user-1", "assistant", "Start with referrals.").
		AddRow("m1", "conv-1", "user-1", "user", "How do I grow?")
	mock.ExpectQuery("SELECT .* FROM `growth_messages`").WillReturnRows(rows)
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `growth_conversations`").
		WithArgs(sqlmock.AnyArg(), int64(4), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reply, err := svc.Chat(context.Background(), &ChatDTO{
		UserID:         "user-1",
		ConversationID: "conv-1",
		Message:        "What about paid channels?",
	})
	require.NoError(t, err)

	assert.Equal(t, "conv-1", reply.ConversationID)
	assert.Contains(t, ai.lastPrompt, "Founder: How do I grow?")
	assert.Contains(t, ai.lastPrompt, "Alex: Start with referrals.")
	assert.True(t, strings.HasSuffix(ai.lastPrompt, "Alex: "))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A completion failure must not surface: the apology reply is persisted and
// returned like any other assistant message.
func TestChatSubstitutesApologyOnCompletionFailure(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, &stubClient{err: context.DeadlineExceeded}, zap.NewNop())

	expectInsert(mock, "growth_conversations")
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT .* FROM `growth_messages`").WillReturnRows(messageColumns())
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `growth_conversations`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reply, err := svc.Chat(context.Background(), &ChatDTO{UserID: "user-1", Message: "Help"})
	require.NoError(t, err)

	assert.Equal(t, apologyReply, reply.Response)
	assert.Empty(t, reply.Insights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatPersistsMatchedInsights(t *testing.T) {
	db, mock := newMockDB(t)
	reply := "Here's a strategy: track your KPI dashboard weekly and try this growth hack."
	svc := NewService(db, &stubClient{reply: reply}, zap.NewNop())

	expectInsert(mock, "growth_conversations")
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT .* FROM `growth_messages`").WillReturnRows(messageColumns())
	expectInsert(mock, "growth_messages")
	mock.ExpectQuery("SELECT count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `growth_conversations`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	for i := 0; i < 3; i++ {
		expectInsert(mock, "growth_insights")
	}

	out, err := svc.Chat(context.Background(), &ChatDTO{UserID: "user-1", Message: "How do I grow?"})
	require.NoError(t, err)

	require.Len(t, out.Insights, 3)
	assert.Equal(t, "strategy", out.Insights[0].Type)
	assert.Equal(t, "high", out.Insights[0].Priority)
	assert.Equal(t, "tactic", out.Insights[1].Type)
	assert.Equal(t, "medium", out.Insights[1].Priority)
	assert.Equal(t, "metric", out.Insights[2].Type)
	assert.Equal(t, "low", out.Insights[2].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExtractInsights(t *testing.T) {
	t.Run("no keywords yields no insights", func(t *testing.T) {
		assert.Empty(t, extractInsights("Hello! Tell me more about your startup."))
	})

	t.Run("each family fires at most once", func(t *testing.T) {
		insights := extractInsights("A strategy and a framework and a method.")
		require.Len(t, insights, 1)
		assert.Equal(t, "strategy", insights[0].Type)
	})

	t.Run("long replies are excerpted", func(t *testing.T) {
		long := "strategy " + strings.Repeat("x", 300)
		insights := extractInsights(long)
		require.Len(t, insights, 1)
		assert.Len(t, []rune(insights[0].Content), insightExcerptLen+3)
		assert.True(t, strings.HasSuffix(insights[0].Content, "..."))
	})
}

func TestBuildPromptTranscript(t *testing.T) {
	history := []models.GrowthMessageModel{
		{Role: "user", Content: "How do I grow?"},
		{Role: "assistant", Content: "Start with referrals."},
	}
	prompt := buildPrompt(history, "What about SEO?")

	assert.True(t, strings.HasPrefix(prompt, "Previous conversation:\n"))
	assert.Contains(t, prompt, "Founder: How do I grow?")
	assert.Contains(t, prompt, "Alex: Start with referrals.")
	assert.Contains(t, prompt, "Founder: What about SEO?")
	assert.True(t, strings.HasSuffix(prompt, "Alex: "))
}

func TestRenderHTML(t *testing.T) {
	html := renderHTML("Here is **bold** advice")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestChatHandlerRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ai := &stubClient{}
	h := NewHandler(NewService(nil, ai, zap.NewNop()), zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/growth-chat", strings.NewReader(`{"user_id":"u"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Zero(t, ai.calls)
}
