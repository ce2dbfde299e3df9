package research

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

func validDTO() *ResearchRequestDTO {
	return &ResearchRequestDTO{
		UserID:         "user-1",
		ProjectTitle:   "Retail analytics entry",
		IndustrySector: "Retail technology",
		TargetMarket:   "Independent retailers",
	}
}

// Three trends with distinct impact levels must fan out into three rows with
// the documented 80/60/40 scores, plus one competitor and one opportunity row.
func TestResearchFansOutAuxiliaryRows(t *testing.T) {
	db, mock := newMockDB(t)
	ai := &stubClient{reply: `{
		"market_overview": {"market_size_usd": 5000000000, "growth_rate_percentage": 12.5, "market_maturity": "Growth", "key_drivers": ["cloud adoption"]},
		"industry_trends": [
			{"trend_name": "AI forecasting", "impact_level": "High", "time_horizon": "Short-term", "description": "d1", "opportunities": []},
			{"trend_name": "Omnichannel", "impact_level": "Medium", "time_horizon": "Medium-term", "description": "d2", "opportunities": []},
			{"trend_name": "Loyalty apps", "impact_level": "Low", "time_horizon": "Long-term", "description": "d3", "opportunities": []}
		],
		"competitive_landscape": {
			"competition_intensity": "High",
			"key_players": [{"company_name": "ShelfWare", "market_share": 22, "strengths": [], "weaknesses": [], "threat_level": "High"}],
			"market_gaps": []
		},
		"customer_analysis": {"primary_segments": [], "buying_behavior": "", "decision_factors": []},
		"market_opportunities": [{"opportunity_title": "SMB tier", "description": "", "potential_size_usd": 0, "difficulty_level": "Low", "time_to_market": "3-6 months", "required_investment": "Low", "success_probability": 65}],
		"entry_barriers": [],
		"regulatory_environment": {"regulatory_complexity": "Low", "key_regulations": [], "compliance_requirements": [], "regulatory_trends": []},
		"technology_impact": {"disruption_level": "Medium", "emerging_technologies": [], "adoption_timeline": "", "impact_on_traditional_players": ""},
		"recommendations": [],
		"risk_assessment": {"overall_risk_level": "Medium", "key_risks": [], "mitigation_strategies": []}
	}`}
	svc := NewService(db, ai, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `market_research`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `market_research`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `market_trends`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `competitor_analysis`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `market_opportunities`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	record, err := svc.Research(context.Background(), validDTO())
	require.NoError(t, err)

	assert.Equal(t, "completed", record.Status)
	assert.Len(t, record.ResearchResult.IndustryTrends, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResearchSubstitutesFallbackOnProse(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewService(db, &stubClient{reply: "I could not complete the analysis."}, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `market_research`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `market_research`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Fallback carries one trend and one opportunity but no key players.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `market_trends`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `market_opportunities`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	record, err := svc.Research(context.Background(), validDTO())
	require.NoError(t, err)

	assert.Equal(t, "completed", record.Status)
	assert.Equal(t, "Growth", record.ResearchResult.MarketOverview.MarketMaturity)
	assert.NotEmpty(t, record.ResearchResult.IndustryTrends)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFallbackResultIsDeterministic(t *testing.T) {
	a := fallbackResult("P", "Retail", "SMBs")
	b := fallbackResult("P", "Retail", "SMBs")
	assert.Equal(t, a, b)
	assert.Contains(t, a.MarketOpportunities[0].OpportunityTitle, "P")
}

func TestImpactScore(t *testing.T) {
	assert.Equal(t, 80, impactScore("High"))
	assert.Equal(t, 60, impactScore("Medium"))
	assert.Equal(t, 40, impactScore("Low"))
	assert.Equal(t, 40, impactScore("unexpected"))
}

func TestPotentialScore(t *testing.T) {
	assert.Equal(t, 65, potentialScore(65))
	assert.Equal(t, 50, potentialScore(0))
	assert.Equal(t, 50, potentialScore(-3))
}

func TestRunResearchHandlerRejectsMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ai := &stubClient{}
	h := NewHandler(NewService(nil, ai, zap.NewNop()), zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))

	body := `{"user_id":"user-1","project_title":"P"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/market-research", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required fields", resp["error"])
	assert.Zero(t, ai.calls)
}

func TestBuildPromptAppliesDefaults(t *testing.T) {
	prompt := buildPrompt(validDTO())
	assert.Contains(t, prompt, "Geographic Focus: Global")
	assert.Contains(t, prompt, "Research Goals: Comprehensive market analysis")
	assert.Contains(t, prompt, "Project: Retail analytics entry")
}
