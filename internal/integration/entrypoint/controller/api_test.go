package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-copilot/backend/config"
	"github.com/finance-copilot/backend/internal/infra/dependency"
	"github.com/finance-copilot/backend/internal/integration/adapters"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/dto"
	"github.com/finance-copilot/backend/internal/integration/persistence/model"
)

// newTestAPI wires the full application against an in-memory database and
// Redis, with the text-generation provider left unconfigured.
func newTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.AccountModel{},
		&model.GoalModel{},
		&model.BudgetModel{},
		&model.ChallengeModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	adviceService, err := adapters.NewGeminiService(context.Background(), "", "")
	if err != nil {
		t.Fatalf("failed to create advice service: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Gemini: config.GeminiConfig{RequestTimeout: time.Second},
	}

	injector := dependency.NewInjector(cfg, gormDB, redisClient, adviceService)
	return injector.Router.Setup("test"), gormDB
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func getDashboard(t *testing.T, engine *gin.Engine) dto.DashboardResponse {
	t.Helper()
	recorder := doRequest(t, engine, http.MethodGet, "/dashboard", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 from /dashboard, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp dto.DashboardResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode dashboard response: %v", err)
	}
	return resp
}

func TestAPIHealth(t *testing.T) {
	engine, _ := newTestAPI(t)

	recorder := doRequest(t, engine, http.MethodGet, "/health", "")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" || resp["database"] != "connected" {
		t.Errorf("unexpected health payload: %v", resp)
	}
	if resp["ledger"] != "connected" {
		t.Errorf("expected a connected ledger, got %q", resp["ledger"])
	}
	if resp["advice"] != "fallback" {
		t.Errorf("expected fallback advice state without an API key, got %q", resp["advice"])
	}
}

func TestAPIDashboardProvisioning(t *testing.T) {
	engine, db := newTestAPI(t)

	first := getDashboard(t, engine)

	if first.ID != "demo-user" {
		t.Errorf("expected the demo user, got %q", first.ID)
	}
	if first.Profile == nil || first.Profile.MonthlyIncome != 5200 {
		t.Errorf("expected seeded profile with income 5200, got %+v", first.Profile)
	}
	if len(first.Accounts) != 3 || len(first.Goals) != 2 || len(first.Budgets) != 6 ||
		len(first.Challenges) != 2 || len(first.Expenses) != 5 {
		t.Errorf("unexpected seeded record counts: accounts=%d goals=%d budgets=%d challenges=%d expenses=%d",
			len(first.Accounts), len(first.Goals), len(first.Budgets), len(first.Challenges), len(first.Expenses))
	}
	if first.Summary.TotalBalance != 30000 {
		t.Errorf("expected total balance 30000, got %v", first.Summary.TotalBalance)
	}
	if first.Summary.TotalPoints != 1250 {
		t.Errorf("expected starting tally 1250, got %d", first.Summary.TotalPoints)
	}
	if first.Summary.PrimaryGoal == nil || first.Summary.PrimaryGoal.Title != "Emergency Fund" {
		t.Errorf("expected Emergency Fund as primary goal, got %+v", first.Summary.PrimaryGoal)
	}
	if first.Summary.InvestmentAccount == nil || first.Summary.InvestmentAccount.Type != "investment" {
		t.Errorf("expected an investment account in the summary, got %+v", first.Summary.InvestmentAccount)
	}

	// A second read must not seed anything again.
	second := getDashboard(t, engine)
	if len(second.Accounts) != 3 || len(second.Expenses) != 5 {
		t.Errorf("expected unchanged record counts on the second read, got accounts=%d expenses=%d",
			len(second.Accounts), len(second.Expenses))
	}
	var users int64
	if err := db.Model(&model.UserModel{}).Count(&users).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	if users != 1 {
		t.Errorf("expected exactly one user row, got %d", users)
	}
}

func TestAPIDashboardStoreFailure(t *testing.T) {
	engine, db := newTestAPI(t)
	getDashboard(t, engine)

	// Sever the store connection so the next snapshot read fails outright.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("failed to close sql.DB: %v", err)
	}

	recorder := doRequest(t, engine, http.MethodGet, "/dashboard", "")
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", recorder.Code)
	}
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "Failed to fetch dashboard data" {
		t.Errorf("unexpected error message %q", errResp.Error)
	}
	if errResp.Code != "DSH-020001" {
		t.Errorf("expected the snapshot failure code, got %q", errResp.Code)
	}
}

func TestAPIChallengeCompletion(t *testing.T) {
	engine, _ := newTestAPI(t)
	snapshot := getDashboard(t, engine)
	challengeID := snapshot.Challenges[0].ID

	recorder := doRequest(t, engine, http.MethodPut, "/challenges", `{"challengeId": "`+challengeID+`"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp dto.CompleteChallengeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode completion response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Challenge.Status != "Completed" {
		t.Errorf("expected Completed status, got %q", resp.Challenge.Status)
	}
	if resp.Challenge.CurrentDays != 0 {
		t.Errorf("expected day counter reset, got %d", resp.Challenge.CurrentDays)
	}
	if resp.TotalPoints != 1350 {
		t.Errorf("expected total 1350 after the flat award, got %d", resp.TotalPoints)
	}

	// The completed challenge drops out of the live view.
	after := getDashboard(t, engine)
	if len(after.Challenges) != 1 {
		t.Fatalf("expected 1 active challenge after completion, got %d", len(after.Challenges))
	}
	if after.Challenges[0].ID == challengeID {
		t.Error("expected the completed challenge to be excluded from the dashboard")
	}
	if after.Summary.TotalPoints != 1350 {
		t.Errorf("expected dashboard tally 1350, got %d", after.Summary.TotalPoints)
	}

	// Completing again is a no-op without a second award.
	recorder = doRequest(t, engine, http.MethodPut, "/challenges", `{"challengeId": "`+challengeID+`"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200 on repeat completion, got %d", recorder.Code)
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode completion response: %v", err)
	}
	if resp.TotalPoints != 1350 {
		t.Errorf("expected unchanged total 1350, got %d", resp.TotalPoints)
	}
}

func TestAPIChallengeCompletionErrors(t *testing.T) {
	engine, _ := newTestAPI(t)
	getDashboard(t, engine)

	t.Run("unknown challenge id", func(t *testing.T) {
		recorder := doRequest(t, engine, http.MethodPut, "/challenges", `{"challengeId": "`+uuid.NewString()+`"}`)
		if recorder.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", recorder.Code)
		}
	})

	t.Run("malformed challenge id", func(t *testing.T) {
		recorder := doRequest(t, engine, http.MethodPut, "/challenges", `{"challengeId": "not-a-uuid"}`)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})

	t.Run("missing challenge id", func(t *testing.T) {
		recorder := doRequest(t, engine, http.MethodPut, "/challenges", `{}`)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})
}

func TestAPIChallengeCreation(t *testing.T) {
	engine, _ := newTestAPI(t)
	getDashboard(t, engine)

	body := `{"title": "No Takeout Week", "description": "Cook every meal at home", "targetAmount": 60, "targetDays": 7, "category": "dining", "points": 75}`
	recorder := doRequest(t, engine, http.MethodPost, "/challenges", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var created dto.ChallengeResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode challenge response: %v", err)
	}
	if created.Status != "Active" || created.CurrentDays != 0 {
		t.Errorf("expected a fresh Active challenge, got %+v", created)
	}

	snapshot := getDashboard(t, engine)
	if len(snapshot.Challenges) != 3 {
		t.Errorf("expected the new challenge in the active view, got %d challenges", len(snapshot.Challenges))
	}

	t.Run("rejects a non-positive duration", func(t *testing.T) {
		recorder := doRequest(t, engine, http.MethodPost, "/challenges", `{"title": "Broken", "targetDays": -1}`)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", recorder.Code)
		}
	})
}

func TestAPIChatFallsBackWithoutProvider(t *testing.T) {
	engine, _ := newTestAPI(t)

	recorder := doRequest(t, engine, http.MethodPost, "/ai-chat", `{"message": "help me budget"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	var resp dto.AdviceResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Response == "" {
		t.Error("expected best-effort advice text")
	}
}
