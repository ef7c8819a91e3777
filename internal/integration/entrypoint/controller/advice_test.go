package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-copilot/backend/internal/application/usecase/advice"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/controller"
	"github.com/finance-copilot/backend/internal/integration/entrypoint/dto"
)

type stubAdviceService struct {
	available bool
	response  string
	err       error
}

func (s *stubAdviceService) IsAvailable() bool {
	return s.available
}

func (s *stubAdviceService) GenerateAdvice(context.Context, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newAdviceEngine(service *stubAdviceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	adviceController := controller.NewAdviceController(advice.NewRequestAdviceUseCase(service, time.Second))
	engine.POST("/ai-chat", adviceController.Chat)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func TestAdviceControllerChat(t *testing.T) {
	t.Run("rejects a missing message", func(t *testing.T) {
		engine := newAdviceEngine(&stubAdviceService{available: true, response: "ok"})

		recorder := postJSON(t, engine, "/ai-chat", `{"message": ""}`)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", recorder.Code)
		}
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &errResp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if errResp.Error != "Message is required" {
			t.Errorf("unexpected error message %q", errResp.Error)
		}
	})

	t.Run("returns provider text on success", func(t *testing.T) {
		engine := newAdviceEngine(&stubAdviceService{available: true, response: "Save 20% of your income."})

		recorder := postJSON(t, engine, "/ai-chat", `{"message": "How much should I save?"}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", recorder.Code)
		}
		var resp dto.AdviceResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Response != "Save 20% of your income." {
			t.Errorf("unexpected response %q", resp.Response)
		}
		if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
			t.Errorf("expected an RFC3339 timestamp, got %q", resp.Timestamp)
		}
	})

	t.Run("answers 200 with a fallback when the provider fails", func(t *testing.T) {
		engine := newAdviceEngine(&stubAdviceService{available: true, err: errors.New("deadline exceeded")})

		recorder := postJSON(t, engine, "/ai-chat", `{"message": "How can I save more?"}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200 despite provider failure, got %d", recorder.Code)
		}
		var resp dto.AdviceResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(resp.Response, "technical difficulties") {
			t.Errorf("expected the fallback prefix, got %q", resp.Response)
		}
		if !strings.Contains(resp.Response, "Great question about saving!") {
			t.Errorf("expected the canned save response, got %q", resp.Response)
		}
	})

	t.Run("answers 200 with a fallback when no provider is configured", func(t *testing.T) {
		engine := newAdviceEngine(&stubAdviceService{available: false})

		recorder := postJSON(t, engine, "/ai-chat", `{"message": "tell me something"}`)

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", recorder.Code)
		}
		var resp dto.AdviceResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(resp.Response, "Could you please rephrase your question") {
			t.Errorf("expected the clarification prompt, got %q", resp.Response)
		}
	})
}
