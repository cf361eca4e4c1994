package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	response "assistente_juridico/internal/adapter/http/dto/response"
	"assistente_juridico/internal/adapter/http/handlers/mocks"
	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProcessRouter(h *ProcessHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", as(signedIn))
	g.POST("/chats/:id/processes", h.Generate)
	g.DELETE("/processes/:id", h.Delete)
	g.POST("/processes/:id/retry", h.Retry)
	g.GET("/processes/:id/download", h.Download)
	return r
}

func TestProcessHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProcessUseCase(ctrl)
	h := NewProcessHandler(uc)

	uc.EXPECT().Generate(gomock.Any(), signedIn, "chat-1", "Ação de Cobrança").
		Return(entities.GeneratedProcess{ID: "p1", Status: entities.ProcessStatusPending, FileName: "ação_de_cobrança.pdf"}, nil)

	w := doJSON(newProcessRouter(h), http.MethodPost, "/v1/chats/chat-1/processes", `{"title":"Ação de Cobrança"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}
	var body response.ProcessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "pending" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestProcessHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("completed process", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		h := NewProcessHandler(uc)

		uc.EXPECT().Get(gomock.Any(), "lawyer-1", "p1").
			Return(entities.GeneratedProcess{ID: "p1", FileName: "peticao_inicial.pdf", Status: entities.ProcessStatusCompleted}, nil)
		uc.EXPECT().Download(gomock.Any(), "lawyer-1", "p1").Return("http://files/p1.pdf", nil)

		w := doJSON(newProcessRouter(h), http.MethodGet, "/v1/processes/p1/download", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.DownloadResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.FileName != "peticao_inicial.pdf" || body.DownloadURL != "http://files/p1.pdf" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("pending process is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProcessUseCase(ctrl)
		h := NewProcessHandler(uc)

		uc.EXPECT().Get(gomock.Any(), "lawyer-1", "p1").Return(entities.GeneratedProcess{ID: "p1"}, nil)
		uc.EXPECT().Download(gomock.Any(), "lawyer-1", "p1").Return("", usecase.ErrProcessNotCompleted)

		w := doJSON(newProcessRouter(h), http.MethodGet, "/v1/processes/p1/download", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestProcessHandler_DeleteAndRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProcessUseCase(ctrl)
	h := NewProcessHandler(uc)
	r := newProcessRouter(h)

	uc.EXPECT().Delete(gomock.Any(), "lawyer-1", "p1").Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "lawyer-1", "p2").Return(usecase.ErrProcessNotFound)
	uc.EXPECT().Retry(gomock.Any(), "lawyer-1", "p3").Return(entities.GeneratedProcess{}, usecase.ErrProcessNotFailed)

	if w := doJSON(r, http.MethodDelete, "/v1/processes/p1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/v1/processes/p2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/processes/p3/retry", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
