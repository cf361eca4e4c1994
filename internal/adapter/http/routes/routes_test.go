package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistente_juridico/internal/config"

	"github.com/gin-gonic/gin"
)

func call(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestRoutes_SignupToChat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.StorageDriver = config.StorageMemory
	cfg.Minio.Endpoint = ""
	cfg.MercadoPago.Mock = true
	cfg.LoginLatency = 0
	cfg.AssistantReplyDelay = 10 * time.Millisecond

	closers, err := getRoutes(context.Background(), cfg)
	if err != nil {
		t.Fatalf("wire: %v", err)
	}
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	if code, _ := call(t, http.MethodGet, "/v1/ping", "", ""); code != http.StatusOK {
		t.Fatalf("ping: %d", code)
	}
	if code, body := call(t, http.MethodPost, "/api/create-payment-intent", "", `{"amount":4990}`); code != http.StatusOK || body["currency"] != "brl" {
		t.Fatalf("create intent: %d %v", code, body)
	}

	_, reg := call(t, http.MethodPost, "/v1/registrations", "", "")
	id, _ := reg["id"].(string)
	if id == "" {
		t.Fatalf("no registration id: %v", reg)
	}
	base := "/v1/registrations/" + id
	profile := `{"full_name":"Ana Souza","email":"Ana@Adv.br","cpf":"12345678901","oab":"123456","oab_state":"sp","password":"segredo123"}`
	if code, body := call(t, http.MethodPatch, base+"/profile", "", profile); code != http.StatusOK || body["can_advance"] != true {
		t.Fatalf("profile: %d %v", code, body)
	}
	if code, _ := call(t, http.MethodPost, base+"/advance", "", ""); code != http.StatusOK {
		t.Fatalf("advance: %d", code)
	}
	if code, body := call(t, http.MethodPost, base+"/license", "", `{"license_type":"premium"}`); code != http.StatusOK || body["show_payment_form"] != true {
		t.Fatalf("license: %d %v", code, body)
	}
	if code, body := call(t, http.MethodPost, base+"/payment/confirm", "", ""); code != http.StatusOK || body["step"] != "completed" {
		t.Fatalf("confirm: %d %v", code, body)
	}

	code, session := call(t, http.MethodPost, "/v1/auth/login", "", `{"email":"ana@adv.br","password":"segredo123"}`)
	token, _ := session["token"].(string)
	if code != http.StatusOK || token == "" {
		t.Fatalf("login: %d %v", code, session)
	}

	if code, _ := call(t, http.MethodGet, "/v1/chats", "", ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", code)
	}
	code, chat := call(t, http.MethodPost, "/v1/chats", token, `{"module_key":"criar-processo"}`)
	chatID, _ := chat["id"].(string)
	if code != http.StatusCreated || chatID == "" {
		t.Fatalf("create chat: %d %v", code, chat)
	}
	if code, _ := call(t, http.MethodPost, "/v1/chats/"+chatID+"/messages", token, `{"content":"Preciso de uma petição"}`); code != http.StatusAccepted {
		t.Fatalf("send: %d", code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		_, got := call(t, http.MethodGet, "/v1/chats/"+chatID, token, "")
		msgs, _ := got["messages"].([]any)
		if len(msgs) == 2 {
			last, _ := msgs[1].(map[string]any)
			if last["role"] != "assistant" {
				t.Fatalf("unexpected reply %v", last)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("assistant reply never arrived: %v", got)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if code, me := call(t, http.MethodGet, "/v1/me", token, ""); code != http.StatusOK || me["lawyer"] == nil {
		t.Fatalf("me: %d %v", code, me)
	}
}
