package health_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"SafetyQuizBot/internal/health"
)

func TestKeepAlive(t *testing.T) {
	srv := httptest.NewServer(health.NewRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Bot is running!" {
		t.Fatalf("body = %q", body)
	}
}
