package billing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchithq/launchit/internal/app/features/billing"
	"go.uber.org/zap"
)

func TestServePortal_RelaysVerbatim(t *testing.T) {
	var gotAuth, gotCustomer, gotSendEmail, gotTestMode string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCustomer = r.URL.Query().Get("customer_id")
		gotSendEmail = r.URL.Query().Get("send_email")
		gotTestMode = r.URL.Query().Get("test_mode")

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Portal-Request-Id", "req_123")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url":"https://portal.example.com/p/abc"}`))
	}))
	defer upstream.Close()

	h := billing.NewHandler(upstream.URL, "sk_test_key", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/billing/portal?customer_id=cus_42&send_email=true", nil)
	rec := httptest.NewRecorder()

	h.ServePortal(rec, req)

	if gotAuth != "Bearer sk_test_key" {
		t.Errorf("Authorization: got %q", gotAuth)
	}
	if gotCustomer != "cus_42" {
		t.Errorf("customer_id: got %q", gotCustomer)
	}
	if gotSendEmail != "true" {
		t.Errorf("send_email: got %q", gotSendEmail)
	}
	if gotTestMode != "true" {
		t.Errorf("test_mode: got %q", gotTestMode)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rec.Code)
	}
	if got := rec.Header().Get("X-Portal-Request-Id"); got != "req_123" {
		t.Errorf("relayed header: got %q", got)
	}
	if rec.Body.String() != `{"url":"https://portal.example.com/p/abc"}` {
		t.Errorf("relayed body: got %q", rec.Body.String())
	}
}

func TestServePortal_LiveMode(t *testing.T) {
	var gotLiveMode, gotTestMode string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLiveMode = r.URL.Query().Get("live_mode")
		gotTestMode = r.URL.Query().Get("test_mode")
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	h := billing.NewHandler(upstream.URL, "sk_live_key", true, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/billing/portal?customer_id=cus_1", nil)
	rec := httptest.NewRecorder()

	h.ServePortal(rec, req)

	if gotLiveMode != "true" {
		t.Errorf("live_mode: got %q, want true", gotLiveMode)
	}
	if gotTestMode != "" {
		t.Errorf("test_mode sent in live mode: %q", gotTestMode)
	}
}

func TestServePortal_UpstreamErrorPropagates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"subscription lapsed"}`))
	}))
	defer upstream.Close()

	h := billing.NewHandler(upstream.URL, "sk_test_key", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/billing/portal?customer_id=cus_9", nil)
	rec := httptest.NewRecorder()

	h.ServePortal(rec, req)

	if rec.Code != http.StatusPaymentRequired {
		t.Errorf("status: got %d, want 402", rec.Code)
	}
	if rec.Body.String() != `{"error":"subscription lapsed"}` {
		t.Errorf("body: got %q", rec.Body.String())
	}
}

func TestServePortal_MissingCustomerID(t *testing.T) {
	h := billing.NewHandler("http://unused.example.com", "sk", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/billing/portal", nil)
	rec := httptest.NewRecorder()

	h.ServePortal(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestServePortal_Unconfigured(t *testing.T) {
	h := billing.NewHandler("", "", false, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/billing/portal?customer_id=cus_1", nil)
	rec := httptest.NewRecorder()

	h.ServePortal(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rec.Code)
	}
}
