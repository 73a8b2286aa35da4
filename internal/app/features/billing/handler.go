package billing

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Handler relays portal-link requests to the external billing provider.
// It is a passthrough: the caller's customer_id and send_email values,
// the server-held bearer key, and the configured mode flag go out, and
// the provider's status, headers, and body come back untouched. No
// translation, no retry.
type Handler struct {
	PortalURL string // provider endpoint, e.g. https://billing.example.com/v1/portal
	APIKey    string
	LiveMode  bool
	Client    *http.Client
	Log       *zap.Logger
}

func NewHandler(portalURL, apiKey string, liveMode bool, logger *zap.Logger) *Handler {
	return &Handler{
		PortalURL: portalURL,
		APIKey:    apiKey,
		LiveMode:  liveMode,
		Client:    &http.Client{Timeout: 30 * time.Second},
		Log:       logger,
	}
}

// hop-by-hop headers are the only thing we do not relay.
var hopByHop = map[string]bool{
	"Connection":          true,
	"Keep-Alive":          true,
	"Proxy-Authenticate":  true,
	"Proxy-Authorization": true,
	"Te":                  true,
	"Trailer":             true,
	"Transfer-Encoding":   true,
	"Upgrade":             true,
}

// ServePortal handles GET /api/billing/portal.
func (h *Handler) ServePortal(w http.ResponseWriter, r *http.Request) {
	if h.PortalURL == "" || h.APIKey == "" {
		h.Log.Warn("billing: portal not configured")
		http.Error(w, "billing portal not configured", http.StatusServiceUnavailable)
		return
	}

	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}
	sendEmail := r.URL.Query().Get("send_email")

	q := url.Values{}
	q.Set("customer_id", customerID)
	if sendEmail != "" {
		q.Set("send_email", sendEmail)
	}
	if h.LiveMode {
		q.Set("live_mode", "true")
	} else {
		q.Set("test_mode", "true")
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, h.PortalURL+"?"+q.Encode(), nil)
	if err != nil {
		h.Log.Error("billing: build upstream request failed", zap.Error(err))
		http.Error(w, "billing portal unavailable", http.StatusBadGateway)
		return
	}
	req.Header.Set("Authorization", "Bearer "+h.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		h.Log.Error("billing: upstream request failed", zap.Error(err))
		http.Error(w, "billing portal unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, vals := range resp.Header {
		if hopByHop[http.CanonicalHeaderKey(k)] {
			continue
		}
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.Log.Warn("billing: relay body failed", zap.Error(err))
	}
}
