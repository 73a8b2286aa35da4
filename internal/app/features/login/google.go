package login

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/launchithq/launchit/internal/app/system/normalize"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// StateStore issues and redeems one-time OAuth state nonces.
type StateStore interface {
	Issue(ctx context.Context, returnURL string, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, state string) (returnURL string, valid bool, err error)
}

const stateTTL = 10 * time.Minute

func (h *Handler) GoogleConfigured() bool {
	return h.GoogleClientID != "" && h.GoogleClientSecret != "" && h.BaseURL != ""
}

func (h *Handler) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.GoogleClientID,
		ClientSecret: h.GoogleClientSecret,
		RedirectURL:  h.BaseURL + "/auth/google/callback",
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.GoogleConfigured() {
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	state, err := h.States.Issue(ctx, query.Get(r, "return"), stateTTL)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "google login: issue state failed", err,
			"Google sign-in is unavailable right now.", "/login")
		return
	}

	http.Redirect(w, r, h.oauthConfig().AuthCodeURL(state), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if !h.GoogleConfigured() {
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	if errParam := query.Get(r, "error"); errParam != "" {
		h.Log.Info("google login: provider returned error", zap.String("error", errParam))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	returnURL, valid, err := h.States.Redeem(ctx, query.Get(r, "state"))
	if err != nil {
		h.Log.Error("google login: redeem state failed", zap.Error(err))
	}
	if !valid {
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := query.Get(r, "code")
	if code == "" {
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	conf := h.oauthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		h.Log.Warn("google login: token exchange failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	info, err := fetchGoogleUserInfo(ctx, conf, token)
	if err != nil {
		h.Log.Warn("google login: fetch user info failed", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	email := normalize.Email(info.Email)
	if email == "" {
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Error("google login: user lookup failed", zap.Error(err))
		}
		http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
		return
	}
	if user.AuthMethod != "google" {
		h.Log.Info("google login: account uses different auth method",
			zap.String("email", email), zap.String("auth_method", user.AuthMethod))
		http.Redirect(w, r, "/login?error=no_account", http.StatusSeeOther)
		return
	}
	if normalize.Status(user.Status) == "disabled" {
		http.Redirect(w, r, "/login?error=account_disabled", http.StatusSeeOther)
		return
	}

	h.signInAndRedirect(w, r, user, urlutil.SafeReturn(returnURL, "", "/"))
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := conf.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
