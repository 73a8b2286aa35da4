package maintenance

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	settingsstore "github.com/launchithq/launchit/internal/app/store/settings"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB       *mongo.Database
	Settings *settingsstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Settings: settingsstore.New(db), Log: logger}
}

type pageData struct {
	viewdata.BaseVM
	Message string
}

const defaultMessage = "We are performing scheduled maintenance. Please check back shortly."

// Serve renders the maintenance notice. The page itself is never
// gated, visitors land here while the rest of the site is closed.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	msg := defaultMessage
	if settings, err := h.Settings.Get(ctx); err == nil && settings.MaintenanceMessage != "" {
		msg = settings.MaintenanceMessage
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, h.DB, "Maintenance", "/"),
		Message: msg,
	}
	templates.Render(w, r, "maintenance", data)
}
