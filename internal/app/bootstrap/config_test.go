package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	cfg := AppConfig{MongoURI: "mongodb://localhost:27017"}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err != nil {
		t.Errorf("ValidateConfig = %v, want nil", err)
	}
}

func TestValidateConfigRejectsBadMongoURI(t *testing.T) {
	cfg := AppConfig{MongoURI: "not-a-mongo-uri"}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error for malformed Mongo URI")
	}
}

func TestValidateConfigRejectsPartialGoogleCreds(t *testing.T) {
	cfg := AppConfig{
		MongoURI:       "mongodb://localhost:27017",
		GoogleClientID: "client-id",
	}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error when only one Google credential is set")
	}
}

func TestValidateConfigRejectsBillingURLWithoutKey(t *testing.T) {
	cfg := AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		BillingPortalURL: "https://billing.example.com/portal",
	}
	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Error("expected error when billing URL is set without an API key")
	}
}
