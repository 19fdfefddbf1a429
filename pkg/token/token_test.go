package token

import (
	"strings"
	"testing"
	"time"

	"phi-inspection/pkg/utils"

	"github.com/google/uuid"
)

func testConfig() utils.JWTConfig {
	return utils.JWTConfig{Secret: "secret", Issuer: "phi-inspection", ExpiryHours: 24}
}

func TestMintAndParse(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()
	userID := uuid.New()

	raw, expiresAt, err := Mint(cfg, now, Payload{UserID: userID, Name: "Nimal Perera", Role: "phi"})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if got := expiresAt.Sub(now); got != 24*time.Hour {
		t.Fatalf("expected 24h lifetime, got %v", got)
	}

	claims, err := Parse(cfg, raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, claims.UserID)
	}
	if claims.Name != "Nimal Perera" {
		t.Fatalf("unexpected name %q", claims.Name)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestParseRejectsTamperedSignature(t *testing.T) {
	cfg := testConfig()
	raw, _, err := Mint(cfg, time.Now(), Payload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := Parse(cfg, raw+"x"); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseRejectsOtherSecret(t *testing.T) {
	raw, _, err := Mint(testConfig(), time.Now(), Payload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	other := testConfig()
	other.Secret = "different"
	if _, err := Parse(other, raw); err == nil {
		t.Fatal("expected verification failure with a different secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testConfig()
	raw, _, err := Mint(cfg, time.Now().Add(-25*time.Hour), Payload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	_, err = Parse(cfg, raw)
	if err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestMintRequiresUser(t *testing.T) {
	if _, _, err := Mint(testConfig(), time.Now(), Payload{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}
