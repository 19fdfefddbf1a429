package utils

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "phi")
	t.Setenv("DB_USER", "phi")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, "phi-inspection", cfg.JWT.Issuer)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Contains(t, cfg.Database.DSN(), "dbname='phi'")
}

func TestLoadConfigMissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "phi")
	t.Setenv("DB_USER", "phi")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateRejectsNonPositiveExpiry(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "h", Name: "n", User: "u"},
		JWT:      JWTConfig{Secret: "s", ExpiryHours: 0},
	}
	require.Error(t, cfg.Validate())
}

func TestDSNQuotesValues(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		Name:     "phi",
		User:     "phi",
		Password: `p a's\s`,
		SSLMode:  "disable",
	}

	assert.Equal(t,
		`host='db.internal' port='5432' user='phi' password='p a\'s\\s' dbname='phi' sslmode='disable'`,
		db.DSN())

	cfg, err := pgconn.ParseConfig(db.DSN())
	require.NoError(t, err)
	assert.Equal(t, `p a's\s`, cfg.Password)
	assert.Equal(t, "db.internal", cfg.Host)
}
