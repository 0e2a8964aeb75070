package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("INVITATION_TTL", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("MIGRATE_ON_START", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.ServerPort)
	assert.Equal(t, EnvDevelopment, cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration())
	assert.Equal(t, 7*24*time.Hour, cfg.InvitationTTL)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.True(t, cfg.MigrateOnStart)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("INVITATION_TTL", "48h")
	t.Setenv("FRONTEND_URL", "https://notes.example.com/")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 48*time.Hour, cfg.InvitationTTL)
	assert.Equal(t, "https://notes.example.com", cfg.FrontendURL)
	assert.False(t, cfg.MigrateOnStart)
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestDatabaseConfig_Reader_FallsBackToWriter(t *testing.T) {
	t.Setenv("POSTGRES_WRITER_HOST", "writer.local")
	t.Setenv("POSTGRES_READER_HOST", "")

	assert.Equal(t, "writer.local", getReaderConfig().Host)

	t.Setenv("POSTGRES_READER_HOST", "reader.local")
	assert.Equal(t, "reader.local", getReaderConfig().Host)
}

func TestS3Config_ExportKey(t *testing.T) {
	c := &S3Config{KeyPrefix: "note-exports"}
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.FixedZone("x", 3600))

	assert.Equal(t, "note-exports/acme/notes_acme_20240309T130507Z.json", c.ExportKey("acme", ts))
}
