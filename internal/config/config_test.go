package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "UPLOADS_DIR", "OPEN_REGISTRATION", "SWAGGER_HOST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.True(t, cfg.OpenRegistration)
	assert.Empty(t, cfg.SwaggerHost, "no swagger host unless set")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPEN_REGISTRATION", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SWAGGER_HOST", "api.safarihub.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.False(t, cfg.OpenRegistration)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "api.safarihub.example", cfg.SwaggerHost)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("OPEN_REGISTRATION", "not-a-bool")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.True(t, cfg.OpenRegistration)
}
