package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8084, cfg.Port)
	assert.Equal(t, "127.0.0.1:8084", cfg.Addr())
	assert.Equal(t, 90, cfg.DefaultThreshold)
	assert.Equal(t, 128, cfg.MaxUploadMB)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "https://secure.shippingapis.com/ShippingAPI.dll", cfg.USPSBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_THRESHOLD", "75")
	t.Setenv("ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("USPS_USER_ID", "TESTUSER")

	cfg := Load()
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 75, cfg.DefaultThreshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, "TESTUSER", cfg.USPSUserID)
}
