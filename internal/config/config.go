package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	// DefaultThreshold is the caller-level default for /dedupe and the CLI;
	// the engine itself has no default.
	DefaultThreshold int

	USPSUserID  string
	USPSBaseURL string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "128"))
	thr, _ := strconv.Atoi(getenv("DEFAULT_THRESHOLD", "90"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:             getenv("HOST", "127.0.0.1"),
		Port:             port,
		AllowOrigins:     origins,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          getenv("LOG_FILE", "logs/namedup-service.log"),
		MaxUploadMB:      mb,
		DefaultThreshold: thr,
		USPSUserID:       os.Getenv("USPS_USER_ID"),
		USPSBaseURL:      getenv("USPS_API_URL", "https://secure.shippingapis.com/ShippingAPI.dll"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
