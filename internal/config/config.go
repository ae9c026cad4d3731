package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	DataDir   string
	OutputDir string

	OracleAPIKey       string
	OracleModel        string
	OracleBaseURL      string
	OracleTimeoutMs    int
	OracleRateLimitRPS int

	IMAPHost     string
	IMAPPort     int
	IMAPSecure   bool
	IMAPUser     string
	IMAPPassword string
	IMAPMailbox  string
	IMAPMarkSeen bool
	IMAPFetchMax int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		DataDir:   getEnv("DATA_DIR", filepath.Join(cwd, "data", "inbox")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		OracleAPIKey:       getEnv("ORACLE_API_KEY", ""),
		OracleModel:        getEnv("ORACLE_MODEL", "google/gemini-2.0-flash-001"),
		OracleBaseURL:      getEnv("ORACLE_BASE_URL", ""),
		OracleTimeoutMs:    getEnvInt("ORACLE_TIMEOUT_MS", 30000),
		OracleRateLimitRPS: getEnvInt("ORACLE_RATE_LIMIT_RPS", 2),

		IMAPHost:     getEnv("IMAP_HOST", ""),
		IMAPPort:     getEnvInt("IMAP_PORT", 993),
		IMAPSecure:   getEnvBool("IMAP_SECURE", true),
		IMAPUser:     getEnv("IMAP_USER", ""),
		IMAPPassword: getEnv("IMAP_PASSWORD", ""),
		IMAPMailbox:  getEnv("IMAP_MAILBOX", "INBOX"),
		IMAPMarkSeen: getEnvBool("IMAP_MARK_SEEN", false),
		IMAPFetchMax: getEnvInt("IMAP_FETCH_MAX", 20),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
