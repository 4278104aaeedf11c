// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// EnrichmentConfig provides settings for rate enrichment (search + LLM).
type EnrichmentConfig interface {
	GetSearchAPIKey() string
	GetLLMAPIKey() string
	GetLLMModel() string
	IsSearchEnabled() bool
	IsLLMEnabled() bool
}

// MailConfig provides settings for SMTP mail dispatch.
type MailConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUser() string
	GetSMTPPassword() string
	GetMailFromName() string
	GetMailFromAddress() string
	GetNotifyAddress() string
	IsMailConfigured() bool
}

// LedgerConfig provides settings for the spreadsheet lead ledger.
type LedgerConfig interface {
	GetSheetID() string
	GetPurchaseSheetID() string
	GetServiceAccountEmail() string
	GetServiceAccountKey() string
	IsLedgerConfigured() bool
}

// AssetConfig provides settings for document assets and absolute links.
type AssetConfig interface {
	GetPublicBaseURL() string
	GetLogoPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	HTTPAddr            string
	CORSAllowAll        bool
	CORSOrigins         []string
	PublicBaseURL       string
	LogoPath            string
	SearchAPIKey        string
	LLMAPIKey           string
	LLMModel            string
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPassword        string
	MailFromName        string
	MailFromAddress     string
	NotifyAddress       string
	SheetID             string
	PurchaseSheetID     string
	ServiceAccountEmail string
	ServiceAccountKey   string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// EnrichmentConfig implementation
func (c *Config) GetSearchAPIKey() string { return c.SearchAPIKey }
func (c *Config) GetLLMAPIKey() string    { return c.LLMAPIKey }
func (c *Config) GetLLMModel() string     { return c.LLMModel }
func (c *Config) IsSearchEnabled() bool   { return c.SearchAPIKey != "" }
func (c *Config) IsLLMEnabled() bool      { return c.LLMAPIKey != "" }

// MailConfig implementation
func (c *Config) GetSMTPHost() string        { return c.SMTPHost }
func (c *Config) GetSMTPPort() int           { return c.SMTPPort }
func (c *Config) GetSMTPUser() string        { return c.SMTPUser }
func (c *Config) GetSMTPPassword() string    { return c.SMTPPassword }
func (c *Config) GetMailFromName() string    { return c.MailFromName }
func (c *Config) GetMailFromAddress() string { return c.MailFromAddress }
func (c *Config) GetNotifyAddress() string   { return c.NotifyAddress }
func (c *Config) IsMailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPassword != "" && c.MailFromAddress != ""
}

// LedgerConfig implementation
func (c *Config) GetSheetID() string             { return c.SheetID }
func (c *Config) GetPurchaseSheetID() string     { return c.PurchaseSheetID }
func (c *Config) GetServiceAccountEmail() string { return c.ServiceAccountEmail }
func (c *Config) GetServiceAccountKey() string   { return c.ServiceAccountKey }
func (c *Config) IsLedgerConfigured() bool {
	return c.SheetID != "" && c.ServiceAccountEmail != "" && c.ServiceAccountKey != ""
}

// AssetConfig implementation
func (c *Config) GetPublicBaseURL() string { return c.PublicBaseURL }
func (c *Config) GetLogoPath() string      { return c.LogoPath }

// Load reads configuration from environment variables.
// Enrichment, mail, and ledger credentials are all optional at startup:
// the components that need them degrade or fail per-request instead of
// blocking the whole server.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:        corsAllowAll,
		CORSOrigins:         corsOrigins,
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		LogoPath:            getEnv("LOGO_PATH", "assets/logo.png"),
		SearchAPIKey:        getEnv("SERPER_API_KEY", ""),
		LLMAPIKey:           getEnv("GEMINI_API_KEY", ""),
		LLMModel:            getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SMTPHost:            getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        getEnv("SMTP_APP_PASSWORD", ""),
		MailFromName:        getEnv("MAIL_FROM_NAME", "Tradedesk"),
		MailFromAddress:     getEnv("MAIL_FROM_ADDRESS", ""),
		NotifyAddress:       getEnv("NOTIFY_ADDRESS", ""),
		SheetID:             getEnv("LEADS_SHEET_ID", ""),
		PurchaseSheetID:     getEnv("PURCHASES_SHEET_ID", ""),
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		ServiceAccountKey:   getEnv("GOOGLE_PRIVATE_KEY", ""),
	}

	if cfg.MailFromAddress == "" && cfg.SMTPUser != "" {
		cfg.MailFromAddress = cfg.SMTPUser
	}
	if cfg.NotifyAddress == "" {
		cfg.NotifyAddress = cfg.MailFromAddress
	}
	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("SMTP_PORT must be a positive integer")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
