package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	RateLimit          string // ulule format, e.g. 300-M
	CORSAllowedOrigins []string

	TaxProviderURL     string
	TaxProviderAPIKey  string
	TaxProviderTimeout time.Duration

	RejectCloseWithDrafts bool

	AccountRoles domain.AccountRoleTable
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	defaults := domain.DefaultAccountRoles()
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ISSUER", "general-ledger")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("TAX_PROVIDER_URL", "")
	viper.SetDefault("TAX_PROVIDER_API_KEY", "")
	viper.SetDefault("TAX_PROVIDER_TIMEOUT", "15s")
	viper.SetDefault("REJECT_CLOSE_WITH_DRAFTS", true)
	viper.SetDefault("ACCOUNT_ROLES_FILE", "")
	viper.SetDefault("ACCOUNT_ROLE_RECEIVABLE", defaults.AccountsReceivable)
	viper.SetDefault("ACCOUNT_ROLE_PAYABLE", defaults.AccountsPayable)
	viper.SetDefault("ACCOUNT_ROLE_INPUT_VAT", defaults.InputVAT)
	viper.SetDefault("ACCOUNT_ROLE_OUTPUT_VAT", defaults.OutputVAT)
	viper.SetDefault("ACCOUNT_ROLE_SERVICE_REVENUE", defaults.ServiceRevenue)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "insecure-development-secret-change-me"
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.TaxProviderURL = viper.GetString("TAX_PROVIDER_URL")
	cfg.TaxProviderAPIKey = viper.GetString("TAX_PROVIDER_API_KEY")
	timeoutStr := viper.GetString("TAX_PROVIDER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for TAX_PROVIDER_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.TaxProviderTimeout = timeout
	if cfg.TaxProviderURL == "" {
		log.Println("Warning: TAX_PROVIDER_URL not set. Invoice issuing will not function.")
	}

	cfg.RejectCloseWithDrafts = viper.GetBool("REJECT_CLOSE_WITH_DRAFTS")

	cfg.AccountRoles = domain.AccountRoleTable{
		Default: domain.AccountRoles{
			AccountsReceivable: viper.GetString("ACCOUNT_ROLE_RECEIVABLE"),
			AccountsPayable:    viper.GetString("ACCOUNT_ROLE_PAYABLE"),
			InputVAT:           viper.GetString("ACCOUNT_ROLE_INPUT_VAT"),
			OutputVAT:          viper.GetString("ACCOUNT_ROLE_OUTPUT_VAT"),
			ServiceRevenue:     viper.GetString("ACCOUNT_ROLE_SERVICE_REVENUE"),
		},
	}
	if path := viper.GetString("ACCOUNT_ROLES_FILE"); path != "" {
		tenants, err := LoadTenantRoles(path)
		if err != nil {
			return nil, err
		}
		cfg.AccountRoles.Tenants = tenants
	}

	return cfg, nil
}

// LoadTenantRoles reads per-tenant role overrides from a YAML or JSON file shaped as
//
//	tenants:
//	  <tenant-id>:
//	    accounts_receivable: 1.1.02.001
func LoadTenantRoles(path string) (map[string]domain.AccountRoles, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read account roles file %s: %w", path, err)
	}
	var file struct {
		Tenants map[string]domain.AccountRoles `mapstructure:"tenants"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode account roles file %s: %w", path, err)
	}
	return file.Tenants, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
