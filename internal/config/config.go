package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Stripe billing
	StripeSecretKey     string
	StripeWebhookSecret string
	StripePriceCVC      PlanPrices
	StripePriceDiag     PlanPrices
	CheckoutSuccessURL  string
	CheckoutCancelURL   string

	// French public APIs
	SiretAPIURL   string
	GeocodeAPIURL string
	LookupTimeout time.Duration

	// Uploads
	UploadDir     string
	UploadBaseURL string
	UploadMaxMB   int64

	// Admin
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string
	PublicURL   string
}

// PlanPrices holds the Stripe price IDs for one paid membership tier.
type PlanPrices struct {
	Monthly string
	Yearly  string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "gainable_db"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripePriceCVC: PlanPrices{
			Monthly: getEnv("STRIPE_PRICE_CVC_MONTHLY", ""),
			Yearly:  getEnv("STRIPE_PRICE_CVC_YEARLY", ""),
		},
		StripePriceDiag: PlanPrices{
			Monthly: getEnv("STRIPE_PRICE_DIAG_MONTHLY", ""),
			Yearly:  getEnv("STRIPE_PRICE_DIAG_YEARLY", ""),
		},
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "https://gainable.fr/inscription/succes"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "https://gainable.fr/inscription"),

		SiretAPIURL:   getEnv("SIRET_API_URL", "https://recherche-entreprises.api.gouv.fr"),
		GeocodeAPIURL: getEnv("GEOCODE_API_URL", "https://api-adresse.data.gouv.fr"),
		LookupTimeout: parseDuration(getEnv("LOOKUP_TIMEOUT", "10s")),

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
		UploadMaxMB:   8,

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		PublicURL:   getEnv("PUBLIC_URL", "https://gainable.fr"),
	}
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set,
// otherwise it is assembled from the discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
