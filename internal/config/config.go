package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
	CloudinaryAPIBaseURL   string
	CloudinaryDeliveryURL  string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string

	EmailAPIKey    string
	EmailAPIURL    string
	EmailFrom      string
	LeadRecipients []string

	CORSAllowedOrigins []string
	CatalogCacheTTL    time.Duration
}

var required = []string{
	"MARIADB_DSN",
	"MARIADB_MAX_OPEN_CONN",
	"MARIADB_MAX_IDLE_CONNS",
	"MARIADB_CONN_MAX_LIFETIME",
	"SERVER_PORT",
	"CLOUDINARY_CLOUD_NAME",
	"CLOUDINARY_API_KEY",
	"CLOUDINARY_API_SECRET",
	"CLOUDINARY_UPLOAD_PRESET",
	"EMAIL_API_KEY",
}

func Load() (*Settings, error) {
	ctx := context.Background()
	if err := godotenv.Load(".env"); err != nil {
		logger.Info(ctx, "No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		logger.Debugf(ctx, "could not read .env file: %v", err)
	}

	for _, key := range required {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	v.SetDefault("JWT_ISSUER", "identity")
	v.SetDefault("JWT_AUDIENCE", "admin")
	v.SetDefault("EMAIL_FROM", "Paper Site <no-reply@example.com>")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CATALOG_CACHE_TTL", 300)

	return &Settings{
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      v.GetInt("SERVER_PORT"),

		CloudinaryCloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: v.GetString("CLOUDINARY_UPLOAD_PRESET"),
		CloudinaryAPIBaseURL:   v.GetString("CLOUDINARY_API_BASE_URL"),
		CloudinaryDeliveryURL:  v.GetString("CLOUDINARY_DELIVERY_URL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		// PEM keys are often stored on one line with escaped newlines
		JWTPublicKey: strings.ReplaceAll(v.GetString("JWT_PUBLIC_KEY"), `\n`, "\n"),
		JWTIssuer:    v.GetString("JWT_ISSUER"),
		JWTAudience:  v.GetString("JWT_AUDIENCE"),

		EmailAPIKey:    v.GetString("EMAIL_API_KEY"),
		EmailAPIURL:    v.GetString("EMAIL_API_URL"),
		EmailFrom:      v.GetString("EMAIL_FROM"),
		LeadRecipients: splitList(v.GetString("LEAD_RECIPIENTS")),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		CatalogCacheTTL:    time.Duration(v.GetInt("CATALOG_CACHE_TTL")) * time.Second,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
