package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"resume-insights/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DatabaseURL     string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string

	LLMProvider  string
	LLMModel     string
	OpenAIAPIKey string
	GeminiAPIKey string
	LLMTimeout   time.Duration

	AuthProvider      string
	FirebaseProjectID string
	JWTSecret         string
	JWTIssuer         string

	RedisURL      string
	SkillCacheTTL time.Duration

	AMQPURL      string
	AMQPExchange string

	UploadRatePerMinute float64
	UploadBurst         int

	JobRolesFile string

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"PORT":                   "8080",
	"CORS_ALLOW_ORIGINS":     "http://localhost:5173",
	"ENV":                    "dev",
	"OBJECT_STORE":           "local",
	"LOCAL_STORE_DIR":        "./data",
	"LLM_PROVIDER":           "none",
	"LLM_TIMEOUT":            "30s",
	"AUTH_PROVIDER":          "jwt",
	"JWT_SECRET":             "dev-secret",
	"SKILL_CACHE_TTL":        "24h",
	"AMQP_EXCHANGE":          "resume_events",
	"UPLOAD_RATE_PER_MINUTE": 6.0,
	"UPLOAD_BURST":           3,
	"LOG_LEVEL":              "info",
	"LOG_FORMAT":             "json",
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	env := normalizeEnv(v.GetString("ENV"))
	dbURL := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:                v.GetString("PORT"),
		CORSAllowOrigin:     splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		Env:                 env,
		DatabaseURL:         dbURL,
		ObjectStoreType:     normalizeStoreType(v.GetString("OBJECT_STORE")),
		LocalStoreDir:       v.GetString("LOCAL_STORE_DIR"),
		AWSRegion:           v.GetString("AWS_REGION"),
		S3Bucket:            v.GetString("S3_BUCKET"),
		S3Prefix:            v.GetString("S3_PREFIX"),
		SSEKMSKeyID:         v.GetString("SSE_KMS_KEY_ID"),
		LLMProvider:         normalizeLLMProvider(v.GetString("LLM_PROVIDER")),
		LLMModel:            strings.TrimSpace(v.GetString("LLM_MODEL")),
		OpenAIAPIKey:        strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		GeminiAPIKey:        strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		LLMTimeout:          positiveDuration(v.GetDuration("LLM_TIMEOUT"), 30*time.Second),
		AuthProvider:        normalizeAuthProvider(v.GetString("AUTH_PROVIDER")),
		FirebaseProjectID:   strings.TrimSpace(v.GetString("FIREBASE_PROJECT_ID")),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           strings.TrimSpace(v.GetString("JWT_ISSUER")),
		RedisURL:            strings.TrimSpace(v.GetString("REDIS_URL")),
		SkillCacheTTL:       positiveDuration(v.GetDuration("SKILL_CACHE_TTL"), 24*time.Hour),
		AMQPURL:             strings.TrimSpace(v.GetString("AMQP_URL")),
		AMQPExchange:        strings.TrimSpace(v.GetString("AMQP_EXCHANGE")),
		UploadRatePerMinute: v.GetFloat64("UPLOAD_RATE_PER_MINUTE"),
		UploadBurst:         v.GetInt("UPLOAD_BURST"),
		JobRolesFile:        strings.TrimSpace(v.GetString("JOB_ROLES_FILE")),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeLLMProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return "openai"
	case "gemini", "google":
		return "gemini"
	default:
		return "none"
	}
}

func normalizeAuthProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "firebase":
		return "firebase"
	case "google":
		return "google"
	default:
		return "jwt"
	}
}

func positiveDuration(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// IsDevLike reports whether env allows in-memory fallbacks.
func (c Config) IsDevLike() bool {
	return c.Env == "dev" || c.Env == "local"
}
