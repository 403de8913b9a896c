// Package config provides configuration management for the pressure drop service.
//
// Values come from environment variables. When CONFIG_FILE names an INI file,
// keys in its default section are used for anything the environment leaves unset.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Cache       CacheConfig
	Calculation CalculationConfig
	Auth        AuthConfig
	Database    DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds result cache configuration. A zero Size disables the cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CalculationConfig holds the calculation settings used until a stored
// version is loaded from the database.
type CalculationConfig struct {
	Gravity        float64
	LaminarFormula model.LaminarFormula
}

// Settings returns the configured calculation settings.
func (c CalculationConfig) Settings() model.CalculationSettings {
	return model.CalculationSettings{
		Gravity:        c.Gravity,
		LaminarFormula: c.LaminarFormula,
	}
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// Enabled turns on API key authentication.
	Enabled bool
	APIKeys map[string]bool
	// JWTEnabled turns on bearer token authentication and the token endpoint.
	JWTEnabled     bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	// Clients maps a client ID to the bcrypt hash of its secret.
	Clients map[string]string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from the environment and the optional CONFIG_FILE.
// Invalid values fall back to their defaults; only an unreadable CONFIG_FILE
// is an error.
func Load() (Config, error) {
	src := source{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file, err := ini.Load(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
		src.file = file
	}
	return src.config(), nil
}

// source resolves a key from the environment first and the INI file second.
type source struct {
	file *ini.File
}

func (s source) config() Config {
	return Config{
		Server: ServerConfig{
			Port:           s.getString("PORT", "8080"),
			RateLimit:      s.getInt("RATE_LIMIT", 100),
			RateWindow:     s.getDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(s.lookup("CORS_ORIGINS")),
			SwaggerUser:    s.getString("SWAGGER_USER", ""),
			SwaggerPass:    s.getString("SWAGGER_PASS", ""),
			RequestTimeout: s.getDuration("REQUEST_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  s.getString("LOG_LEVEL", "info"),
			Pretty: s.getBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size: s.getInt("CACHE_SIZE", 0),
			TTL:  s.getDuration("CACHE_TTL", 5*time.Minute),
		},
		Calculation: CalculationConfig{
			Gravity:        s.getPositiveFloat("GRAVITY", model.DefaultGravity),
			LaminarFormula: s.getLaminarFormula("LAMINAR_FORMULA", model.LaminarFormulaLiteral),
		},
		Auth: AuthConfig{
			Enabled:        s.getBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(s.lookup("API_KEYS")),
			JWTEnabled:     s.getBool("JWT_ENABLED", false),
			JWTSecretKey:   s.getString("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL: s.getDuration("JWT_ACCESS_TOKEN_TTL", time.Hour),
			Clients:        parseClients(s.lookup("AUTH_CLIENTS")),
		},
		Database: DatabaseConfig{
			URI:                            s.getString("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   s.getString("MONGODB_DATABASE", "pressure_drop"),
			LogsTTL:                        s.getDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        s.getBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: s.getInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: s.getInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          s.getDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func (s source) lookup(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if s.file == nil {
		return ""
	}
	sec := s.file.Section(ini.DefaultSection)
	if !sec.HasKey(key) {
		return ""
	}
	return strings.TrimSpace(sec.Key(key).String())
}

func (s source) getString(key, defaultValue string) string {
	if v := s.lookup(key); v != "" {
		return v
	}
	return defaultValue
}

func (s source) getInt(key string, defaultValue int) int {
	if v := s.lookup(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func (s source) getBool(key string, defaultValue bool) bool {
	if v := s.lookup(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func (s source) getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := s.lookup(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func (s source) getPositiveFloat(key string, defaultValue float64) float64 {
	if v := s.lookup(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f > 0 && !math.IsInf(f, 0) {
			return f
		}
	}
	return defaultValue
}

func (s source) getLaminarFormula(key string, defaultValue model.LaminarFormula) model.LaminarFormula {
	if f := model.LaminarFormula(strings.ToLower(s.lookup(key))); f.Valid() {
		return f
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

// parseClients parses "id:hash,id:hash". Entries without both parts are skipped.
func parseClients(s string) map[string]string {
	if s == "" {
		return nil
	}
	entries := strings.Split(s, ",")
	result := make(map[string]string, len(entries))
	for _, e := range entries {
		id, hash, ok := strings.Cut(strings.TrimSpace(e), ":")
		id, hash = strings.TrimSpace(id), strings.TrimSpace(hash)
		if !ok || id == "" || hash == "" {
			continue
		}
		result[id] = hash
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
