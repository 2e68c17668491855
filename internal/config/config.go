package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMaxConnLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// MatchingConfig holds the ranking and coverage thresholds. It is built once
// here and handed to the usecases explicitly; nothing reads it from ambient
// state.
type MatchingConfig struct {
	MinMatchPercentage  float64
	RankLimit           int
	CriticalGapCoverage float64
	TopSkillsLimit      int
	RankWorkers         int
	HistoryBuffer       int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		Host:     opt("DB_HOST"),
		Port:     opt("DB_PORT"),
		Name:     opt("DB_NAME"),
		User:     opt("DB_USER"),
		Password: opt("DB_PASSWORD"),
		SSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:      durationOrDefault(opt("DB_CONNECT_TIMEOUT_SECONDS"), 5*time.Second),
		PoolMaxConns:        int32(intOrDefault(opt("DB_POOL_MAX_CONNS"), 10)),
		PoolMaxConnLifetime: durationOrDefault(opt("DB_POOL_MAX_CONN_LIFETIME_SECONDS"), time.Hour),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationOrDefault(opt("JWT_ACCESS_EXPIRES_SECONDS"), 15*time.Minute),
		RefreshExpiresIn: durationOrDefault(opt("JWT_REFRESH_EXPIRES_SECONDS"), 7*24*time.Hour),
	}

	cfg.Matching = MatchingConfig{
		MinMatchPercentage:  floatOrDefault(opt("MATCH_MIN_PERCENTAGE"), 60.0),
		RankLimit:           intOrDefault(opt("MATCH_RANK_LIMIT"), 10),
		CriticalGapCoverage: floatOrDefault(opt("MATCH_CRITICAL_GAP_COVERAGE"), 20.0),
		TopSkillsLimit:      intOrDefault(opt("MATCH_TOP_SKILLS_LIMIT"), 10),
		RankWorkers:         intOrDefault(opt("MATCH_RANK_WORKERS"), 8),
		HistoryBuffer:       intOrDefault(opt("MATCH_HISTORY_BUFFER"), 256),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func floatOrDefault(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func durationOrDefault(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
