package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// Corpus sources.
const (
	CorpusSourceFiles    = "files"
	CorpusSourcePostgres = "postgres"
)

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CorpusConfig selects where the frequency tables are loaded from.
type CorpusConfig struct {
	Source      string        `yaml:"source"       env:"CORPUS_SOURCE"       env-default:"files"`
	Dir         string        `yaml:"dir"          env:"CORPUS_DIR"          env-default:"./static"`
	WordsFile   string        `yaml:"words_file"   env:"CORPUS_WORDS_FILE"   env-default:"barewordcensus.csv"`
	LemmasFile  string        `yaml:"lemmas_file"  env:"CORPUS_LEMMAS_FILE"  env-default:"lemmacensus.csv"`
	SummaryFile string        `yaml:"summary_file" env:"CORPUS_SUMMARY_FILE" env-default:"censussummary.txt"`
	LoadTimeout time.Duration `yaml:"load_timeout" env:"CORPUS_LOAD_TIMEOUT" env-default:"2m"`
}

// DatabaseConfig holds PostgreSQL connection settings. It is only used when
// the corpus source is postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the proper-noun registry connection. An empty Addr
// disables the registry.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Key      string `yaml:"key"      env:"REDIS_KEY"      env-default:"proper_nouns"`
}

// ScoringConfig holds scoring limits and defaults.
type ScoringConfig struct {
	NotFoundPenalty int `yaml:"not_found_penalty" env:"SCORING_NOT_FOUND_PENALTY" env-default:"10"`
	MaxTextLength   int `yaml:"max_text_length"   env:"SCORING_MAX_TEXT_LENGTH"   env-default:"10000"`
	MaxProperNouns  int `yaml:"max_proper_nouns"  env:"SCORING_MAX_PROPER_NOUNS"  env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the scoring API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// UsePostgres reports whether the corpus is loaded from the database.
func (c CorpusConfig) UsePostgres() bool {
	return strings.EqualFold(c.Source, CorpusSourcePostgres)
}

// RedisEnabled reports whether a proper-noun registry is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}
