// internal/config/config.go
//
// Runtime configuration from the environment (optionally seeded from a
// `.env` file via godotenv).
//
// Environment variables (defaults in parentheses):
//   PORT (5175)                  HTTP listen port
//   LOG_LEVEL (info)             zerolog level
//   LOG_PRETTY (false)           console instead of JSON logs
//   DB_PATH (./data/app.db)      SQLite file
//   WORD_LENGTH (5)              letters per word
//   MAX_ATTEMPTS (6)             attempts per game
//   WORDS_FULL_FILE              accepted-guess list; embedded default when unset
//   WORDS_COMMON_FILE            target list; defaults to WORDS_FULL_FILE
//   JWT_SECRET (dev_secret_change_me)
//   JWT_EXPIRES_DAYS (14)
//   COOKIE_NAME (guessword_token)
//   CLIENT_ORIGIN (http://localhost:5173)
//   DAILY_SALT (local_dev_salt)
//   APP_ENV (development)        "production" hardens cookies and disables fixed answers

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	Port            string
	LogLevel        string
	LogPretty       bool
	DBPath          string
	WordLength      int
	MaxAttempts     int
	FullWordsFile   string
	CommonWordsFile string
	JWTSecret       string
	JWTExpiresDays  int
	CookieName      string
	ClientOrigin    string
	DailySalt       string
	Env             string
}

// Production reports whether APP_ENV is "production".
func (c Config) Production() bool { return c.Env == "production" }

// Load reads a `.env` file if present (existing variables win) and then the environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		Port:            getEnv("PORT", "5175"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       getBool("LOG_PRETTY", false),
		DBPath:          getEnv("DB_PATH", "./data/app.db"),
		WordLength:      getInt("WORD_LENGTH", 5),
		MaxAttempts:     getInt("MAX_ATTEMPTS", 6),
		FullWordsFile:   os.Getenv("WORDS_FULL_FILE"),
		CommonWordsFile: os.Getenv("WORDS_COMMON_FILE"),
		JWTSecret:       getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiresDays:  getInt("JWT_EXPIRES_DAYS", 14),
		CookieName:      getEnv("COOKIE_NAME", "guessword_token"),
		ClientOrigin:    getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		DailySalt:       getEnv("DAILY_SALT", "local_dev_salt"),
		Env:             strings.ToLower(getEnv("APP_ENV", "development")),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getInt parses a positive integer, falling back to def.
func getInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil && n > 0 {
		return n
	}
	return def
}

func getBool(k string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(k)); err == nil {
		return b
	}
	return def
}
