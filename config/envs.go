package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisAddr        string // host:port of the redis server backing playback
	RedisPassword    string
	RedisDB          int
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
	PlaybackBatch    int           // Events handed out per playback batch
	PlaybackTick     time.Duration // Suggested client delay between batches
	PlaybackTTL      time.Duration // Lifetime of a queued playback
	StrictEndpoints  bool          // Reject searches with a missing end or unknown start
	LegacyWrapPair   bool          // Cross-paired wraparound thresholds
	EmitChecked      bool          // Emit Checked events during expansion
	MaxGridDimension int           // Upper bound on grid rows and cols
}

// Envs holds the configuration once Load has run.
var Envs Config

// Load reads the .env file if present and populates Envs from the
// environment. Missing required variables are fatal.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	Envs = Config{
		DBHost:           mustGetEnv("DB_HOST"),
		DBPort:           mustGetEnvAsInt("DB_PORT"),
		DBUser:           mustGetEnv("DB_USER"),
		DBPassword:       mustGetEnv("DB_PASS"),
		DBName:           mustGetEnv("DB_NAME"),
		RedisAddr:        mustGetEnv("REDIS_ADDR"),
		RedisPassword:    getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:          getEnvAsIntWithDefault("REDIS_DB", 0),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        mustGetEnv("JWT_ISSUER"),
		HostIP:           mustGetEnv("HOST_IP"),
		RESTPort:         mustGetEnvAsInt("REST_PORT"),
		PlaybackBatch:    getEnvAsIntWithDefault("PLAYBACK_BATCH_SIZE", 25),
		PlaybackTick:     time.Duration(getEnvAsIntWithDefault("PLAYBACK_TICK_MS", 20)) * time.Millisecond,
		PlaybackTTL:      time.Duration(getEnvAsIntWithDefault("PLAYBACK_TTL_SECONDS", 600)) * time.Second,
		StrictEndpoints:  getEnvAsBoolWithDefault("STRICT_ENDPOINTS", true),
		LegacyWrapPair:   getEnvAsBoolWithDefault("LEGACY_WRAP_PAIRING", false),
		EmitChecked:      getEnvAsBoolWithDefault("EMIT_CHECKED", false),
		MaxGridDimension: getEnvAsIntWithDefault("MAX_GRID_DIMENSION", 200),
	}
	return Envs
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
