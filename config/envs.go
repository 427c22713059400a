package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth      int    // Width of every generated maze
	MazeHeight     int    // Height of every generated maze
	Samples        int    // Number of mazes per analysis
	Workers        int    // Number of parallel sample workers
	Seed           int64  // Seed of the random source; 0 seeds from the clock
	HostIP         string // Host IP for the server
	RESTPort       int    // Port for the REST API
	GinMode        string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr      string // Address of the Redis server backing the job queue
	RedisPassword  string // Password for the Redis server
	RedisDB        int    // Redis logical database
	QueuePrefix    string // Key prefix of the analysis job queue
	QueuePollMS    int    // Interval between job queue polls in milliseconds
	QueueTTL       int    // Seconds an idle job queue key lives in Redis
	DBHost         string // Hostname or IP address for the database
	DBPort         int    // Port number for the database
	DBUser         string // Username for the database
	DBPassword     string // Password for the database
	DBName         string // Name of the database
	JWTSecret      string // Secret key for JWT signing
	JWTIssuer      string // Issuer claim for JWTs
	MaxSyncSamples int    // Largest analysis the API runs inline
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:      getEnvAsIntWithDefault("MAZE_WIDTH", 11),
		MazeHeight:     getEnvAsIntWithDefault("MAZE_HEIGHT", 11),
		Samples:        getEnvAsIntWithDefault("MAZE_SAMPLES", 2000),
		Workers:        getEnvAsIntWithDefault("MAZE_WORKERS", 1),
		Seed:           getEnvAsInt64WithDefault("MAZE_SEED", 0),
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsIntWithDefault("REDIS_DB", 0),
		QueuePrefix:    getEnvWithDefault("QUEUE_PREFIX", "mazestats"),
		QueuePollMS:    getEnvAsIntWithDefault("QUEUE_POLL_MS", 500),
		QueueTTL:       getEnvAsIntWithDefault("QUEUE_TTL_SECONDS", 86400),
		DBHost:         getEnvWithDefault("DB_HOST", ""),
		DBPort:         getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:         getEnvWithDefault("DB_USER", ""),
		DBPassword:     getEnvWithDefault("DB_PASS", ""),
		DBName:         getEnvWithDefault("DB_NAME", "mazestats"),
		JWTSecret:      getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:      getEnvWithDefault("JWT_ISSUER", "vinom-mazestats"),
		MaxSyncSamples: getEnvAsIntWithDefault("MAX_SYNC_SAMPLES", 20000),
	}
}

// ValidateServer reports the settings the API server needs but the CLI does not.
func (c Config) ValidateServer() error {
	var errs []error
	if c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is not set"))
	}
	if c.DBHost == "" {
		errs = append(errs, errors.New("DB_HOST is not set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.RESTPort <= 0 {
		errs = append(errs, fmt.Errorf("REST_PORT must be positive, got %d", c.RESTPort))
	}
	if c.QueuePollMS <= 0 {
		errs = append(errs, fmt.Errorf("QUEUE_POLL_MS must be positive, got %d", c.QueuePollMS))
	}
	return errors.Join(errs...)
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or logs a fatal error if it cannot be parsed.
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

// getEnvAsInt64WithDefault is getEnvAsIntWithDefault for 64-bit values such as seeds.
func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
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
