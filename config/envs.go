package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP             string // Host IP for the server
	RESTPort           int    // Port for the REST API
	MazeWidth          int    // Default maze width (columns)
	MazeHeight         int    // Default maze height (rows)
	PlaybackIntervalMS int    // Delay between answer playback steps
	GinMode            string // Mode for the Gin framework (e.g., release, debug, test)
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
		HostIP:             getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:           getEnvAsIntWithDefault("REST_PORT", 8080),
		MazeWidth:          getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:         getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		PlaybackIntervalMS: getEnvAsIntWithDefault("PLAYBACK_INTERVAL_MS", 100),
		GinMode:            getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer
// or returns a default value if not set. A set but unparsable value is fatal.
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
