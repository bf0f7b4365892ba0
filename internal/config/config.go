package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	AccessTokenSecret string
	TokenTTLMinutes   int
}

// Health monitor configuration
type HealthConfig struct {
	Enabled     bool
	IntervalSec int
}

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Auth   AuthConfig
	Health HealthConfig
}

// Default configuration values
const (
	DefaultServerPort      = "5000"
	DefaultServerHost      = ""
	DefaultMongoDB         = "employee_management"
	DefaultTokenTTLMinutes = 60
	// Health monitor defaults
	DefaultHealthEnabled     = true
	DefaultHealthIntervalSec = 60
)

// New returns a new Config populated from the environment.
// MONGO_URI wins when set; otherwise the connection string is composed from
// DB_USER and DB_PASS against a local mongod.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      mongoURI(),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
			TokenTTLMinutes:   getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMinutes),
		},
		Health: HealthConfig{
			Enabled:     getEnvBool("HEALTH_ENABLED", DefaultHealthEnabled),
			IntervalSec: getEnvInt("HEALTH_INTERVAL_SEC", DefaultHealthIntervalSec),
		},
	}
}

// Validate reports configuration that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Auth.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}
	return nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func mongoURI() string {
	if uri, exists := os.LookupEnv("MONGO_URI"); exists {
		return uri
	}
	user := getEnv("DB_USER", "")
	pass := getEnv("DB_PASS", "")
	if user != "" && pass != "" {
		return fmt.Sprintf("mongodb://%s:%s@localhost:27017/?authSource=admin", user, pass)
	}
	return "mongodb://localhost:27017"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
