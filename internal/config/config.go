package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Values with sensible development defaults (CORS
// origin, bcrypt cost) fall back to those defaults when unset; the database
// coordinates are required.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBUser     string // database username
	DBPass     string // database password (optional)
	DBHost     string // database host address
	DBPort     string // database port number
	DBName     string // database name
	BcryptCost int    // bcrypt cost used when creating credentials
	CORSOrigin string // origin allowed by the CORS middleware
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),                                // environment (dev/test/prod)
		Port:       must("APP_PORT"),                               // port to bind the HTTP server
		DBUser:     must("DB_USER"),                                // database user
		DBPass:     os.Getenv("DB_PASS"),                           // database password (empty allowed)
		DBHost:     must("DB_HOST"),                                // database host
		DBPort:     must("DB_PORT"),                                // database port
		DBName:     must("DB_NAME"),                                // database name
		BcryptCost: envInt("BCRYPT_COST", 12),                      // bcrypt cost factor
		CORSOrigin: envStr("CORS_ORIGIN", "http://localhost:3000"), // frontend origin
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envStr returns the value of an optional environment variable, or the
// given default when it is unset or empty.
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envInt is like envStr but converts the value into an integer. Malformed
// values are fatal so a typo never silently downgrades the bcrypt cost.
func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
