package config // package config loads application configuration from environment variables

import (
    "log"     // log reports a malformed .env file at startup
    "os"      // os provides access to environment variables
    "strings" // strings normalises the operating mode
    "time"    // time parses the token lifetime

    "github.com/joho/godotenv" // godotenv loads a local .env file into the environment
)

// Config holds all runtime configuration values.  Every field has a default
// so the API can be started with no environment at all.  The operating mode
// defaults to unset, which logs like development but never exposes faults.
type Config struct {
    Env           string        // operating mode ("development", "production", "test" or empty)
    Port          string        // HTTP port to listen on
    JWTSecret     string        // secret used to sign session tokens
    JWTExpiresIn  time.Duration // session token lifetime
    BcryptCost    int           // bcrypt cost for seeded credentials
    AMQPURL       string        // broker URL; record-change events are disabled when empty
    AuditConsumer bool          // run the audit-log consumer in this process
    AuditLogDir   string        // directory holding audit.log
}

// Load reads an optional .env file and then the process environment.  Values
// set in the real environment take precedence over the .env file because
// godotenv never overrides variables that already exist.
func Load() Config {
    if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
        log.Printf("config: ignoring unreadable .env: %v", err)
    }
    env := envStr("APP_ENV", os.Getenv("NODE_ENV"))
    amqpURL := envStr("AMQP_URL", os.Getenv("RABBITMQ_URL"))
    return Config{
        Env:           strings.ToLower(strings.TrimSpace(env)),
        Port:          envStr("PORT", "3000"),
        JWTSecret:     envStr("JWT_SECRET", "default-secret-key"),
        JWTExpiresIn:  envDur("JWT_EXPIRES_IN", 24*time.Hour),
        BcryptCost:    envInt("BCRYPT_COST", 10),
        AMQPURL:       amqpURL,
        AuditConsumer: envBool("AUDIT_CONSUMER_ENABLED", false),
        AuditLogDir:   envStr("AUDIT_LOG_DIR", "logs"),
    }
}

// IsDevelopment reports whether internal fault messages may be exposed to
// clients.  Only an explicit development mode does.
func (c Config) IsDevelopment() bool {
    return c.Env == "development" || c.Env == "dev"
}
