// config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Postgres      PostgresConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Admin         AdminConfiguration
	Cache         CacheConfiguration
	Tunnel        TunnelConfiguration
	DoH           DoHConfiguration
	Geo           GeoConfiguration
	Sub           SubConfiguration
	Fallback      FallbackConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// PostgresConfiguration stores data for the subscriber record store
type PostgresConfiguration struct {
	DSN string
}

// RedisConfiguration stores data for the decision cache connection
type RedisConfiguration struct {
	Addr     string
	Password string
	DB       int
}

// ElasticsearchConfiguration stores data for the audit trail backend
type ElasticsearchConfiguration struct {
	URL string
}

// AdminConfiguration stores the admin API credential
type AdminConfiguration struct {
	Key string
}

// CacheConfiguration stores the decision cache TTL policy
type CacheConfiguration struct {
	NegativeTTL string
	MinTTL      string
}

// TunnelConfiguration stores the tunnel collaborator settings
type TunnelConfiguration struct {
	Backend string
}

// DoHConfiguration stores the DNS relay upstream
type DoHConfiguration struct {
	Upstream string
}

// GeoConfiguration stores the geolocation lookup endpoint
type GeoConfiguration struct {
	Endpoint string
	ProxyIP  string
}

// SubConfiguration stores the public identity used in rendered configs
type SubConfiguration struct {
	Host string
}

// FallbackConfiguration stores the disguise target for unmatched requests
type FallbackConfiguration struct {
	Domain string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("postgres.dsn", "host=localhost user=gateway dbname=gateway sslmode=disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("cache.negativeTTL", "1h")
	viper.SetDefault("cache.minTTL", "1m")
	viper.SetDefault("doh.upstream", "https://1.1.1.1/dns-query")
	viper.SetDefault("geo.endpoint", "http://ip-api.com/json")
	viper.SetDefault("fallback.domain", "www.google.com")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	return validate()
}

// validate rejects a configuration the gateway cannot safely start with.
// The admin key has no default on purpose: without one the admin API
// would be open to anyone.
func validate() error {
	if viper.GetString("admin.key") == "" {
		return fmt.Errorf("admin.key is required (set ADMIN_KEY or admin.key)")
	}
	if viper.GetString("tunnel.backend") == "" {
		return fmt.Errorf("tunnel.backend is required")
	}
	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
