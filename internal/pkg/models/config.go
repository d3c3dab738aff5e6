package models

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Bank     BankConfig
	Crypto   CryptoConfig
	Sync     SyncConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	SSLMode   string `json:"ssl_mode" mapstructure:"ssl_mode"`
	MaxConns  int    `json:"max_conns" mapstructure:"max_conns"`
	IdleConns int    `json:"idle_conns" mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string `json:"address" mapstructure:"address"`
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
}

// BankConfig holds the open banking provider API configuration
type BankConfig struct {
	BaseURL        string `json:"base_url" mapstructure:"base_url"`
	AuthURL        string `json:"auth_url" mapstructure:"auth_url"`
	ClientID       string `json:"client_id" mapstructure:"client_id"`
	ClientSecret   string `json:"client_secret" mapstructure:"client_secret"`
	TimeoutSeconds int    `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// CryptoConfig holds field encryption configuration
type CryptoConfig struct {
	Passphrase string `json:"passphrase" mapstructure:"passphrase"`
	Salt       string `json:"salt" mapstructure:"salt"`
	Iterations int    `json:"iterations" mapstructure:"iterations"`
}

// SyncConfig holds synchronization tuning configuration
type SyncConfig struct {
	LockTTLSeconds int `json:"lock_ttl_seconds" mapstructure:"lock_ttl_seconds"`
	CommitRetries  int `json:"commit_retries" mapstructure:"commit_retries"`
}

// APIKeyConfig holds API keys for service-to-service communication
type APIKeyConfig struct {
	SchedulerKey string `json:"scheduler_key" mapstructure:"scheduler_key"`
	AdminKey     string `json:"admin_key" mapstructure:"admin_key"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}
