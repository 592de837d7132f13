package models

import "time"

// Config represents application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	Server  ServerConfig
	Redis   RedisConfig
	Session SessionConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig contains the two origins the client talks to
type APIConfig struct {
	BaseURL   string        // HTTP API origin, e.g. http://localhost:8080
	WSBaseURL string        // websocket origin, e.g. ws://localhost:8080
	Timeout   time.Duration // per request timeout
}

// ServerConfig contains the local read-model HTTP surface configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig contains Redis connection configuration used for token persistence
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// SessionConfig contains the session bootstrap settings
type SessionConfig struct {
	Name               string        // key under which tokens are persisted
	AccessToken        string        // bootstrap access token
	RefreshToken       string        // bootstrap refresh token
	TokenTTL           time.Duration // persisted token expiration
	FriendRequestLimit int           // snapshot size for friend-request notifications
	NoticeCapacity     int           // transient notices kept in memory
	AutoOpenChatID     int64         // chat opened at start, 0 for none
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
