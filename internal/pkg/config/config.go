package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration for the chatsync daemon.
// In the local environment a .env file at configPath is loaded first.
// A YAML file (configPath with a .yaml/.yml extension) is read by viper;
// environment variables always win over file values.
func InitConfig(configPath string) *models.Config {
	v := newViper()

	if strings.HasSuffix(configPath, ".yaml") || strings.HasSuffix(configPath, ".yml") {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	} else if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", "chatsync")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)

	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("ws.base_url", "ws://localhost:8080")
	v.SetDefault("api.timeout", 10*time.Second)

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 7070)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 4)

	v.SetDefault("session.name", "default")
	v.SetDefault("session.token_ttl", 7*24*time.Hour)
	v.SetDefault("session.friend_request_limit", constants.DefaultFriendRequestLimit)
	v.SetDefault("session.notice_capacity", constants.DefaultNoticeCapacity)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file_path", "")
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	configs.App.Name = v.GetString("app.name")
	configs.App.Environment = v.GetString("app.env")
	configs.App.Debug = v.GetBool("app.debug")
	configs.App.Version = v.GetString("app.version")

	configs.API.BaseURL = strings.TrimSuffix(v.GetString("api.base_url"), "/")
	configs.API.WSBaseURL = strings.TrimSuffix(v.GetString("ws.base_url"), "/")
	configs.API.Timeout = v.GetDuration("api.timeout")

	configs.Server.Host = v.GetString("server.host")
	configs.Server.Port = v.GetInt("server.port")

	configs.Redis.Enabled = v.GetBool("redis.enabled")
	configs.Redis.Host = v.GetString("redis.host")
	configs.Redis.Port = v.GetInt("redis.port")
	configs.Redis.Password = v.GetString("redis.password")
	configs.Redis.DB = v.GetInt("redis.db")
	configs.Redis.PoolSize = v.GetInt("redis.pool_size")

	configs.Session.Name = v.GetString("session.name")
	configs.Session.AccessToken = v.GetString("session.access_token")
	configs.Session.RefreshToken = v.GetString("session.refresh_token")
	configs.Session.TokenTTL = v.GetDuration("session.token_ttl")
	configs.Session.FriendRequestLimit = v.GetInt("session.friend_request_limit")
	configs.Session.NoticeCapacity = v.GetInt("session.notice_capacity")
	configs.Session.AutoOpenChatID = v.GetInt64("session.auto_open_chat_id")

	configs.Logger.Level = v.GetString("log.level")
	configs.Logger.FilePath = v.GetString("log.file_path")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
