// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config 服務啟動所需的所有設定，皆來自環境變數或 .env
type Config struct {
	DatabaseURL   string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	WorkerCount   int
	Port          string
	OTLPEndpoint  string
	OTLPInsecure  bool
	MigrateReset  bool
}

// Addr 回傳 Echo 監聽位址
func (c *Config) Addr() string { return ":" + c.Port }

// configPaths 供測試改寫 .env 的搜尋路徑
var configPaths = []string{"."}

// Load 讀取設定；必填欄位缺漏時直接回傳錯誤，不以預設值啟動
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("WORKER_COUNT", 1)
	v.SetDefault("PORT", "5000")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("MIGRATE_RESET", false)

	v.AutomaticEnv()

	// .env 為選用
	v.SetConfigName(".env")
	v.SetConfigType("env")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("讀取 .env 失敗: %w", err)
		}
	}

	c := &Config{
		DatabaseURL:   v.GetString("DATABASE_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		WorkerCount:   v.GetInt("WORKER_COUNT"),
		Port:          v.GetString("PORT"),
		OTLPEndpoint:  v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:  v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
		MigrateReset:  v.GetBool("MIGRATE_RESET"),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return errors.New("環境變數 DATABASE_URL 未設定")
	case c.JWTSecret == "":
		return errors.New("環境變數 JWT_SECRET 未設定")
	case c.RedisAddr == "":
		return errors.New("環境變數 REDIS_ADDR 未設定")
	case c.RedisDB < 0:
		return fmt.Errorf("無效的 REDIS_DB: %d", c.RedisDB)
	case c.WorkerCount <= 0:
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount)
	case c.Port == "":
		return errors.New("環境變數 PORT 不可為空")
	}
	return nil
}
