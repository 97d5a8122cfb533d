package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// DataConfig points at the three master CSV files. A missing file is not an
// error; the loader yields an empty table for it.
type DataConfig struct {
	Dir             string
	DemographicFile string
	BiometricFile   string
	EnrolmentFile   string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SnapshotTTL time.Duration
}

type LogConfig struct {
	Level string
}

type PipelineConfig struct {
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine, env vars alone are enough
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Data: DataConfig{
			Dir:             viper.GetString("DATA_DIR"),
			DemographicFile: viper.GetString("DATA_DEMOGRAPHIC_FILE"),
			BiometricFile:   viper.GetString("DATA_BIOMETRIC_FILE"),
			EnrolmentFile:   viper.GetString("DATA_ENROLMENT_FILE"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SnapshotTTL: time.Duration(viper.GetInt("SNAPSHOT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Pipeline: PipelineConfig{
			OutputPath: viper.GetString("PIPELINE_OUTPUT_PATH"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data"
	}
	if cfg.Data.DemographicFile == "" {
		cfg.Data.DemographicFile = "master_demographic_data.csv"
	}
	if cfg.Data.BiometricFile == "" {
		cfg.Data.BiometricFile = "master_biometric_data.csv"
	}
	if cfg.Data.EnrolmentFile == "" {
		cfg.Data.EnrolmentFile = "master_enrolment_data.csv"
	}
	if cfg.Cache.SnapshotTTL == 0 {
		cfg.Cache.SnapshotTTL = time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Pipeline.OutputPath == "" {
		cfg.Pipeline.OutputPath = "./data/sankhya_data.json"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// DatabaseEnabled reports whether Postgres persistence is configured. The
// service runs fine without it; run history is simply unavailable.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// RedisEnabled reports whether the snapshot cache is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}
