package config

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig      `yaml:"databaseConfig"`
	RedisConfig    RedisConfig         `yaml:"redisConfig"`
	ServerAddr     string              `yaml:"serverAddr"`
	AvatarStorage  AvatarStorageConfig `yaml:"avatarStorage"`
	JWT            JWTConfig           `yaml:"jwt"`
	CORS           CORSConfig          `yaml:"cors"`
	TTL            TTL                 `yaml:"TTL"`
}

func LoadConfig(path string) (*AppConfig, error) {
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		path = envPath
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseConfig.DSN = dsn
	}
	if key := os.Getenv("JWT_SECRET_KEY"); key != "" {
		cfg.JWT.SecretKey = key
	}

	return &cfg, nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
