package config

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AvatarStorageConfig struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
	LocalDir string `yaml:"local_dir"`
}

type JWTConfig struct {
	SecretKey      string `yaml:"secret_key"`
	Issuer         string `yaml:"issuer"`
	Audience       string `yaml:"audience"`
	AccessTokenTTL string `yaml:"access_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigin string `yaml:"allowed_origin"`
}

type TTL struct {
	UserCache int `yaml:"user_cache"`
}
