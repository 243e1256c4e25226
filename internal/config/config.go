package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort string
	CORSOrigin string

	DBDriver        string
	DBUrl           string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutos

	Timezone string

	LogLevel    string
	LogEncoding string

	CNPJLookupURL string
	CEPLookupURL  string
	LookupTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LookupTTL     time.Duration
}

// Load reads .env (when present), then the environment and an optional
// yaml file named by CONFIG_FILE. Environment always wins over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: .env not found, using process environment")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		CORSOrigin: v.GetString("CORS_ORIGIN"),

		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DBUrl:           v.GetString("DATABASE_URL"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifeTime: v.GetInt("DB_CONN_MAX_LIFETIME_MIN"),

		Timezone: v.GetString("TIMEZONE"),

		LogLevel:    v.GetString("LOG_LEVEL"),
		LogEncoding: v.GetString("LOG_ENCODING"),

		CNPJLookupURL: strings.TrimRight(v.GetString("CNPJ_LOOKUP_URL"), "/"),
		CEPLookupURL:  strings.TrimRight(v.GetString("CEP_LOOKUP_URL"), "/"),
		LookupTimeout: time.Duration(v.GetInt("LOOKUP_TIMEOUT_SEC")) * time.Second,

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		LookupTTL:     time.Duration(v.GetInt("LOOKUP_CACHE_TTL_MIN")) * time.Minute,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ORIGIN", "")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_URL", "data.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)

	v.SetDefault("TIMEZONE", "America/Sao_Paulo")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")

	v.SetDefault("CNPJ_LOOKUP_URL", "https://publica.cnpj.ws/cnpj")
	v.SetDefault("CEP_LOOKUP_URL", "https://viacep.com.br/ws")
	v.SetDefault("LOOKUP_TIMEOUT_SEC", 10)

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOOKUP_CACHE_TTL_MIN", 60)
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("invalid DB_DRIVER %q: expected sqlite, postgres or mysql", c.DBDriver)
	}
	if c.DBUrl == "" {
		return fmt.Errorf("invalid DB config: DATABASE_URL must not be empty")
	}
	if c.LookupTimeout <= 0 {
		c.LookupTimeout = 10 * time.Second
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
