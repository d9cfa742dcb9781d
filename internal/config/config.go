package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
	HighlightExpiration HighlightExpiration `mapstructure:",squash"`
	Settings            Settings            `mapstructure:",squash"`
	Migrations          Migrations          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Redis struct {
	Enabled  bool   `mapstructure:"redis_enabled"`
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type HighlightExpiration struct {
	CronSchedule string        `mapstructure:"highlight_expiration_cron"`
	Enabled      bool          `mapstructure:"highlight_expiration_enabled"`
	LockTTL      time.Duration `mapstructure:"highlight_expiration_lock_ttl"`
	Bulk         bool          `mapstructure:"highlight_expiration_bulk"`
}

type Settings struct {
	CacheTTL time.Duration `mapstructure:"settings_cache_ttl"`
}

type Migrations struct {
	AutoRun bool `mapstructure:"migrations_autorun"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/guia_local?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Expiração dos destaques
	viper.SetDefault("HIGHLIGHT_EXPIRATION_CRON", "5 0 * * *")    // Todos os dias às 00h05
	viper.SetDefault("HIGHLIGHT_EXPIRATION_ENABLED", true)        // Habilitar expiração automática
	viper.SetDefault("HIGHLIGHT_EXPIRATION_LOCK_TTL", "5m")       // Tempo máximo de posse do lock
	viper.SetDefault("HIGHLIGHT_EXPIRATION_BULK", false)          // Usar a procedure expire_old_highlights

	viper.SetDefault("SETTINGS_CACHE_TTL", "1m")
	viper.SetDefault("MIGRATIONS_AUTORUN", false)

	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere os valores que impedem o serviço de subir
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("config: AUTH_SECRET é obrigatório")
	}
	if c.HighlightExpiration.Enabled && c.HighlightExpiration.CronSchedule == "" {
		return fmt.Errorf("config: HIGHLIGHT_EXPIRATION_CRON é obrigatório com a expiração habilitada")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: REDIS_ADDR é obrigatório com o Redis habilitado")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: APP_TIMEZONE inválido: %w", err)
	}
	return nil
}

// Location é o fuso usado para calcular o dia corrente dos destaques
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
