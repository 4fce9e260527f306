package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrMissingSecretKey se devuelve cuando SECRET_KEY no esta definida al arrancar.
var ErrMissingSecretKey = errors.New("config: SECRET_KEY es obligatoria")

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Operator  Operator `mapstructure:",squash"`
	Cors      Cors     `mapstructure:",squash"`
	DBHealth  DBHealth `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Version  string `mapstructure:"app_version"`
	LogLevel string `mapstructure:"log_level"`
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

type Auth struct {
	SigningMethod string        `mapstructure:"auth_signing_method"`
	TokenTTL      time.Duration `mapstructure:"auth_token_ttl"`
	// ProtectWrites extiende el guard de operador a POST, PUT y DELETE de /ventas.
	ProtectWrites bool `mapstructure:"auth_protect_writes"`
}

// Operator es la unica credencial autorizada a operar la API.
type Operator struct {
	Email    string `mapstructure:"operator_email"`
	Password string `mapstructure:"operator_password"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DBHealth struct {
	CronSchedule string `mapstructure:"db_health_cron"`
	Enabled      bool   `mapstructure:"db_health_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_NAME", "Aplicacion de Ventas")
	viper.SetDefault("APP_VERSION", "1.0.1")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ventas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Sin valor por defecto: la clave de firma tiene que venir del entorno
	viper.SetDefault("SECRET_KEY", "")

	viper.SetDefault("AUTH_SIGNING_METHOD", "HS256")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_PROTECT_WRITES", false)

	viper.SetDefault("OPERATOR_EMAIL", "kuky@lanegra.cl")
	viper.SetDefault("OPERATOR_PASSWORD", "123456")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DB_HEALTH_CRON", "* * * * *") // Cada minuto
	viper.SetDefault("DB_HEALTH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variables de entorno (viper no pudo leer .env): ", err)
	} else {
		logrus.Info("Archivo .env leido por viper")
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

	if config.SecretKey == "" {
		return nil, ErrMissingSecretKey
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

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde: ", location)
			return
		}
	}

	logrus.Debug("No se encontro archivo .env, se usan solo variables de entorno")
}
