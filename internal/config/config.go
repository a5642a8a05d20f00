package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	BCV        BCV        `mapstructure:",squash"`
	Paralelo   Paralelo   `mapstructure:",squash"`
	Finance    Finance    `mapstructure:",squash"`
	RateSync   RateSync   `mapstructure:",squash"`
	TargetSync TargetSync `mapstructure:",squash"`
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
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// AdminKeyHash es el hash bcrypt de la clave administrativa que
	// protege la resincronización forzada y la tasa manual
	AdminKeyHash string `mapstructure:"admin_key_hash"`
}

// BCV es la fuente de la tasa oficial (scraping de la página del banco)
type BCV struct {
	URL            string `mapstructure:"bcv_url"`
	TimeoutSeconds int    `mapstructure:"bcv_timeout_seconds"`
}

// Paralelo es la fuente de la tasa de mercado (API de precios JSON)
type Paralelo struct {
	URL            string `mapstructure:"paralelo_url"`
	TimeoutSeconds int    `mapstructure:"paralelo_timeout_seconds"`
}

// Finance agrupa los parámetros del núcleo financiero
type Finance struct {
	// SurchargePct es el porcentaje de recargo IGTF sobre el subtotal
	// cuando hay al menos un pago en efectivo en divisa (3 = 3%)
	SurchargePct float64 `mapstructure:"finance_surcharge_pct"`
	// DesiredMargin es la fracción de margen deseado para la meta diaria;
	// un valor >= 1 es un error de configuración y aborta el cálculo
	DesiredMargin float64 `mapstructure:"finance_desired_margin"`
	// DefaultOficialRate y DefaultParaleloRate son las constantes que se
	// devuelven cuando el libro de tasas está vacío
	DefaultOficialRate  float64 `mapstructure:"finance_default_oficial_rate"`
	DefaultParaleloRate float64 `mapstructure:"finance_default_paralelo_rate"`
	// RateCacheTTLMinutes es la vigencia del caché de tasas en memoria
	RateCacheTTLMinutes int `mapstructure:"finance_rate_cache_ttl_minutes"`
	// InvoiceRateKind selecciona qué tasa usa la facturación: "oficial" o
	// "paralelo"
	InvoiceRateKind string `mapstructure:"finance_invoice_rate_kind"`
}

type RateSync struct {
	CronSchedule string `mapstructure:"rate_sync_cron"`
	Enabled      bool   `mapstructure:"rate_sync_enabled"`
}

type TargetSync struct {
	CronSchedule string `mapstructure:"target_sync_cron"`
	Enabled      bool   `mapstructure:"target_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/finanzas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("ADMIN_KEY_HASH", "")

	viper.SetDefault("BCV_URL", "https://www.bcv.org.ve")
	viper.SetDefault("BCV_TIMEOUT_SECONDS", 30)

	viper.SetDefault("PARALELO_URL", "https://pydolarve.org/api/v1/dollar")
	viper.SetDefault("PARALELO_TIMEOUT_SECONDS", 30)

	viper.SetDefault("FINANCE_SURCHARGE_PCT", 3.0)
	viper.SetDefault("FINANCE_DESIRED_MARGIN", 0.30)
	viper.SetDefault("FINANCE_DEFAULT_OFICIAL_RATE", 36.50)
	viper.SetDefault("FINANCE_DEFAULT_PARALELO_RATE", 38.00)
	viper.SetDefault("FINANCE_RATE_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("FINANCE_INVOICE_RATE_KIND", "oficial")

	viper.SetDefault("RATE_SYNC_CRON", "0 8 * * *") // todos los días a las 8h
	viper.SetDefault("RATE_SYNC_ENABLED", true)

	viper.SetDefault("TARGET_SYNC_CRON", "30 0 * * *") // recalcula el día anterior
	viper.SetDefault("TARGET_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile intenta cargar el .env desde las ubicaciones conocidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No fue posible obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No fue posible cargar el archivo .env de ninguna ubicación conocida")
}
