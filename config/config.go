package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Auth         Auth
	Redis        Redis
	SMTP         SMTP
	Scheduler    Scheduler
	Log          Log
	ExportsDir   string
	GeminiApiKey string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

type Auth struct {
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

// Redis is optional; an empty Addr selects in-process stores.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// SMTP is optional; an empty Host selects the logging mailer.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLS      bool
}

type Scheduler struct {
	Timezone          string
	DailyReminderCron string
	MonthlyReportCron string
	JobTimeout        time.Duration
}

type Log struct {
	Level  string
	Format string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SQLitePath = viper.GetString("DATABASE_SQLITE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTL = viper.GetDuration("JWT_TTL")
	config.Auth.AdminEmail = viper.GetString("ADMIN_EMAIL")
	config.Auth.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.SMTP.Host = viper.GetString("SMTP_HOST")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")
	config.SMTP.Username = viper.GetString("SMTP_USERNAME")
	config.SMTP.Password = viper.GetString("SMTP_PASSWORD")
	config.SMTP.From = viper.GetString("SMTP_FROM")
	config.SMTP.TLS = viper.GetBool("SMTP_TLS")

	config.Scheduler.Timezone = viper.GetString("SCHEDULER_TIMEZONE")
	config.Scheduler.DailyReminderCron = viper.GetString("DAILY_REMINDER_CRON")
	config.Scheduler.MonthlyReportCron = viper.GetString("MONTHLY_REPORT_CRON")
	config.Scheduler.JobTimeout = viper.GetDuration("JOB_TIMEOUT")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Format = viper.GetString("LOG_FORMAT")

	config.ExportsDir = viper.GetString("EXPORTS_DIR")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Bool("redis", config.Redis.Addr != "").
		Bool("smtp", config.SMTP.Host != "").
		Str("exports_dir", config.ExportsDir).
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SQLITE_PATH", "db.sqlite3")
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("ADMIN_EMAIL", "admin@quizmaster.com")
	viper.SetDefault("ADMIN_PASSWORD", "adminpass")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "noreply@quizmaster.com")
	viper.SetDefault("SMTP_TLS", true)
	viper.SetDefault("SCHEDULER_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("DAILY_REMINDER_CRON", "0 20 * * *")
	viper.SetDefault("MONTHLY_REPORT_CRON", "0 3 1 * *")
	viper.SetDefault("JOB_TIMEOUT", "30m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("EXPORTS_DIR", "exports")
}
