package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Payment  PaymentConfig
	Search   SearchConfig
	Booking  BookingConfig
	Broker   BrokerConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	EntryPath string
	Timezone  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// AdminConfig holds the single dashboard credential pair.
type AdminConfig struct {
	Email    string
	Password string
}

type PaymentConfig struct {
	KeyID                  string
	Currency               string
	MerchantName           string
	ThemeColor             string
	Image                  string
	CheckoutTimeoutMinutes int
}

type SearchConfig struct {
	CacheTTLSeconds int
}

type BookingConfig struct {
	SeatCapacity         int
	ConfirmationTTLHours int
}

type BrokerConfig struct {
	AMQPURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "skyyatra")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ENTRY_PATH", "/")
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ADMIN_EMAIL", "admin@skyyatra.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("PAYMENT_KEY_ID", "rzp_test_1DP5mmOlF5G5ag")
	viper.SetDefault("PAYMENT_CURRENCY", "INR")
	viper.SetDefault("PAYMENT_MERCHANT", "SkyYatra")
	viper.SetDefault("PAYMENT_THEME_COLOR", "#2563eb")
	viper.SetDefault("PAYMENT_IMAGE", "/placeholder.svg")
	viper.SetDefault("CHECKOUT_TIMEOUT_MINUTES", 15)
	viper.SetDefault("SEARCH_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("SEAT_CAPACITY", 180)
	viper.SetDefault("CONFIRMATION_TTL_HOURS", 24)

	// .env is optional, the environment wins either way
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
			EntryPath: viper.GetString("ENTRY_PATH"),
			Timezone:  viper.GetString("TIMEZONE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Payment: PaymentConfig{
			KeyID:                  viper.GetString("PAYMENT_KEY_ID"),
			Currency:               viper.GetString("PAYMENT_CURRENCY"),
			MerchantName:           viper.GetString("PAYMENT_MERCHANT"),
			ThemeColor:             viper.GetString("PAYMENT_THEME_COLOR"),
			Image:                  viper.GetString("PAYMENT_IMAGE"),
			CheckoutTimeoutMinutes: viper.GetInt("CHECKOUT_TIMEOUT_MINUTES"),
		},
		Search: SearchConfig{
			CacheTTLSeconds: viper.GetInt("SEARCH_CACHE_TTL_SECONDS"),
		},
		Booking: BookingConfig{
			SeatCapacity:         viper.GetInt("SEAT_CAPACITY"),
			ConfirmationTTLHours: viper.GetInt("CONFIRMATION_TTL_HOURS"),
		},
		Broker: BrokerConfig{
			AMQPURL: viper.GetString("AMQP_URL"),
		},
	}

	return config, nil
}
