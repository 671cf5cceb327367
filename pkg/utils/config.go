package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Email    EmailConfig
	Gateway  GatewayConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type EmailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	OfficeAddr string
}

// GatewayConfig holds the hosted-checkout handoff settings. The gateway
// receives a signed browser POST and calls back on the return/cancel URLs.
type GatewayConfig struct {
	CheckoutURL string
	MerchantID  string
	Secret      string
	ReturnURL   string
	CancelURL   string
}

type BookingConfig struct {
	Currency string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CURRENCY", "EUR")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:       viper.GetString("SMTP_HOST"),
			Port:       viper.GetInt("SMTP_PORT"),
			User:       viper.GetString("SMTP_USER"),
			Password:   viper.GetString("SMTP_PASS"),
			From:       viper.GetString("EMAIL_FROM"),
			OfficeAddr: viper.GetString("EMAIL_OFFICE"),
		},
		Gateway: GatewayConfig{
			CheckoutURL: viper.GetString("GATEWAY_CHECKOUT_URL"),
			MerchantID:  viper.GetString("GATEWAY_MERCHANT_ID"),
			Secret:      viper.GetString("GATEWAY_SECRET"),
			ReturnURL:   viper.GetString("GATEWAY_RETURN_URL"),
			CancelURL:   viper.GetString("GATEWAY_CANCEL_URL"),
		},
		Booking: BookingConfig{
			Currency: viper.GetString("CURRENCY"),
		},
	}

	return config, nil
}
