package config

import (
	"os"
	"strconv"
)

const (
	defaultPort          = "8080"
	defaultStoreName     = "My Store"
	defaultMaxQtyPerItem = 10
)

// Config carries every process-wide setting. It is built once in main
// and passed explicitly into constructors; nothing reads the
// environment after startup.
type Config struct {
	Port string

	// DatabaseURL takes precedence over the discrete DB fields.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// StoreName appears in the header of every order message.
	StoreName string
	// WhatsAppPhone is the store number the deep link points at. An
	// empty value still produces a link.
	WhatsAppPhone string
	// DefaultProductImage is used for snapshot items whose product has
	// no image.
	DefaultProductImage string
	// MaxQtyPerItem caps the quantity of a single cart line.
	MaxQtyPerItem int

	// AdminAPIKey protects the /admin routes (X-API-KEY header).
	AdminAPIKey string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:                getEnv("PORT", defaultPort),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		StoreName:           getEnv("STORE_NAME", defaultStoreName),
		WhatsAppPhone:       os.Getenv("WHATSAPP_PHONE"),
		DefaultProductImage: os.Getenv("DEFAULT_PRODUCT_IMAGE"),
		MaxQtyPerItem:       getEnvInt("MAX_QTY_PER_ITEM", defaultMaxQtyPerItem),
		AdminAPIKey:         os.Getenv("ADMIN_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
