package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                      string
	WhatsAppToken             string
	PhoneNumberID             string
	WhatsAppBusinessAccountID string
	GraphAPIVersion           string

	// SQLite is used when DBHost is empty, PostgreSQL otherwise.
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	// Event publishing is disabled when AMQPUrl is empty.
	AMQPUrl      string
	AMQPExchange string

	LogLevel string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:                      getEnv("PORT", "8080"),
		WhatsAppToken:             getEnv("WHATSAPP_TOKEN", ""),
		PhoneNumberID:             getEnv("PHONE_NUMBER_ID", ""),
		WhatsAppBusinessAccountID: getEnv("WABA_ID", ""),
		GraphAPIVersion:           getEnv("GRAPH_API_VERSION", "v19.0"),
		DBPath:                    getEnv("DB_PATH", "./templates.db"),
		DBHost:                    getEnv("DB_HOST", ""),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", ""),
		DBName:                    getEnv("DB_NAME", "template_gateway"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBSSLMode:                 getEnv("DB_SSLMODE", "disable"),
		AMQPUrl:                   getEnv("AMQP_URL", ""),
		AMQPExchange:              getEnv("AMQP_EXCHANGE", "messaging.events"),
		LogLevel:                  getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
