package config

import (
	"os"
	"strconv"
)

// Config carries everything the process reads from the environment.
// main loads a .env file first, so local runs only need a dotenv.
type Config struct {
	Port            string
	LogLevel        string
	JWTSecret       string
	AuthAPIAddress  string
	ApplicationCode string

	DB    DBConfig
	Minio MinioConfig
}

type DBConfig struct {
	Host       string
	Port       uint
	Name       string
	Username   string
	Password   string
	SSLDisable bool
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() Config {
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // default PostgreSQL port
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AuthAPIAddress:  os.Getenv("AUTH_API_ADDRESS"),
		ApplicationCode: os.Getenv("APPLICATION_CODE"),
		DB: DBConfig{
			Host:       os.Getenv("DB_HOST"),
			Port:       uint(port),
			Name:       os.Getenv("DB_NAME"),
			Username:   os.Getenv("DB_USERNAME"),
			Password:   os.Getenv("DB_PASSWORD"),
			SSLDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenv("MINIO_BUCKET", "contracts"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
