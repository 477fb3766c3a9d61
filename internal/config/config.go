package config

import (
	"os"
	"strconv"
)

type Config struct {
	Env                string `json:"env"`
	ServerPort         int    `json:"server_port"`
	JWTSecretKey       string `json:"jwt_secret_key"`
	JWTExpirationHours int    `json:"jwt_expiration_hours"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		// Demo default; the token service is mock auth, not a security boundary.
		jwtSecret = "dev-only-secret"
	}

	return &Config{
		Env:                os.Getenv("APP_ENV"),
		ServerPort:         serverPort,
		JWTSecretKey:       jwtSecret,
		JWTExpirationHours: jwtExpirationHours,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
