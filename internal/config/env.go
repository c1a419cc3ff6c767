package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	AppEnv    string
	GinMode   string
	JWTSecret string
	Gateway   GatewayCredentials
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:   appAddr,
		AppEnv:    appEnv,
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret: jwtSecret,
		Gateway:   LoadGatewayCredentials(),
	}
}

// IsProduction gates how much error detail leaks into responses.
func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}
