package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config junta toda la configuración del servicio.
// Todo viene de env vars con fallbacks hardcodeados para dev.
type Config struct {
	Port string

	// Si DBDSN viene seteado, manda sobre los campos sueltos.
	// Si no hay ni DBDSN ni DBHost, el servicio corre con storage en memoria.
	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	SessionSecret string

	CORSOrigins []string
	StaticDir   string

	// Cuenta admin que se siembra solo en modo memoria (dev).
	AdminEmail    string
	AdminPassword string
}

// Load lee .env (si existe) y arma la configuración.
func Load() *Config {
	// .env es opcional; en prod las vars vienen del entorno.
	_ = godotenv.Load()

	return &Config{
		Port: getenv("PORT", "8080"),

		DBDSN:      getenv("DB_DSN", ""),
		DBHost:     getenv("DB_HOST", ""),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "petcareplus"),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		SessionSecret: getenv("SESSION_SECRET", "petcareplus-dev-secret"),

		CORSOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:3000")),
		StaticDir: getenv("STATIC_DIR", "public"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@petcareplus.local"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

// PostgresDSN arma el DSN, o "" si no hay base configurada.
func (c *Config) PostgresDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.DBHost == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
