package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// SMTP transport configuration
	SMTPHost   string
	SMTPPort   string
	SMTPSecure bool // implicit TLS (port 465) when true, STARTTLS/plain otherwise
	SMTPUser   string
	SMTPPass   string
	// Destinatário das notificações de lead
	ContactEmail string
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Load .env file (efetivo apenas em local; ignorado em produção se não existir)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "4000"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPSecure:   getEnvBool("SMTP_SECURE", true),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		ContactEmail: getEnv("CONTACT_EMAIL", ""),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:8080")),
	}

	// Avisos de configuração: o processo sobe mesmo sem SMTP, mas o envio falhará
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		log.Println("WARNING: variáveis SMTP faltando. Verifique SMTP_HOST, SMTP_USER e SMTP_PASS no .env")
	}
	if cfg.ContactEmail == "" {
		log.Println("WARNING: CONTACT_EMAIL não configurado. Leads não terão destinatário.")
	}

	return cfg, nil
}

// getEnv treats an empty value as unset, like the site deployments do.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
