package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Auth      AuthConfig
	Mail      MailConfig
	Drive     DriveConfig
	Freshdesk FreshdeskConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// AuthConfig credenciales estáticas y URLs del frontend.
type AuthConfig struct {
	StaticAPIKey string // x-api-key de callers de confianza (bot)
	FrontendBase string // base del frontend para links de reset/onboarding
	AdminEmails  []string
}

// MailConfig credenciales OAuth2 del relay de Gmail.
type MailConfig struct {
	User         string // cuenta remitente
	ClientID     string
	ClientSecret string
	RefreshToken string
	SMTPHost     string
	SMTPPort     int
}

// DriveConfig credenciales OAuth2 y carpeta raíz del proxy de Drive.
type DriveConfig struct {
	ClientID       string
	ClientSecret   string
	RefreshToken   string
	ParentFolderID string
}

// FreshdeskConfig credenciales del helpdesk externo.
type FreshdeskConfig struct {
	Domain string // base URL de la API, ej. https://empresa.freshdesk.com/api/v2
	APIKey string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}

	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "siges-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "appsiges"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "siges-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Auth: AuthConfig{
			StaticAPIKey: getString(v, "BACKEND_STATIC_API_KEY", ""),
			FrontendBase: strings.TrimRight(getString(v, "FRONTEND_BASE_URL", "http://localhost:5173"), "/"),
			AdminEmails:  splitList(getString(v, "ADMIN_NOTIFICATION_EMAILS", "")),
		},
		Mail: MailConfig{
			User:         getString(v, "GMAIL_USER", ""),
			ClientID:     getString(v, "GMAIL_CLIENT_ID", ""),
			ClientSecret: getString(v, "GMAIL_CLIENT_SECRET", ""),
			RefreshToken: getString(v, "GMAIL_REFRESH_TOKEN", ""),
			SMTPHost:     getString(v, "SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getInt(v, "SMTP_PORT", 587),
		},
		Drive: DriveConfig{
			ClientID:       getString(v, "GOOGLE_DRIVE_CLIENT_ID", ""),
			ClientSecret:   getString(v, "GOOGLE_DRIVE_CLIENT_SECRET", ""),
			RefreshToken:   getString(v, "GOOGLE_DRIVE_REFRESH_TOKEN", ""),
			ParentFolderID: getString(v, "GOOGLE_DRIVE_PARENT_FOLDER_ID", ""),
		},
		Freshdesk: FreshdeskConfig{
			Domain: strings.TrimRight(getString(v, "FRESHDESK_DOMAIN", ""), "/"),
			APIKey: getString(v, "FRESHDESK_API_KEY", ""),
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
