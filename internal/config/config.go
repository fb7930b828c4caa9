package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	ContactBackendEmailJS  = "emailjs"
	ContactBackendFormPost = "formpost"
	ContactBackendDiscord  = "discord"
)

type Config struct {
	Port                    string        `mapstructure:"PORT"`
	DatabasePath            string        `mapstructure:"DATABASE_PATH"`
	StaticDir               string        `mapstructure:"STATIC_DIR"`
	ClientSecret            string        `mapstructure:"CLIENT_SECRET"`
	LocationsPath           string        `mapstructure:"LOCATIONS_PATH"`
	ProtectedPages          []string      `mapstructure:"PROTECTED_PAGES"`
	LoginRedirectDelay      time.Duration `mapstructure:"LOGIN_REDIRECT_DELAY"`
	ContactBackend          string        `mapstructure:"CONTACT_BACKEND"`
	EmailJSEndpoint         string        `mapstructure:"EMAILJS_ENDPOINT"`
	EmailJSPublicKey        string        `mapstructure:"EMAILJS_PUBLIC_KEY"`
	EmailJSServiceID        string        `mapstructure:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID       string        `mapstructure:"EMAILJS_TEMPLATE_ID"`
	FormPostEndpoint        string        `mapstructure:"FORMPOST_ENDPOINT"`
	DiscordBotToken         string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordContactChannelID string        `mapstructure:"DISCORD_CONTACT_CHANNEL_ID"`
	EnableCORS              bool          `mapstructure:"ENABLE_CORS"`
	AllowedOrigins          []string      `mapstructure:"ALLOWED_ORIGINS"`
	LogLevel                string        `mapstructure:"LOG_LEVEL"`
	ChromeIdleTTL           time.Duration `mapstructure:"CHROME_IDLE_TTL"`
	ChromeMaxClients        int           `mapstructure:"CHROME_MAX_CLIENTS"`
}

// LoadConfig reads the configuration from defaults and the environment.
func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "trips.db")
	viper.SetDefault("STATIC_DIR", "./static")
	viper.SetDefault("PROTECTED_PAGES", []string{"destinations.html", "gallery.html", "contacts.html", "edit-profile.html"})
	viper.SetDefault("LOGIN_REDIRECT_DELAY", time.Second)
	viper.SetDefault("CONTACT_BACKEND", ContactBackendEmailJS)
	viper.SetDefault("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	viper.SetDefault("EMAILJS_PUBLIC_KEY", "q3_xN54dd37s7rGn1")
	viper.SetDefault("EMAILJS_SERVICE_ID", "service_t9bdrid")
	viper.SetDefault("EMAILJS_TEMPLATE_ID", "service_t9bdrid")
	viper.SetDefault("FORMPOST_ENDPOINT", "https://formspree.io/f/YOUR_FORMSPLEE_ENDPOINT")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://127.0.0.1:8080"})
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CHROME_IDLE_TTL", 30*time.Minute)
	viper.SetDefault("CHROME_MAX_CLIENTS", 10000)

	viper.BindEnv("CLIENT_SECRET")
	viper.BindEnv("LOCATIONS_PATH")
	viper.BindEnv("CONTACT_BACKEND")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_CONTACT_CHANNEL_ID")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("PROTECTED_PAGES")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

// Validate checks that the settings the selected components depend on are present.
func (c *Config) Validate() error {
	if c.ClientSecret == "" {
		return fmt.Errorf("CLIENT_SECRET is required")
	}

	switch c.ContactBackend {
	case ContactBackendEmailJS:
		if c.EmailJSEndpoint == "" || c.EmailJSPublicKey == "" || c.EmailJSServiceID == "" || c.EmailJSTemplateID == "" {
			return fmt.Errorf("emailjs contact backend requires EMAILJS_ENDPOINT, EMAILJS_PUBLIC_KEY, EMAILJS_SERVICE_ID and EMAILJS_TEMPLATE_ID")
		}
	case ContactBackendFormPost:
		if c.FormPostEndpoint == "" {
			return fmt.Errorf("formpost contact backend requires FORMPOST_ENDPOINT")
		}
	case ContactBackendDiscord:
		if c.DiscordBotToken == "" || c.DiscordContactChannelID == "" {
			return fmt.Errorf("discord contact backend requires DISCORD_BOT_TOKEN and DISCORD_CONTACT_CHANNEL_ID")
		}
	default:
		return fmt.Errorf("unknown CONTACT_BACKEND %q", c.ContactBackend)
	}

	return nil
}
