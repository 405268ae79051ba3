package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// App holds every runtime setting, all sourced from environment variables.
// A .env file is loaded in main before this is processed.
type App struct {
	// Server
	Port string `envconfig:"PORT" default:"5000"`

	// Mongo
	MongoURI      string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"kaamkarwalo"`

	// WhatsApp Cloud API
	WhatsAppToken   string `envconfig:"WHATSAPP_TOKEN"`
	WhatsAppPhoneID string `envconfig:"WHATSAPP_PHONE_ID"`
	AdminWhatsApp   string `envconfig:"ADMIN_WHATSAPP"`

	// Admin email (SMTP)
	AdminEmail     string `envconfig:"ADMIN_EMAIL"`
	AdminEmailPass string `envconfig:"ADMIN_EMAIL_PASS"`
	SMTPHost       string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
}

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	// envconfig accepts a set-but-empty variable as present.
	if c.MongoURI == "" {
		return c, errors.New("required key MONGO_URI missing value")
	}
	return c, nil
}
