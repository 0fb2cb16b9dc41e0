package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config is the process configuration, read from the environment (with an
// optional .env file) and overridable by command-line flags.
type Config struct {
	HTTPAddr string
	LogLevel string

	FirestoreConfig  FirestoreConfig
	CloudinaryConfig CloudinaryConfig
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadPreset string
}

// Load reads the configuration. Flags win over environment variables.
func Load(args []string) *Config {
	godotenv.Load(".env")

	conf := &Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),
		FirestoreConfig: FirestoreConfig{
			ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
			CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		},
		CloudinaryConfig: CloudinaryConfig{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
			UploadPreset: envOr("CLOUDINARY_UPLOAD_PRESET", "taskflow_preset"),
		},
	}

	fs := pflag.NewFlagSet("catalog-backoffice", pflag.ContinueOnError)
	addr := fs.String("addr", conf.HTTPAddr, "HTTP listen address")
	logLevel := fs.String("log-level", conf.LogLevel, "log level")
	if err := fs.Parse(args); err == nil {
		conf.HTTPAddr = *addr
		conf.LogLevel = *logLevel
	}

	return conf
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
