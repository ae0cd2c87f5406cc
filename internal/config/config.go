package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "collabriq-backend/internal/util/env"
	"collabriq-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

const (
	BlobStoreLocal = "local"
	BlobStoreS3    = "s3"
)

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"`

	HTTPPort   string `env:"HTTP_PORT"    envDefault:"4010"`
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:4010"`

	JwtSecret string `env:"JWT_SECRET"`

	// SMTP mailer
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT"     envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// Blob storage for file contents
	BlobStore   string `env:"BLOB_STORE" envDefault:"local"`
	DataFolder  string
	TempFolder  string
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`

	// Payment gateway
	RazorpayKeyID     string `env:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `env:"RAZORPAY_KEY_SECRET"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	env.DataFolder = filepath.Join(backendRoot, "collabriq-data", "files")
	env.TempFolder = filepath.Join(backendRoot, "collabriq-data", "temp")

	if env.IsTesting {
		// Tests run against an in-memory database and a temp blob folder,
		// no .env is required.
		env.DatabaseDsn = "file::memory:?cache=shared"
		env.EnvMode = env_utils.EnvModeDevelopment
		env.JwtSecret = "test-secret"
		env.BlobStore = BlobStoreLocal
		env.DataFolder = filepath.Join(os.TempDir(), "collabriq-test-files")
		env.TempFolder = filepath.Join(os.TempDir(), "collabriq-test-temp")
		env.AppBaseURL = "http://localhost:4010"
		return
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.JwtSecret == "" {
		log.Error("JWT_SECRET is empty")
		os.Exit(1)
	}

	if env.EnvMode == "" {
		log.Error("ENV_MODE is empty")
		os.Exit(1)
	}
	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.BlobStore != BlobStoreLocal && env.BlobStore != BlobStoreS3 {
		log.Error("BLOB_STORE is invalid", "store", env.BlobStore)
		os.Exit(1)
	}

	if env.BlobStore == BlobStoreS3 {
		if env.S3Endpoint == "" || env.S3AccessKey == "" || env.S3SecretKey == "" ||
			env.S3Bucket == "" {
			log.Error("S3 blob store selected but S3_* variables are incomplete")
			os.Exit(1)
		}
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
