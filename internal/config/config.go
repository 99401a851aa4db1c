package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging" validate:"required"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	Supplier   SupplierConfig   `mapstructure:"supplier" validate:"required"`
	PDF        PDFConfig        `mapstructure:"pdf" validate:"required"`
	Submission SubmissionConfig `mapstructure:"submission"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// SupplierConfig is the business printed in the header of every copy.
// It is fixed per deployment and never taken from a request.
type SupplierConfig struct {
	Name     string          `mapstructure:"name" validate:"required"`
	Address  string          `mapstructure:"address" validate:"required"`
	Contacts []ContactConfig `mapstructure:"contacts" validate:"max=2,dive"`
	GSTIN    string          `mapstructure:"gstin"`
	Bank     BankConfig      `mapstructure:"bank"`
}

type ContactConfig struct {
	Label  string `mapstructure:"label"`
	Number string `mapstructure:"number" validate:"required"`
}

type BankConfig struct {
	BankName  string `mapstructure:"bank_name"`
	Branch    string `mapstructure:"branch"`
	AccountNo string `mapstructure:"account_no"`
	IFSCCode  string `mapstructure:"ifsc_code"`
}

type PDFConfig struct {
	DefaultTemplate types.TemplateVariant `mapstructure:"default_template" validate:"required"`
	FontFamily      string                `mapstructure:"font_family" validate:"required,oneof=Helvetica Times Courier Arial"`
	Compress        bool                  `mapstructure:"compress"`
}

type SubmissionConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	URL        string        `mapstructure:"url" validate:"omitempty,url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

// CacheConfig controls the in-memory cache of rendered documents
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	TTL             time.Duration `mapstructure:"ttl" validate:"gte=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"gte=0"`
}

func NewConfig() (*Configuration, error) {
	// a local .env is optional; real deployments inject the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/invoicer")

	// Set up environment variables support
	v.SetEnvPrefix("INVOICER")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every scalar key so AutomaticEnv can override it
// even when no config file is present.
func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("deployment.mode", d.Deployment.Mode)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("sentry.enabled", d.Sentry.Enabled)
	v.SetDefault("sentry.dsn", d.Sentry.DSN)
	v.SetDefault("sentry.environment", d.Sentry.Environment)
	v.SetDefault("sentry.sample_rate", d.Sentry.SampleRate)
	v.SetDefault("supplier.name", d.Supplier.Name)
	v.SetDefault("supplier.address", d.Supplier.Address)
	v.SetDefault("supplier.contacts", d.Supplier.Contacts)
	v.SetDefault("supplier.gstin", d.Supplier.GSTIN)
	v.SetDefault("supplier.bank.bank_name", d.Supplier.Bank.BankName)
	v.SetDefault("supplier.bank.branch", d.Supplier.Bank.Branch)
	v.SetDefault("supplier.bank.account_no", d.Supplier.Bank.AccountNo)
	v.SetDefault("supplier.bank.ifsc_code", d.Supplier.Bank.IFSCCode)
	v.SetDefault("pdf.default_template", d.PDF.DefaultTemplate)
	v.SetDefault("pdf.font_family", d.PDF.FontFamily)
	v.SetDefault("pdf.compress", d.PDF.Compress)
	v.SetDefault("submission.enabled", d.Submission.Enabled)
	v.SetDefault("submission.url", d.Submission.URL)
	v.SetDefault("submission.timeout", d.Submission.Timeout)
	v.SetDefault("submission.max_retries", d.Submission.MaxRetries)
	v.SetDefault("rate_limit.enabled", d.RateLimit.Enabled)
	v.SetDefault("rate_limit.requests_per_second", d.RateLimit.RequestsPerSecond)
	v.SetDefault("rate_limit.burst", d.RateLimit.Burst)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.PDF.DefaultTemplate.Validate()
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Sentry:     SentryConfig{SampleRate: 1.0},
		Supplier: SupplierConfig{
			Name:    "ANMOL ENTERPRISE",
			Address: "78/1 Christopher Road, Kolkata : 700046",
			Contacts: []ContactConfig{
				{Label: "ANIKET", Number: "8583043989"},
				{Label: "ALOK", Number: "9331271486"},
			},
			Bank: BankConfig{
				BankName:  "HDFC BANK",
				Branch:    "CHRISTOPHER ROAD",
				AccountNo: "50200069668726",
				IFSCCode:  "HDFC0000092",
			},
		},
		PDF: PDFConfig{
			DefaultTemplate: types.TemplateVariantHSN,
			FontFamily:      "Times",
			Compress:        true,
		},
		Submission: SubmissionConfig{
			URL:        "http://localhost:5000/api/invoice",
			Timeout:    10 * time.Second,
			MaxRetries: 2,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
	}
}
