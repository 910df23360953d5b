package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"github.com/adrianliechti/wingman-research/pkg/personality"
)

const (
	DefaultBaseURL   = "http://localhost:5000"
	DefaultTimeout   = 5 * time.Minute
	DefaultAgentName = "no_name"

	fileName = "research.yaml"
)

type Config struct {
	// Backend base url, without the /api suffix
	BaseURL string `validate:"required,http_url"`
	// Per request timeout; uploads include server side summarization
	Timeout time.Duration `validate:"gt=0"`

	AgentName   string                  `validate:"required"`
	Personality personality.Personality `validate:"oneof=helpful formal casual"`

	LogFile    string
	WorkingDir string `validate:"required"`
}

type file struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	AgentName   string `yaml:"agent_name"`
	Personality string `yaml:"personality"`
	LogFile     string `yaml:"log_file"`
}

func Default() (*Config, error) {
	workingDir, err := os.Getwd()

	if err != nil {
		return nil, oops.Errorf("failed to get working directory: %w", err)
	}

	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load(filepath.Join(workingDir, ".env"))

	path := filepath.Join(workingDir, fileName)

	if val, ok := os.LookupEnv("RESEARCH_CONFIG"); ok {
		path = val
	}

	return Load(path, workingDir)
}

// Load reads the optional YAML file at path, applies environment overrides
// and defaults and validates the result.
func Load(path, workingDir string) (*Config, error) {
	var f file

	data, err := os.ReadFile(path)

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err == nil {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	applyEnv(&f)

	cfg := &Config{
		BaseURL:     strings.TrimRight(f.BaseURL, "/"),
		AgentName:   f.AgentName,
		Personality: personality.Personality(strings.ToLower(f.Personality)),
		LogFile:     f.LogFile,
		WorkingDir:  workingDir,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.AgentName == "" {
		cfg.AgentName = DefaultAgentName
	}

	if cfg.Personality == "" {
		cfg.Personality = personality.Default
	}

	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(os.TempDir(), "wingman-research.log")
	}

	cfg.Timeout = DefaultTimeout

	if f.Timeout != "" {
		timeout, err := time.ParseDuration(f.Timeout)

		if err != nil {
			return nil, oops.With("timeout", f.Timeout).Errorf("invalid timeout: %w", err)
		}

		cfg.Timeout = timeout
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(cfg); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return cfg, nil
}

func applyEnv(f *file) {
	if val := os.Getenv("NEXT_PUBLIC_API_BASE_URL"); val != "" {
		f.BaseURL = val
	}

	if val := os.Getenv("RESEARCH_API_URL"); val != "" {
		f.BaseURL = val
	}

	if val := os.Getenv("RESEARCH_TIMEOUT"); val != "" {
		f.Timeout = val
	}

	if val := os.Getenv("RESEARCH_AGENT_NAME"); val != "" {
		f.AgentName = val
	}

	if val := os.Getenv("RESEARCH_PERSONALITY"); val != "" {
		f.Personality = val
	}

	if val := os.Getenv("RESEARCH_LOG_FILE"); val != "" {
		f.LogFile = val
	}
}
