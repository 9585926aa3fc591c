package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "WEEKLY_PAPERS_CONFIG"
	openAIKeyEnv   = "OPENAI_API_KEY"
	openAIModelEnv = "OPENAI_MODEL"
	baseURLEnv     = "PAPERS_BASE_URL"
	reportDirEnv   = "REPORT_DIR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Source     SourceConfig     `yaml:"source"`
	Translator TranslatorConfig `yaml:"translator"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SourceConfig describes the listing site and how to extract entries from it.
type SourceConfig struct {
	BaseURL        string         `yaml:"baseUrl"`
	MaxPapers      int            `yaml:"maxPapers"`
	TimeoutSeconds int            `yaml:"timeoutSeconds"`
	Selectors      SelectorConfig `yaml:"selectors"`
}

// SelectorConfig isolates the structural paths into the remote pages.
// A site layout change requires an update here and nowhere else.
type SelectorConfig struct {
	Article  string `yaml:"article"`
	Heading  string `yaml:"heading"`
	Abstract string `yaml:"abstract"`
}

// Timeout resolves the per-request timeout for listing and detail pages.
func (s SourceConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// TranslatorConfig defines how to contact the OpenAI chat-completion API.
type TranslatorConfig struct {
	APIKey           string  `yaml:"apiKey"`
	Model            string  `yaml:"model"`
	SystemPrompt     string  `yaml:"systemPrompt"`
	Temperature      float32 `yaml:"temperature"`
	TimeoutSeconds   int     `yaml:"timeoutSeconds"`
	MaxAttempts      int     `yaml:"maxAttempts"`
	BaseDelaySeconds int     `yaml:"baseDelaySeconds"`
}

// Timeout resolves the per-request timeout for translation calls.
func (t TranslatorConfig) Timeout() time.Duration {
	if t.TimeoutSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// BaseDelay resolves the initial backoff delay between translation retries.
func (t TranslatorConfig) BaseDelay() time.Duration {
	if t.BaseDelaySeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(t.BaseDelaySeconds) * time.Second
}

// ReportConfig describes where the output artifact is written.
type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.Translator.APIKey = v
	}

	if v := os.Getenv(openAIModelEnv); v != "" {
		c.Translator.Model = v
	}

	if v := os.Getenv(baseURLEnv); v != "" {
		c.Source.BaseURL = v
	}

	if v := os.Getenv(reportDirEnv); v != "" {
		c.Report.Dir = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Source.BaseURL != "" {
		base.Source.BaseURL = override.Source.BaseURL
	}
	if override.Source.MaxPapers > 0 {
		base.Source.MaxPapers = override.Source.MaxPapers
	}
	if override.Source.TimeoutSeconds > 0 {
		base.Source.TimeoutSeconds = override.Source.TimeoutSeconds
	}
	if override.Source.Selectors.Article != "" {
		base.Source.Selectors.Article = override.Source.Selectors.Article
	}
	if override.Source.Selectors.Heading != "" {
		base.Source.Selectors.Heading = override.Source.Selectors.Heading
	}
	if override.Source.Selectors.Abstract != "" {
		base.Source.Selectors.Abstract = override.Source.Selectors.Abstract
	}

	if override.Translator.APIKey != "" {
		base.Translator.APIKey = override.Translator.APIKey
	}
	if override.Translator.Model != "" {
		base.Translator.Model = override.Translator.Model
	}
	if override.Translator.SystemPrompt != "" {
		base.Translator.SystemPrompt = override.Translator.SystemPrompt
	}
	if override.Translator.Temperature > 0 {
		base.Translator.Temperature = override.Translator.Temperature
	}
	if override.Translator.TimeoutSeconds > 0 {
		base.Translator.TimeoutSeconds = override.Translator.TimeoutSeconds
	}
	if override.Translator.MaxAttempts > 0 {
		base.Translator.MaxAttempts = override.Translator.MaxAttempts
	}
	if override.Translator.BaseDelaySeconds > 0 {
		base.Translator.BaseDelaySeconds = override.Translator.BaseDelaySeconds
	}

	if override.Report.Dir != "" {
		base.Report.Dir = override.Report.Dir
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Source: SourceConfig{
			BaseURL:        "https://huggingface.co",
			MaxPapers:      10,
			TimeoutSeconds: 10,
			Selectors: SelectorConfig{
				Article:  "main section article",
				Heading:  "h3 a",
				Abstract: "main section div p",
			},
		},
		Translator: TranslatorConfig{
			Model:            "gpt-4o",
			SystemPrompt:     "You are a technical AI researcher. Please translate English academic papers into Korean. Please add a line break for each sentence.",
			Temperature:      0.1,
			TimeoutSeconds:   20,
			MaxAttempts:      3,
			BaseDelaySeconds: 2,
		},
		Report:  ReportConfig{Dir: "."},
		Logging: LoggingConfig{Level: "info"},
	}
}
