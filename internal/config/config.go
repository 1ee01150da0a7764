package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	TokenDuration time.Duration `yaml:"token_duration"`
	DatabasePath  string        `yaml:"database_path"`
	UploadDir     string        `yaml:"upload_dir"`
	Engine        EngineConfig  `yaml:"engine"`
	Ollama        OllamaConfig  `yaml:"ollama"`
	Mail          MailConfig    `yaml:"mail"`
}

// EngineConfig selects the models behind the language oracles and the
// embedding provider.
type EngineConfig struct {
	ChatModel  string        `yaml:"chat_model"`
	EmbedModel string        `yaml:"embed_model"`
	Timeout    time.Duration `yaml:"timeout"`
}

type OllamaConfig struct {
	BaseURL                 string        `yaml:"base_url"`
	Timeout                 time.Duration `yaml:"timeout"`
	Retries                 int           `yaml:"retries"`
	Backoff                 time.Duration `yaml:"backoff"`
	CircuitFailureThreshold int           `yaml:"circuit_failure_threshold"`
	CircuitReset            time.Duration `yaml:"circuit_reset"`
}

// MailConfig configures the invitation sender. An empty APIKey means sends
// fail closed.
type MailConfig struct {
	APIKey      string `yaml:"api_key"`
	From        string `yaml:"from"`
	BookingLink string `yaml:"booking_link"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("INTAKE_ADDR", ":8080"),
		JWTSecret:     getEnv("INTAKE_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		TokenDuration: 1 * time.Hour,
		DatabasePath:  getEnv("INTAKE_DATABASE_PATH", "applications.db"),
		UploadDir:     getEnv("INTAKE_UPLOAD_DIR", "uploads"),
		Engine: EngineConfig{
			ChatModel:  getEnv("INTAKE_CHAT_MODEL", "llama3"),
			EmbedModel: getEnv("INTAKE_EMBED_MODEL", "nomic-embed-text"),
			Timeout:    20 * time.Second,
		},
		Ollama: OllamaConfig{
			BaseURL:                 getEnv("INTAKE_OLLAMA_URL", "http://localhost:11434"),
			Timeout:                 30 * time.Second,
			Retries:                 3,
			Backoff:                 500 * time.Millisecond,
			CircuitFailureThreshold: 5,
			CircuitReset:            30 * time.Second,
		},
		Mail: MailConfig{
			APIKey:      getEnv("RESEND_API_KEY", ""),
			From:        getEnv("INTAKE_MAIL_FROM", "Intake <onboarding@resend.dev>"),
			BookingLink: getEnv("INTAKE_BOOKING_LINK", "https://interview-slot-test.youcanbook.me/"),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
