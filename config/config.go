package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type OpenAI struct {
	OpenAIAPIKey        string        `env:"OPENAI_API_KEY,required"`
	OpenAIModel         string        `yaml:"openai_model" env:"OPENAI_MODEL" env-default:"llama3-70b-8192"`
	OpenAIBaseURL       string        `yaml:"open_ai_base_url" env:"OPENAI_BASE_URL"`
	ModelTemperature    float32       `yaml:"model_temperature" env:"MODEL_TEMPERATURE" env-default:"0.7"`
	CodeTemperature     float32       `yaml:"code_temperature" env:"CODE_TEMPERATURE" env-default:"0.3"`
	DocumentTemperature float32       `yaml:"document_temperature" env:"DOCUMENT_TEMPERATURE" env-default:"0.2"`
	RequestTimeout      time.Duration `yaml:"request_timeout" env:"OPENAI_REQUEST_TIMEOUT" env-default:"10s"`
	HistoryTokenBudget  int           `yaml:"history_token_budget" env:"HISTORY_TOKEN_BUDGET" env-default:"3500"`
}

type Memory struct {
	// MaxTurns bounds retained history per session. One turn is one
	// user message plus one bot message.
	MaxTurns        int    `yaml:"max_turns" env:"MEMORY_MAX_TURNS" env-default:"10"`
	MaxContextTurns int    `yaml:"max_context_turns" env:"MEMORY_MAX_CONTEXT_TURNS" env-default:"5"`
	RedisEndpoint   string `yaml:"redis_endpoint" env:"REDIS_ENDPOINT"`
}

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type Chat struct {
	Persona            string `yaml:"persona" env:"CHAT_PERSONA" env-default:"default"`
	MaxAttachmentBytes int    `yaml:"max_attachment_bytes" env:"MAX_ATTACHMENT_BYTES" env-default:"8192"`
}

type Feedback struct {
	Path      string `yaml:"path" env:"FEEDBACK_LOG_PATH" env-default:"./data/feedback.ndjson"`
	QueueSize int    `yaml:"queue_size" env:"FEEDBACK_QUEUE_SIZE" env-default:"256"`
}

type Config struct {
	OpenAI   OpenAI   `yaml:"openai"`
	Memory   Memory   `yaml:"memory"`
	Server   Server   `yaml:"server"`
	Chat     Chat     `yaml:"chat"`
	Feedback Feedback `yaml:"feedback"`
}

func LoadConfig(cfgPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(cfgPath); err == nil {
		if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
