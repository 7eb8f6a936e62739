package config

import (
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey string
	Model  string
}

func GetOpenAIConfig() *OpenAIConfig {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &OpenAIConfig{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  model,
	}
}

func (c *OpenAIConfig) NewClient() *openai.Client {
	return openai.NewClient(c.APIKey)
}
