package config

// SentimentConfig represents the provider-independent sentiment settings
type SentimentConfig struct {
	Provider     string
	Timeout      string
	MaxTextChars int
}

// HuggingFaceConfig represents the configuration for the HuggingFace
// inference API provider
type HuggingFaceConfig struct {
	APIKey   string
	ModelID  string
	Endpoint string
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
}

// ServerConfig represents the frontend settings
type ServerConfig struct {
	FrontendType   string
	ListenAddress  string
	MaxUploadBytes int64
	StaticDir      string
}

// GetSentiment returns the sentiment configuration
func (c *Config) GetSentiment() SentimentConfig {
	return SentimentConfig{
		Provider:     c.GetString("sentiment.provider"),
		Timeout:      c.GetString("sentiment.timeout"),
		MaxTextChars: c.GetInt("sentiment.max_text_chars"),
	}
}

// GetHuggingFace returns the HuggingFace configuration
func (c *Config) GetHuggingFace() HuggingFaceConfig {
	return HuggingFaceConfig{
		APIKey:   c.GetString("huggingface.api_key"),
		ModelID:  c.GetString("huggingface.model_id"),
		Endpoint: c.GetString("huggingface.endpoint"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
	}
}

// GetServer returns the frontend configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		FrontendType:   c.GetString("server.frontend_type"),
		ListenAddress:  c.GetString("server.listen_address"),
		MaxUploadBytes: c.GetInt64("server.max_upload_bytes"),
		StaticDir:      c.GetString("server.static_dir"),
	}
}
