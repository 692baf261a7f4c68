package config

import (
	"os"
)

type Config struct {
	ServerPort    string
	Environment   string
	Debug         bool
	MoviesCSVPath string
	FullCSVPath   string
	SampleCSVPath string
	GroqAPIKey    string
	GroqModel     string
	GroqBaseURL   string
	OCRAPIURL     string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("PORT", "8000"),
		Environment:   getEnv("ENV", "development"),
		Debug:         getEnv("DEBUG", "false") == "true",
		MoviesCSVPath: getEnv("MOVIES_CSV_PATH", ""),
		FullCSVPath:   getEnv("FULL_CSV_PATH", "Semantic_Recent.csv"),
		SampleCSVPath: getEnv("SAMPLE_CSV_PATH", "sample_movies.csv"),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModel:     getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL:   getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		OCRAPIURL:     getEnv("OCR_API_URL", "http://localhost:8081"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
