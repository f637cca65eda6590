package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	OpenAIAPIKey      string
	AnalysisModel     string
	ExtractionModel   string
	GenerationTimeout time.Duration
	TesseractDataPath string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	analysisModel := os.Getenv("OPENAI_ANALYSIS_MODEL")
	if analysisModel == "" {
		analysisModel = "gpt-4o-mini"
	}

	extractionModel := os.Getenv("OPENAI_EXTRACTION_MODEL")
	if extractionModel == "" {
		extractionModel = "gpt-4.1-mini"
	}

	timeout := 60 * time.Second
	if v := os.Getenv("GENERATION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		ServerPort:        serverPort,
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnalysisModel:     analysisModel,
		ExtractionModel:   extractionModel,
		GenerationTimeout: timeout,
		TesseractDataPath: os.Getenv("TESSDATA_PREFIX"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
