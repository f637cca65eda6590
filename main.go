package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/susemi/yearend-why/client"
	"github.com/susemi/yearend-why/config"
	"github.com/susemi/yearend-why/handler"
	"github.com/susemi/yearend-why/service"
)

func main() {
	cfg := config.LoadConfig()

	// One generation client per pipeline instance: the extraction call runs
	// cooler than the analysis call because its output is pure data.
	analysisClient, err := client.NewOpenAIClient(client.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.AnalysisModel,
		Temperature: 0.3,
		MaxTokens:   2000,
		Timeout:     cfg.GenerationTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create analysis client: %v", err)
	}

	extractionClient, err := client.NewOpenAIClient(client.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.ExtractionModel,
		Temperature: 0.1,
		MaxTokens:   1000,
		Timeout:     cfg.GenerationTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create extraction client: %v", err)
	}

	// OCR fallback for scanned uploads.
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	pdfProcessor := service.NewPDFProcessor()

	documentService := service.NewDocumentService(pdfProcessor, tesseractClient, extractionClient)
	analysisService := service.NewAnalysisService(analysisClient)

	inputHandler := handler.NewInputHandler()
	documentHandler := handler.NewDocumentHandler(documentService, cfg.MaxFileSize)
	analyzeHandler := handler.NewAnalyzeHandler(analysisService)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "yearend-why-backend",
		})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/user-input", inputHandler.SaveUserInput)
		api.POST("/manual-input", inputHandler.SaveManualInput)
		api.POST("/pdf-parse", documentHandler.ParseDocument)
		api.POST("/analyze", analyzeHandler.Analyze)
	}

	log.Printf("Starting Year-End Why Analysis Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
