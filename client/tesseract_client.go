package client

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient OCRs page images of scanned settlement documents.
// Simplified documents mix Korean labels and Latin digits, so both language
// packs are loaded.
type TesseractClient struct {
	dataPath string
}

// NewTesseractClient creates an OCR client reading models from dataPath.
func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{dataPath: dataPath}
}

// ExtractTextFromImage runs OCR over one page image.
func (tc *TesseractClient) ExtractTextFromImage(img image.Image) (string, error) {
	tempFile, err := saveTempImage(img)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFile)

	return tc.extractText(tempFile)
}

func (tc *TesseractClient) extractText(filePath string) (string, error) {
	ocr := gosseract.NewClient()
	defer ocr.Close()

	if tc.dataPath != "" {
		ocr.SetTessdataPrefix(tc.dataPath)
	}

	if err := ocr.SetLanguage("kor", "eng"); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}

	if err := ocr.SetImage(filePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := ocr.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	return text, nil
}

// saveTempImage writes an image to a temporary PNG for the OCR engine.
func saveTempImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}

// Close performs cleanup.
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
