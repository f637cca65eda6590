package service

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/susemi/yearend-why/dto"
)

const (
	// maxDocumentChars bounds the text handed to the generation service.
	// Longer documents are truncated silently; this is a token-budget
	// policy, not an error.
	maxDocumentChars = 15000

	// minEmbeddedTextLen below which the text layer is considered absent
	// and the document treated as a scan.
	minEmbeddedTextLen = 20
)

// OCRClient extracts text from a page image of a scanned document.
type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, error)
}

// DocumentService runs the document structuring instance of the pipeline:
// text extraction (with OCR fallback for scans), truncation, prompt
// compilation, generation, recovery, field coercion.
type DocumentService struct {
	pdfProcessor PDFProcessor
	ocrClient    OCRClient
	gen          Generator
}

// NewDocumentService creates the document service. ocrClient may be nil, in
// which case scanned documents are rejected as unreadable.
func NewDocumentService(pdfProcessor PDFProcessor, ocrClient OCRClient, gen Generator) *DocumentService {
	return &DocumentService{
		pdfProcessor: pdfProcessor,
		ocrClient:    ocrClient,
		gen:          gen,
	}
}

// ParseDocument structures one uploaded simplified settlement document into
// ParsedDocumentData plus recommended supplemental-input categories.
func (s *DocumentService) ParseDocument(ctx context.Context, fileBytes []byte) (*dto.DocumentParseResponse, error) {
	text, err := s.extractText(fileBytes)
	if err != nil {
		return nil, err
	}

	text = truncateText(text, maxDocumentChars)
	prompt := BuildExtractionPrompt(text)

	return generateStructured(ctx, s.gen, ExtractionSystemPrompt, prompt, mapDocumentResult)
}

// extractText reads the document's text layer, falling back to page-image
// OCR when the layer is missing (scanned upload).
func (s *DocumentService) extractText(fileBytes []byte) (string, error) {
	text, err := s.pdfProcessor.ExtractText(fileBytes)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minEmbeddedTextLen {
		return text, nil
	}

	if s.ocrClient == nil {
		return "", fmt.Errorf("%w: no embedded text and OCR disabled", dto.ErrDocumentUnreadable)
	}

	log.Println("document has no usable text layer, attempting image-based OCR")
	images, err := s.pdfProcessor.ExtractImages(fileBytes)
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("%w: image extraction failed: %v", dto.ErrDocumentUnreadable, err)
	}

	var combined strings.Builder
	for _, img := range images {
		pageText, ocrErr := s.ocrClient.ExtractTextFromImage(img)
		if ocrErr != nil {
			log.Printf("OCR failed for a page: %v", ocrErr)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if len(strings.TrimSpace(combined.String())) < minEmbeddedTextLen {
		return "", fmt.Errorf("%w: OCR yielded no usable text", dto.ErrDocumentUnreadable)
	}
	return combined.String(), nil
}

// mapDocumentResult coerces the recovered object into ParsedDocumentData.
// Per-field defaults apply (0, "unknown"); a single bad field never fails
// the document parse.
func mapDocumentResult(obj map[string]any) (*dto.DocumentParseResponse, error) {
	creditType := stringField(obj, "tax_credit_type")
	if !dto.ValidTaxCreditType(creditType) {
		creditType = string(dto.TaxCreditUnknown)
	}

	parsed := dto.ParsedDocumentData{
		CreditCard:               intField(obj, "credit_card"),
		DebitCard:                intField(obj, "debit_card"),
		CashReceipt:              intField(obj, "cash_receipt"),
		MedicalExpense:           intField(obj, "medical_expense"),
		SevereMedicalForDisabled: intField(obj, "severe_medical_for_disabled"),
		Insurance:                intField(obj, "insurance"),
		PensionSaving:            intField(obj, "pension_saving"),
		RetirementPension:        intField(obj, "retirement_pension"),
		DonationTotal:            intField(obj, "donation_total"),
		HousingLoanInterest:      intField(obj, "housing_loan_interest"),
		RentInPdf:                intField(obj, "rent_in_pdf"),
		TaxCreditType:            dto.TaxCreditType(creditType),
	}

	missing := stringListField(obj, "missing_fields", "invalid_missing_fields_from_llm")

	return &dto.DocumentParseResponse{
		ParsedPdf:     parsed,
		MissingFields: missing,
	}, nil
}

// truncateText caps text at max runes without splitting a character.
func truncateText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
