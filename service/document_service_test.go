package service

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susemi/yearend-why/dto"
)

type fakePDFProcessor struct {
	text      string
	textErr   error
	images    []image.Image
	imagesErr error
}

func (f *fakePDFProcessor) ExtractText(_ []byte) (string, error) {
	return f.text, f.textErr
}

func (f *fakePDFProcessor) ExtractImages(_ []byte) ([]image.Image, error) {
	return f.images, f.imagesErr
}

type fakeOCRClient struct {
	text string
	err  error
}

func (f *fakeOCRClient) ExtractTextFromImage(_ image.Image) (string, error) {
	return f.text, f.err
}

const extractionJSON = `{
  "credit_card": 8000000,
  "debit_card": 2000000,
  "cash_receipt": 1000000,
  "medical_expense": 1500000,
  "severe_medical_for_disabled": 0,
  "insurance": 1200000,
  "pension_saving": 0,
  "retirement_pension": 0,
  "donation_total": 200000,
  "housing_loan_interest": 0,
  "rent_in_pdf": 0,
  "tax_credit_type": "standard",
  "missing_fields": ["rent", "housing_loan"]
}`

func TestParseDocumentHappyPath(t *testing.T) {
	pdf := &fakePDFProcessor{text: "연말정산 간소화 서비스\n신용카드 8,000,000원\n의료비 1,500,000원"}
	gen := &fakeGenerator{response: extractionJSON}
	svc := NewDocumentService(pdf, nil, gen)

	resp, err := svc.ParseDocument(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, int64(8_000_000), resp.ParsedPdf.CreditCard)
	assert.Equal(t, int64(1_500_000), resp.ParsedPdf.MedicalExpense)
	assert.Equal(t, dto.TaxCreditStandard, resp.ParsedPdf.TaxCreditType)
	assert.Equal(t, []string{"rent", "housing_loan"}, resp.MissingFields)

	assert.Contains(t, gen.lastPrompt, "[PDF_TEXT_START]")
	assert.Contains(t, gen.lastPrompt, "신용카드 8,000,000원")
	assert.Equal(t, ExtractionSystemPrompt, gen.lastSystem)
}

func TestParseDocumentTruncatesLongText(t *testing.T) {
	longText := strings.Repeat("간소화 자료 ", 5000) // far past the character cap
	pdf := &fakePDFProcessor{text: longText}
	gen := &fakeGenerator{response: extractionJSON}
	svc := NewDocumentService(pdf, nil, gen)

	_, err := svc.ParseDocument(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)

	start := strings.Index(gen.lastPrompt, "[PDF_TEXT_START]")
	end := strings.Index(gen.lastPrompt, "[PDF_TEXT_END]")
	require.True(t, start >= 0 && end > start)
	embedded := strings.TrimSpace(gen.lastPrompt[start+len("[PDF_TEXT_START]") : end])
	assert.LessOrEqual(t, len([]rune(embedded)), maxDocumentChars)
}

func TestParseDocumentOCRFallback(t *testing.T) {
	pdf := &fakePDFProcessor{
		text:   "  ", // scanned document, no text layer
		images: []image.Image{image.NewRGBA(image.Rect(0, 0, 10, 10))},
	}
	ocr := &fakeOCRClient{text: "연말정산 간소화 서비스 신용카드 사용액 8,000,000원"}
	gen := &fakeGenerator{response: extractionJSON}
	svc := NewDocumentService(pdf, ocr, gen)

	resp, err := svc.ParseDocument(context.Background(), []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, int64(8_000_000), resp.ParsedPdf.CreditCard)
	assert.Contains(t, gen.lastPrompt, "신용카드 사용액")
}

func TestParseDocumentUnreadable(t *testing.T) {
	pdf := &fakePDFProcessor{text: "", imagesErr: errors.New("no images")}
	svc := NewDocumentService(pdf, &fakeOCRClient{}, &fakeGenerator{response: extractionJSON})

	_, err := svc.ParseDocument(context.Background(), []byte("junk"))
	assert.ErrorIs(t, err, dto.ErrDocumentUnreadable)
}

func TestParseDocumentUnreadableWithoutOCR(t *testing.T) {
	pdf := &fakePDFProcessor{text: ""}
	svc := NewDocumentService(pdf, nil, &fakeGenerator{response: extractionJSON})

	_, err := svc.ParseDocument(context.Background(), []byte("junk"))
	assert.ErrorIs(t, err, dto.ErrDocumentUnreadable)
}

func TestMapDocumentResultDefaults(t *testing.T) {
	obj := map[string]any{
		"credit_card":     nil,            // null amount
		"debit_card":      "not a number", // junk string
		"cash_receipt":    "1,000,000",    // quoted amount
		"medical_expense": 1500000.0,
		"tax_credit_type": "special-ish",        // not a known type
		"missing_fields":  "rent",               // scalar where a list belongs
	}

	resp, err := mapDocumentResult(obj)
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.ParsedPdf.CreditCard)
	assert.Equal(t, int64(0), resp.ParsedPdf.DebitCard)
	assert.Equal(t, int64(1_000_000), resp.ParsedPdf.CashReceipt)
	assert.Equal(t, int64(1_500_000), resp.ParsedPdf.MedicalExpense)
	assert.Equal(t, dto.TaxCreditUnknown, resp.ParsedPdf.TaxCreditType)
	assert.Equal(t, []string{"invalid_missing_fields_from_llm"}, resp.MissingFields)

	// Fields the object never mentions default to zero.
	assert.Equal(t, int64(0), resp.ParsedPdf.DonationTotal)
	assert.Equal(t, int64(0), resp.ParsedPdf.RentInPdf)
}

func TestMapDocumentResultMissingFieldsAbsent(t *testing.T) {
	resp, err := mapDocumentResult(map[string]any{"credit_card": 100.0})
	require.NoError(t, err)
	assert.Empty(t, resp.MissingFields)
	assert.NotNil(t, resp.MissingFields)
}
