package dto

import (
	"errors"
	"fmt"
)

// Pipeline failure conditions. Handlers translate these to transport status
// codes; the raw diagnostic detail stays in the server log.
var (
	// ErrDocumentUnreadable means no usable text came out of the upload.
	ErrDocumentUnreadable = errors.New("document text unreadable")

	// ErrGenerationUnavailable means the generation service could not be
	// reached, timed out, or returned an empty response.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrGenerationIncomplete means the generation output parsed but lacks
	// required substructures of the explanation schema.
	ErrGenerationIncomplete = errors.New("generation result incomplete")
)

// UnparseableError is returned when generation output survives the repair
// pass without yielding a JSON object. It carries the offending raw text for
// operator diagnosis; the text must never reach the end user.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("generation output unparseable (%d bytes)", len(e.Raw))
}

// StatusResponse is the ok/error echo for validation-only endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DocumentParseResponse is the /pdf-parse result: the structured document
// facts plus categories worth supplementing by hand.
type DocumentParseResponse struct {
	ParsedPdf     ParsedDocumentData `json:"parsed_pdf"`
	MissingFields []string           `json:"missing_fields"`
}

// Summary is the headline block of the explanation.
type Summary struct {
	Headline  string   `json:"headline"`
	KeyPoints []string `json:"key_points"`
}

// Section explains one deduction category. Evidence is free text or a small
// key/value object, whichever the generator produced.
type Section struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Highlight string   `json:"highlight"`
	Detail    string   `json:"detail"`
	Evidence  any      `json:"evidence"`
	Tips      []string `json:"tips"`
}

// SectionIDs is the fixed, ordered set of deduction categories every
// explanation must address.
var SectionIDs = []string{"card", "medical", "donation", "rent_loan", "other"}

// AnalyzeResponse is the final explanation returned to the client.
type AnalyzeResponse struct {
	Summary  Summary   `json:"summary"`
	Sections []Section `json:"sections"`
	TaxTips  []string  `json:"tax_tips"`
}
