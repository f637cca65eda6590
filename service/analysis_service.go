package service

import (
	"context"
	"fmt"
	"log"

	"github.com/susemi/yearend-why/dto"
)

// sectionTitles are the canonical Korean titles per deduction category,
// substituted when the generator omits one.
var sectionTitles = map[string]string{
	"card":      "신용카드 등 사용액",
	"medical":   "의료비",
	"donation":  "기부금",
	"rent_loan": "월세 / 주택자금대출",
	"other":     "기타 교육비 / 보험 / 연금",
}

// AnalysisService runs the explanation instance of the pipeline: rule
// engine, prompt compilation, generation, recovery, schema validation.
type AnalysisService struct {
	gen Generator
}

// NewAnalysisService creates the explanation service.
func NewAnalysisService(gen Generator) *AnalysisService {
	return &AnalysisService{gen: gen}
}

// Analyze produces the per-category why-explanation for one request.
func (s *AnalysisService) Analyze(ctx context.Context, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	ruleCtx := BuildRuleContext(req.Income, req.Dependents, req.Conditions, req.ParsedPdf, req.ManualInput)
	log.Printf("rule context built: card_usage=%d medical_total=%d rent_met=%t",
		ruleCtx.CardTotalUsage, ruleCtx.MedicalTotal, ruleCtx.RentConditionsMet)

	prompt := BuildAnalysisPrompt(req.Income, req.Dependents, req.Conditions, req.ParsedPdf, req.ManualInput, ruleCtx)

	return generateStructured(ctx, s.gen, AnalysisSystemPrompt, prompt, mapAnalysisResult)
}

// mapAnalysisResult validates the recovered object against the explanation
// schema. Every category must be addressed to the end user, so a missing
// summary, section, or tax-tips list fails the mapping outright instead of
// being defaulted away.
func mapAnalysisResult(obj map[string]any) (*dto.AnalyzeResponse, error) {
	summaryObj, ok := obj["summary"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing summary", dto.ErrGenerationIncomplete)
	}
	summary := dto.Summary{
		Headline:  stringField(summaryObj, "headline"),
		KeyPoints: stringListField(summaryObj, "key_points", "invalid_key_points_from_model"),
	}
	if summary.Headline == "" {
		return nil, fmt.Errorf("%w: empty summary headline", dto.ErrGenerationIncomplete)
	}

	rawSections, ok := obj["sections"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing sections", dto.ErrGenerationIncomplete)
	}
	byID := make(map[string]map[string]any, len(rawSections))
	for _, raw := range rawSections {
		sec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if id := stringField(sec, "id"); id != "" {
			byID[id] = sec
		}
	}

	sections := make([]dto.Section, 0, len(dto.SectionIDs))
	for _, id := range dto.SectionIDs {
		sec, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: missing section %q", dto.ErrGenerationIncomplete, id)
		}
		detail := stringField(sec, "detail")
		if detail == "" {
			return nil, fmt.Errorf("%w: empty detail in section %q", dto.ErrGenerationIncomplete, id)
		}
		title := stringField(sec, "title")
		if title == "" {
			title = sectionTitles[id]
		}
		sections = append(sections, dto.Section{
			ID:        id,
			Title:     title,
			Highlight: stringField(sec, "highlight"),
			Detail:    detail,
			Evidence:  sec["evidence"],
			Tips:      stringListField(sec, "tips", "invalid_tips_from_model"),
		})
	}

	if _, ok := obj["tax_tips"]; !ok {
		return nil, fmt.Errorf("%w: missing tax_tips", dto.ErrGenerationIncomplete)
	}
	taxTips := stringListField(obj, "tax_tips", "invalid_tax_tips_from_model")

	return &dto.AnalyzeResponse{
		Summary:  summary,
		Sections: sections,
		TaxTips:  taxTips,
	}, nil
}
