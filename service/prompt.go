package service

import (
	"fmt"
	"strings"

	"github.com/susemi/yearend-why/dto"
	"github.com/susemi/yearend-why/utils"
)

// AnalysisSystemPrompt pins the generator's role for the why-analysis
// instance. All arithmetic is done by the rule engine; the generator only
// explains.
const AnalysisSystemPrompt = `당신은 대한민국 2024년 기준 연말정산 Why 분석 전문가입니다.
항상 JSON만 출력해야 하며, 계산은 하지 않고 규칙엔진 결과만 사용합니다.`

// ExtractionSystemPrompt pins the generator's role for the document
// structuring instance.
const ExtractionSystemPrompt = `너는 2024년 기준 대한민국 근로소득 연말정산 전문가이자 세무사다.
너의 역할은 '연말정산 간소화 서비스 PDF 내용'을 읽고,
세법 기준에 맞게 공제 항목을 구조화하고, 누락되기 쉬운 항목을 추천하는 것이다.

규칙:
- 한국 2024년 소득·세액공제 규정을 기준으로 판단한다.
- PDF 텍스트에 금액이 명시되지 않았으면 해당 항목은 0 으로 둔다.
- 애매하면 0 또는 "unknown" 으로 처리하고, missing_fields 에 이유를 반영한다.
- 금액 단위는 모두 "원" 기준 정수(int)로 맞춘다.
- 출력은 반드시 JSON 하나만, 주석/설명 없이 반환한다.`

// BuildAnalysisPrompt renders the fixed why-analysis instruction template.
// Every number is pre-computed and pre-formatted here; the template forbids
// the generator from deriving any figure itself.
func BuildAnalysisPrompt(
	income dto.Income,
	dependents dto.Dependents,
	conditions dto.Conditions,
	parsedPdf dto.ParsedDocumentData,
	manual dto.ManualInput,
	ruleCtx dto.RuleContext,
) string {
	rentInPdf := parsedPdf.RentInPdf

	return fmt.Sprintf(`당신은 2024년 한국 근로소득 연말정산 전문가입니다.
사용자의 모든 입력을 바탕으로 공제 항목별 'Why 분석'을 JSON으로 설명하세요.

아래 규칙을 **절대 어기지 마세요**:
- 반드시 JSON만 출력하세요.
- highlight 문장은 1~2줄 핵심 요약
- detail 문장은 **반드시 최소 5줄 이상** 작성하세요.
- detail에는 기본 설명 외에도 아래 내용을 반드시 포함하세요:
    1) 해당 공제 제도의 구조 및 법적 근거 요약
    2) 사용자가 왜 기준을 충족하지 못했는지 단계별 분석
    3) 데이터가 없더라도 사례 기반 설명 (예: "일반적으로 OO 공제를 받으려면…")
    4) 기준 충족 시 어떤 혜택이 발생하는지 시뮬레이션 설명
    5) 사용자가 향후 같은 항목에서 공제를 받기 위해 해야 할 행동 제안

- 데이터가 부족한 경우:
    → "데이터 없음"이라 끝내지 말고 반드시 공제 제도의 원리 + 실제 사례를 덧붙여 설명하세요.

- evidence 필드는 간단한 문자열 또는 근거 요약 객체로 작성하세요.
  (예: "의료비 총합이 기준금액보다 낮아 공제 요건 미충족")

- tips 항목은 반드시 2~4개 작성하며,
  구체적인 행동을 제시해야 함:
    예: "내년에는 의료비 지출 영수증을 잘 보관하세요."
        "현금영수증도 신용카드 공제 항목에 포함됩니다."
        "기부금은 공제율이 높으니 20만원 이하라도 효과적입니다."

- 절대로 내부 변수명을 그대로 노출하지 마세요.
- 숫자는 주어진 값을 그대로 사용하고 직접 계산하지 마세요.
- JSON 외 텍스트 금지.

--- 사용자 데이터 ---

【소득 정보】
총급여: %s
비과세: %s
상여금: %s

【인적공제】
배우자: %s
부양가족 수: %d
장애인: %d
경로우대: %d
한부모: %s
부녀자: %s

【조건】
세대주: %s
무주택: %s
임대차계약: %s
대출 여부: %s
자녀 교육비: %s
본인 교육비: %s
중소기업 재직: %s

【PDF 파싱】
신용카드: %s
체크카드: %s
현금영수증: %s
의료비: %s
기부금: %s
PDF 월세: %s
간편 공제 타입: %s

【수기 입력】
추가 기부금: %s
수기 월세: %s
가족 의료비: %s
안경/콘택트렌즈: %s
산후조리원: %s

【규칙 엔진 결과】
카드 총 사용액: %s
카드 25%% 기준: %s
카드 기준 충족: %s

의료비 총합: %s
의료비 3%% 기준: %s
의료비 기준 충족: %s

월세 요건 충족: %s
PDF 월세 금액: %s

---

### JSON OUTPUT FORMAT

{
  "summary": {
    "headline": "",
    "key_points": []
  },
  "sections": [
    {"id": "card", "title": "신용카드 등 사용액", "highlight": "", "detail": "", "evidence": null, "tips": []},
    {"id": "medical", "title": "의료비", "highlight": "", "detail": "", "evidence": null, "tips": []},
    {"id": "donation", "title": "기부금", "highlight": "", "detail": "", "evidence": null, "tips": []},
    {"id": "rent_loan", "title": "월세 / 주택자금대출", "highlight": "", "detail": "", "evidence": null, "tips": []},
    {"id": "other", "title": "기타 교육비 / 보험 / 연금", "highlight": "", "detail": "", "evidence": null, "tips": []}
  ],
  "tax_tips": []
}`,
		utils.FormatWon(income.TotalSalary),
		utils.FormatWon(income.NonTaxable),
		utils.FormatWon(income.Bonus),
		utils.FormatBoolValue(dependents.HasSpouse),
		dependents.DependentsCount,
		dependents.DisabledCount,
		dependents.SeniorCount,
		utils.FormatBoolValue(dependents.SingleParent),
		utils.FormatBoolValue(dependents.FemaleHouseholder),
		utils.FormatBoolValue(conditions.Householder),
		utils.FormatBoolValue(conditions.NoHouse),
		utils.FormatBoolValue(conditions.LeaseContract),
		utils.FormatBoolValue(conditions.HasLoan),
		utils.FormatBoolValue(conditions.ChildEducation),
		utils.FormatBoolValue(conditions.SelfEducation),
		utils.FormatBoolValue(conditions.MidSmallCompanyWorker),
		utils.FormatWon(parsedPdf.CreditCard),
		utils.FormatWon(parsedPdf.DebitCard),
		utils.FormatWon(parsedPdf.CashReceipt),
		utils.FormatWon(parsedPdf.MedicalExpense),
		utils.FormatWon(parsedPdf.DonationTotal),
		utils.FormatWon(rentInPdf),
		string(ruleCtx.TaxCreditType),
		utils.FormatMoney(manual.DonationExtra),
		formatRent(manual.Rent),
		formatFamilyMedical(manual.FamilyMedicalExpenses),
		utils.FormatMoney(manual.GlassesContactsExpense),
		utils.FormatMoney(manual.ChildbirthCareExpense),
		utils.FormatWon(ruleCtx.CardTotalUsage),
		utils.FormatMoney(ruleCtx.CardThreshold25),
		utils.FormatBool(ruleCtx.CardMeetsThreshold),
		utils.FormatWon(ruleCtx.MedicalTotal),
		utils.FormatMoney(ruleCtx.MedicalThreshold3),
		utils.FormatBool(ruleCtx.MedicalMeetsThreshold),
		utils.FormatBoolValue(ruleCtx.RentConditionsMet),
		utils.FormatWon(rentInPdf),
	)
}

// BuildExtractionPrompt renders the document structuring template around the
// already-truncated document text.
func BuildExtractionPrompt(documentText string) string {
	return fmt.Sprintf(`다음은 근로소득자의 연말정산 간소화 PDF 전체 텍스트다.

[PDF_TEXT_START]
%s
[PDF_TEXT_END]

이 텍스트를 읽고 아래 스키마에 맞는 JSON 을 만들어라.

스키마(키 이름 고정):
{
  "credit_card": int,
  "debit_card": int,
  "cash_receipt": int,
  "medical_expense": int,
  "severe_medical_for_disabled": int,
  "insurance": int,
  "pension_saving": int,
  "retirement_pension": int,
  "donation_total": int,
  "housing_loan_interest": int,
  "rent_in_pdf": int,
  "tax_credit_type": "standard" | "special" | "unknown",
  "missing_fields": []
}

missing_fields 에는 사용자가 간소화 PDF 외에 따로 챙기면 좋은 항목의
키워드를 나열하라. 예시: "donation", "housing_loan", "rent",
"disabled_medical", "private_education".

주의:
- 반드시 위 JSON 형태만 출력하고, 한국어 설명은 넣지 마라.
- 숫자는 정수만 사용하라. None 이나 문자열 "0" 은 쓰지 마라.`, documentText)
}

// formatRent renders the manual rent entry as prompt text.
func formatRent(r *dto.RentInfo) string {
	if r == nil || !r.HasRent {
		return "없음"
	}
	monthly := utils.FormatMoney(r.MonthlyRent)
	if r.MonthsPaid != nil {
		return fmt.Sprintf("월 %s × %d개월", monthly, *r.MonthsPaid)
	}
	return fmt.Sprintf("월 %s", monthly)
}

// formatFamilyMedical renders the itemized family medical list as prompt
// text.
func formatFamilyMedical(items []dto.FamilyMedicalItem) string {
	if len(items) == 0 {
		return "없음"
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s %s", item.Name, utils.FormatWon(item.Amount)))
	}
	return strings.Join(parts, ", ")
}
