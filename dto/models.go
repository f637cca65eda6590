package dto

// TaxCreditType classifies which credit scheme the simplified document shows.
type TaxCreditType string

const (
	TaxCreditStandard TaxCreditType = "standard"
	TaxCreditSpecial  TaxCreditType = "special"
	TaxCreditUnknown  TaxCreditType = "unknown"
)

// ValidTaxCreditType reports whether s is one of the known credit types.
func ValidTaxCreditType(s string) bool {
	switch TaxCreditType(s) {
	case TaxCreditStandard, TaxCreditSpecial, TaxCreditUnknown:
		return true
	}
	return false
}

// Income holds the salary figures the user enters up front.
// Amounts are integer won.
type Income struct {
	TotalSalary int64 `json:"total_salary" binding:"required"`
	NonTaxable  int64 `json:"non_taxable"`
	Bonus       int64 `json:"bonus"`
}

// Dependents describes household composition for personal deductions.
type Dependents struct {
	HasSpouse         bool `json:"has_spouse"`
	DependentsCount   int  `json:"dependents_count"`
	DisabledCount     int  `json:"disabled_count"`
	SeniorCount       int  `json:"senior_count"` // age 70+
	SingleParent      bool `json:"single_parent"`
	FemaleHouseholder bool `json:"female_householder"`
}

// Conditions is the fixed set of yes/no eligibility questions.
type Conditions struct {
	Householder           bool `json:"householder"`
	NoHouse               bool `json:"no_house"`
	LeaseContract         bool `json:"lease_contract"`
	HasLoan               bool `json:"has_loan"`
	ChildEducation        bool `json:"child_education"`
	SelfEducation         bool `json:"self_education"`
	MidSmallCompanyWorker bool `json:"mid_small_company_worker"`
}

// ParsedDocumentData is the structured result extracted from a simplified
// year-end settlement document. Amounts default to 0 when the document does
// not show them.
type ParsedDocumentData struct {
	CreditCard               int64         `json:"credit_card"`
	DebitCard                int64         `json:"debit_card"`
	CashReceipt              int64         `json:"cash_receipt"`
	MedicalExpense           int64         `json:"medical_expense"`
	SevereMedicalForDisabled int64         `json:"severe_medical_for_disabled"`
	Insurance                int64         `json:"insurance"`
	PensionSaving            int64         `json:"pension_saving"`
	RetirementPension        int64         `json:"retirement_pension"`
	DonationTotal            int64         `json:"donation_total"`
	HousingLoanInterest      int64         `json:"housing_loan_interest"`
	RentInPdf                int64         `json:"rent_in_pdf"`
	TaxCreditType            TaxCreditType `json:"tax_credit_type"`
}

// RentInfo is the manually entered rent arrangement when the simplified
// document does not carry it.
type RentInfo struct {
	HasRent     bool   `json:"has_rent"`
	MonthlyRent *int64 `json:"monthly_rent,omitempty"`
	MonthsPaid  *int   `json:"months_paid,omitempty"`
}

// HousingLoanInfo is the manually entered housing loan repayment.
type HousingLoanInfo struct {
	HasLoan      bool   `json:"has_loan"`
	InterestPaid *int64 `json:"interest_paid,omitempty"`
}

// FamilyMedicalItem is one family member's medical spending missing from the
// simplified document.
type FamilyMedicalItem struct {
	Name   string `json:"name" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// ManualInput covers deduction figures the simplified document tends to
// omit. Every field is optional; an absent field carries no monetary weight.
type ManualInput struct {
	DonationExtra                *int64              `json:"donation_extra,omitempty"`
	Rent                         *RentInfo           `json:"rent,omitempty"`
	HousingLoan                  *HousingLoanInfo    `json:"housing_loan,omitempty"`
	FamilyMedicalExpenses        []FamilyMedicalItem `json:"family_medical_expenses,omitempty"`
	GlassesContactsExpense       *int64              `json:"glasses_contacts_expense,omitempty"`
	AssistiveDevicesExpense      *int64              `json:"assistive_devices_expense,omitempty"`
	InfertilityTreatmentExpense  *int64              `json:"infertility_treatment_expense,omitempty"`
	PreschoolEducationExpense    *int64              `json:"preschool_education_expense,omitempty"`
	SchoolUniformAndBooksExpense *int64              `json:"school_uniform_and_books_expense,omitempty"`
	ForeignEducationExpense      *int64              `json:"foreign_education_expense,omitempty"`
	ChildbirthCareExpense        *int64              `json:"childbirth_care_expense,omitempty"`
	MidSmallCompanyReductionUsed *bool               `json:"mid_small_company_reduction_applied,omitempty"`
}

// RuleContext is the deterministic rule-engine output fed to the generation
// prompt. Thresholds are nil when total salary is not positive, and each
// meets-flag is nil exactly when its threshold is nil.
type RuleContext struct {
	CardThreshold25    *int64 `json:"card_threshold_25"`
	CardTotalUsage     int64  `json:"card_total_usage"`
	CardMeetsThreshold *bool  `json:"card_meets_threshold"`

	MedicalThreshold3     *int64 `json:"medical_threshold_3"`
	MedicalTotal          int64  `json:"medical_total"`
	MedicalMeetsThreshold *bool  `json:"medical_meets_threshold"`

	RentConditionsMet bool `json:"rent_conditions_met"`

	TaxCreditType TaxCreditType `json:"tax_credit_type"`

	// Raw duplicates the fields above as a loose map for request tracing.
	// Diagnostic only; consumers must read the typed fields.
	Raw map[string]any `json:"raw"`
}
