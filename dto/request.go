package dto

import "errors"

// UserInputRequest is the up-front survey payload (income, household,
// eligibility questions). Validated only; nothing is stored.
type UserInputRequest struct {
	Income     Income     `json:"income"`
	Dependents Dependents `json:"dependents"`
	Conditions Conditions `json:"conditions"`
}

// Validate performs domain checks beyond gin's field binding.
func (r *UserInputRequest) Validate() error {
	if r.Income.TotalSalary <= 0 {
		return errors.New("total_salary must be positive")
	}
	if r.Income.NonTaxable < 0 || r.Income.Bonus < 0 {
		return errors.New("income amounts must not be negative")
	}
	if r.Dependents.DependentsCount < 0 || r.Dependents.DisabledCount < 0 || r.Dependents.SeniorCount < 0 {
		return errors.New("dependent counts must not be negative")
	}
	return nil
}

// ManualInputRequest carries the supplemental figures form.
type ManualInputRequest struct {
	ManualInput
}

// Validate rejects internally inconsistent supplemental entries.
func (r *ManualInputRequest) Validate() error {
	if r.Rent != nil && r.Rent.HasRent {
		if r.Rent.MonthlyRent == nil || *r.Rent.MonthlyRent <= 0 {
			return errors.New("monthly_rent is required when has_rent is set")
		}
		if r.Rent.MonthsPaid != nil && (*r.Rent.MonthsPaid < 1 || *r.Rent.MonthsPaid > 12) {
			return errors.New("months_paid must be between 1 and 12")
		}
	}
	if r.HousingLoan != nil && r.HousingLoan.HasLoan {
		if r.HousingLoan.InterestPaid == nil || *r.HousingLoan.InterestPaid <= 0 {
			return errors.New("interest_paid is required when has_loan is set")
		}
	}
	for _, item := range r.FamilyMedicalExpenses {
		if item.Amount < 0 {
			return errors.New("family medical amounts must not be negative")
		}
	}
	return nil
}

// AnalyzeRequest is the full fact set the explanation pipeline consumes.
// The client sends back the validated survey data together with the parsed
// document and the supplemental form.
type AnalyzeRequest struct {
	Income      Income             `json:"income"`
	Dependents  Dependents         `json:"dependents"`
	Conditions  Conditions         `json:"conditions"`
	ParsedPdf   ParsedDocumentData `json:"parsed_pdf"`
	ManualInput ManualInput        `json:"manual_input"`
}
