package service

import (
	"github.com/susemi/yearend-why/dto"
)

// BuildRuleContext computes every deterministic figure the explanation
// prompt needs. Pure function: no I/O, no randomness, integer floor math
// only. Absent numeric inputs count as zero, never as errors.
//
// Thresholds are undefined (nil) when total salary is not positive, and the
// corresponding meets-flag is nil exactly then; the two are never nil
// independently.
func BuildRuleContext(
	income dto.Income,
	dependents dto.Dependents,
	conditions dto.Conditions,
	parsedPdf dto.ParsedDocumentData,
	manual dto.ManualInput,
) dto.RuleContext {
	totalSalary := income.TotalSalary

	// Card usage against the 25%-of-salary floor. Inclusive comparison:
	// usage equal to the threshold qualifies.
	var cardThreshold *int64
	var cardMeets *bool
	cardUsage := parsedPdf.CreditCard + parsedPdf.DebitCard + parsedPdf.CashReceipt
	if totalSalary > 0 {
		t := totalSalary * 25 / 100
		cardThreshold = &t
		m := cardUsage >= t
		cardMeets = &m
	}

	// Medical spending against the 3%-of-salary floor. Strict comparison:
	// a total exactly at the threshold does not qualify. This mirrors the
	// underlying rule as applied; do not unify with the card check.
	var medicalThreshold *int64
	var medicalMeets *bool
	medicalTotal := parsedPdf.MedicalExpense +
		derefInt64(manual.InfertilityTreatmentExpense) +
		derefInt64(manual.AssistiveDevicesExpense) +
		derefInt64(manual.ChildbirthCareExpense)
	for _, item := range manual.FamilyMedicalExpenses {
		medicalTotal += item.Amount
	}
	if totalSalary > 0 {
		t := totalSalary * 3 / 100
		medicalThreshold = &t
		m := medicalTotal > t
		medicalMeets = &m
	}

	// Rent credit needs householder + no home + a lease contract. Loan
	// status is a separate deduction and deliberately not part of this flag.
	rentMet := conditions.Householder && conditions.NoHouse && conditions.LeaseContract

	creditType := parsedPdf.TaxCreditType
	if !dto.ValidTaxCreditType(string(creditType)) {
		creditType = dto.TaxCreditUnknown
	}

	raw := map[string]any{
		"total_salary":            totalSalary,
		"card_threshold_25":       cardThreshold,
		"card_total_usage":        cardUsage,
		"card_meets_threshold":    cardMeets,
		"medical_threshold_3":     medicalThreshold,
		"medical_total":           medicalTotal,
		"medical_meets_threshold": medicalMeets,
		"rent_conditions":         rentMet,
		"dependents":              dependents,
		"conditions":              conditions,
	}

	return dto.RuleContext{
		CardThreshold25:       cardThreshold,
		CardTotalUsage:        cardUsage,
		CardMeetsThreshold:    cardMeets,
		MedicalThreshold3:     medicalThreshold,
		MedicalTotal:          medicalTotal,
		MedicalMeetsThreshold: medicalMeets,
		RentConditionsMet:     rentMet,
		TaxCreditType:         creditType,
		Raw:                   raw,
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
