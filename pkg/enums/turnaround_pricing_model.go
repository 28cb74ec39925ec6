package enums

import "fmt"

// TurnaroundPricingModel selects how a turnaround tier marks up the subtotal.
type TurnaroundPricingModel string

const (
	TurnaroundPricingModelFlat       TurnaroundPricingModel = "FLAT"
	TurnaroundPricingModelPercentage TurnaroundPricingModel = "PERCENTAGE"
)

var validTurnaroundPricingModels = []TurnaroundPricingModel{
	TurnaroundPricingModelFlat,
	TurnaroundPricingModelPercentage,
}

// String implements fmt.Stringer.
func (t TurnaroundPricingModel) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TurnaroundPricingModel.
func (t TurnaroundPricingModel) IsValid() bool {
	for _, candidate := range validTurnaroundPricingModels {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTurnaroundPricingModel converts raw input into a TurnaroundPricingModel.
func ParseTurnaroundPricingModel(value string) (TurnaroundPricingModel, error) {
	for _, candidate := range validTurnaroundPricingModels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid turnaround pricing model %q", value)
}
