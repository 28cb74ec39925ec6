package enums

import "fmt"

// CustomFormula names the closed set of CUSTOM add-on pricing formulas.
type CustomFormula string

const (
	// CustomFormulaBanding charges per bundle: ceil(qty / itemsPerBundle) * perBundleRate.
	CustomFormulaBanding CustomFormula = "banding"
	// CustomFormulaPerPieceFee charges a base fee plus a per-piece rate,
	// used by corner rounding, scoring, and similar finishing services.
	CustomFormulaPerPieceFee CustomFormula = "per_piece_fee"
)

var validCustomFormulas = []CustomFormula{
	CustomFormulaBanding,
	CustomFormulaPerPieceFee,
}

// String implements fmt.Stringer.
func (c CustomFormula) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CustomFormula.
func (c CustomFormula) IsValid() bool {
	for _, candidate := range validCustomFormulas {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCustomFormula converts raw input into a CustomFormula.
func ParseCustomFormula(value string) (CustomFormula, error) {
	for _, candidate := range validCustomFormulas {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid custom formula %q", value)
}
