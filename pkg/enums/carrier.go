package enums

import "fmt"

// Carrier identifies a supported shipping carrier.
type Carrier string

const (
	CarrierFedEx          Carrier = "fedex"
	CarrierUPS            Carrier = "ups"
	CarrierSouthwestCargo Carrier = "southwest_cargo"
)

var validCarriers = []Carrier{
	CarrierFedEx,
	CarrierUPS,
	CarrierSouthwestCargo,
}

// String implements fmt.Stringer.
func (c Carrier) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Carrier.
func (c Carrier) IsValid() bool {
	for _, candidate := range validCarriers {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCarrier converts raw input into a Carrier.
func ParseCarrier(value string) (Carrier, error) {
	for _, candidate := range validCarriers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid carrier %q", value)
}
