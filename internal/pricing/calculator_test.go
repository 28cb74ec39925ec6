package pricing

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

func mustValidate(t *testing.T, f *fixture, candidate CandidateConfiguration) *ValidatedConfiguration {
	t.Helper()
	validated, err := Validate(f.resolved, candidate)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return validated
}

func mustCalculate(t *testing.T, cfg *ValidatedConfiguration, discount *decimal.Decimal) *PriceBreakdown {
	t.Helper()
	breakdown, err := Calculate(cfg, discount)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return breakdown
}

func lineByKindLabel(b *PriceBreakdown, kind, label string) (BreakdownLine, bool) {
	for _, line := range b.Lines {
		if line.Kind == kind && line.Label == label {
			return line, true
		}
	}
	return BreakdownLine{}, false
}

func TestBandingAddOn(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.Quantity = 1000
	candidate.AddOns = []AddOnSelection{{AddOnID: f.shrinkID}}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	line, ok := lineByKindLabel(breakdown, LineKindAddOn, "Shrink Wrapping")
	if !ok {
		t.Fatal("missing shrink wrapping line")
	}
	if !line.Amount.Equal(money("7.50")) {
		t.Fatalf("shrink wrapping = %s, want 7.50", line.Amount)
	}
	if !breakdown.Total.Equal(money("32.50")) {
		t.Fatalf("total = %s, want 32.50", breakdown.Total)
	}
}

func TestPerPieceFeeAddOn(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.Quantity = 2500
	candidate.AddOns = []AddOnSelection{{AddOnID: f.cornerID, SubOptionIDs: subIDs(f.radiusSmall)}}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	line, ok := lineByKindLabel(breakdown, LineKindAddOn, "Corner Rounding")
	if !ok {
		t.Fatal("missing corner rounding line")
	}
	if !line.Amount.Equal(money("45.00")) {
		t.Fatalf("corner rounding = %s, want 45.00 (20 + 0.01 x 2500)", line.Amount)
	}
}

func TestTurnaroundMultiplier(t *testing.T) {
	f := newFixture("100.00")
	candidate := f.baseCandidate()
	candidate.TurnaroundTimeID = f.rushTT

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	if !breakdown.Total.Equal(money("130.00")) {
		t.Fatalf("total = %s, want 130.00", breakdown.Total)
	}
	line, ok := lineByKindLabel(breakdown, LineKindTurnaround, "Rush 2-3 Days")
	if !ok {
		t.Fatal("missing turnaround line")
	}
	if !line.Amount.Equal(money("30.00")) {
		t.Fatalf("turnaround markup = %s, want 30.00", line.Amount)
	}
}

func TestTurnaroundMultiplierOneIsExact(t *testing.T) {
	f := newFixture("33.33")
	candidate := f.baseCandidate()
	candidate.CoatingID = f.glossID
	candidate.SidesID = f.doubleID
	candidate.AddOns = []AddOnSelection{{AddOnID: f.proofID}}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	// 33.33 + 15 + 20 + 15 with x1.0 turnaround: no markup line, exact total
	if !breakdown.Total.Equal(money("83.33")) {
		t.Fatalf("total = %s, want 83.33", breakdown.Total)
	}
	if _, ok := lineByKindLabel(breakdown, LineKindTurnaround, "Standard 5-7 Days"); ok {
		t.Fatal("multiplier 1.0 must not produce a turnaround line")
	}
}

func TestFlatTurnaround(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.TurnaroundTimeID = f.nextDayTT

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)
	if !breakdown.Total.Equal(money("75.00")) {
		t.Fatalf("total = %s, want 75.00", breakdown.Total)
	}
}

func TestBrokerDiscount(t *testing.T) {
	f := newFixture("200.00")
	candidate := f.baseCandidate()

	discount := money("10")
	breakdown := mustCalculate(t, mustValidate(t, f, candidate), &discount)

	if !breakdown.Total.Equal(money("180.00")) {
		t.Fatalf("total = %s, want 180.00", breakdown.Total)
	}
	line, ok := lineByKindLabel(breakdown, LineKindBrokerDiscount, "Broker discount (10%)")
	if !ok {
		t.Fatal("missing broker discount line")
	}
	if !line.Amount.Equal(money("-20.00")) {
		t.Fatalf("discount line = %s, want -20.00", line.Amount)
	}
}

func TestPercentageAddOnUsesPreAddOnSubtotal(t *testing.T) {
	f := newFixture("100.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{
		{AddOnID: f.proofID},     // +15 flat
		{AddOnID: f.packagingID}, // 5% of pre-add-on subtotal, not of 115
	}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	line, _ := lineByKindLabel(breakdown, LineKindAddOn, "Premium Packaging")
	if !line.Amount.Equal(money("5.00")) {
		t.Fatalf("packaging = %s, want 5.00 (no compounding on other add-ons)", line.Amount)
	}
	if !breakdown.Total.Equal(money("120.00")) {
		t.Fatalf("total = %s, want 120.00", breakdown.Total)
	}
}

func TestLinesSumToTotal(t *testing.T) {
	f := newFixture("19.99")
	candidate := f.baseCandidate()
	candidate.Quantity = 333
	candidate.CoatingID = f.glossID
	candidate.SidesID = f.doubleID
	candidate.TurnaroundTimeID = f.rushTT
	candidate.AddOns = []AddOnSelection{
		{AddOnID: f.shrinkID},
		{AddOnID: f.numberingID},
		{AddOnID: f.packagingID},
	}

	discount := money("7.5")
	breakdown := mustCalculate(t, mustValidate(t, f, candidate), &discount)

	if !breakdown.LinesSum().Equal(breakdown.Total) {
		t.Fatalf("lines sum %s != total %s", breakdown.LinesSum(), breakdown.Total)
	}
}

func TestCalculationIsDeterministic(t *testing.T) {
	f := newFixture("42.42")
	candidate := f.baseCandidate()
	candidate.Quantity = 777
	candidate.TurnaroundTimeID = f.rushTT
	candidate.AddOns = []AddOnSelection{{AddOnID: f.numberingID}}

	first := mustCalculate(t, mustValidate(t, f, candidate), nil)
	second := mustCalculate(t, mustValidate(t, f, candidate), nil)

	if !first.Total.Equal(second.Total) {
		t.Fatalf("totals differ: %s vs %s", first.Total, second.Total)
	}
	if len(first.Lines) != len(second.Lines) {
		t.Fatalf("line counts differ: %d vs %d", len(first.Lines), len(second.Lines))
	}
	for i := range first.Lines {
		if !first.Lines[i].Amount.Equal(second.Lines[i].Amount) {
			t.Fatalf("line %d differs: %s vs %s", i, first.Lines[i].Amount, second.Lines[i].Amount)
		}
	}
}

func TestBreakdownJSONRoundTrip(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{{AddOnID: f.proofID}}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)

	raw, err := json.Marshal(breakdown)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded PriceBreakdown
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Total.Equal(breakdown.Total) {
		t.Fatalf("total after round trip = %s, want %s", decoded.Total, breakdown.Total)
	}
	if !decoded.LinesSum().Equal(decoded.Total) {
		t.Fatalf("round-tripped lines sum %s != total %s", decoded.LinesSum(), decoded.Total)
	}
}

func TestPricingModelMismatchSurfaces(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{{AddOnID: f.brokenID}}

	_, err := Calculate(mustValidate(t, f, candidate), nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodePricingModelMismatch {
		t.Fatalf("expected PRICING_MODEL_MISMATCH, got %v", err)
	}
}

func TestSubOptionDeltaAddsToAddOnLine(t *testing.T) {
	f := newFixture("25.00")
	// give the large radius a surcharge
	for i := range f.resolved.AddOns {
		if f.resolved.AddOns[i].AddOn.ID == f.cornerID {
			f.resolved.AddOns[i].SubOptions[1].PriceDelta = money("5.00")
		}
	}
	candidate := f.baseCandidate()
	candidate.Quantity = 1000
	candidate.AddOns = []AddOnSelection{{AddOnID: f.cornerID, SubOptionIDs: subIDs(f.radiusLarge)}}

	breakdown := mustCalculate(t, mustValidate(t, f, candidate), nil)
	line, _ := lineByKindLabel(breakdown, LineKindAddOn, "Corner Rounding")
	// 20 + 0.01 x 1000 + 5 surcharge
	if !line.Amount.Equal(money("35.00")) {
		t.Fatalf("corner rounding = %s, want 35.00", line.Amount)
	}
}
