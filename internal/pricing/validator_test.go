package pricing

import (
	"testing"

	"github.com/google/uuid"

	pkgerrors "github.com/printworks/printshop-backend/pkg/errors"
)

func expectCode(t *testing.T, err error, code pkgerrors.Code) *pkgerrors.Error {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
	return typed
}

func expectField(t *testing.T, typed *pkgerrors.Error, field string) {
	t.Helper()
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected detail map, got %T", typed.Details())
	}
	if details["field"] != field {
		t.Fatalf("field = %v, want %s", details["field"], field)
	}
}

func TestValidateUnknownPaperStock(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.PaperStockID = uuid.New()

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeInvalidOption)
	expectField(t, typed, "paper_stock_id")
}

func TestValidateUnknownTurnaround(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.TurnaroundTimeID = uuid.New()

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeInvalidOption)
	expectField(t, typed, "turnaround_time_id")
}

func TestValidateUnknownAddOn(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{{AddOnID: uuid.New()}}

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeInvalidOption)
	expectField(t, typed, "add_on_id")
}

func TestValidateQuantityNotListedNoCustom(t *testing.T) {
	f := newFixture("25.00")
	f.resolved.Quantities.HasCustom = false
	candidate := f.baseCandidate()
	candidate.Quantity = 123

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeInvalidOption)
	expectField(t, typed, "quantity")
}

func TestValidateCustomQuantityOutOfRange(t *testing.T) {
	f := newFixture("25.00")

	for _, qty := range []int64{49, 25001} {
		candidate := f.baseCandidate()
		candidate.Quantity = qty

		_, err := Validate(f.resolved, candidate)
		typed := expectCode(t, err, pkgerrors.CodeOutOfRange)
		expectField(t, typed, "quantity")
	}
}

func TestValidateCustomQuantityBoundsInclusive(t *testing.T) {
	f := newFixture("25.00")

	for _, qty := range []int64{50, 25000} {
		candidate := f.baseCandidate()
		candidate.Quantity = qty

		if _, err := Validate(f.resolved, candidate); err != nil {
			t.Fatalf("quantity %d should be valid: %v", qty, err)
		}
	}
}

func TestValidateCustomSizeOutOfRange(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.SizeID = nil
	candidate.CustomWidth = dec("13")
	candidate.CustomHeight = dec("5")

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeOutOfRange)
	expectField(t, typed, "custom_width")
}

func TestValidateCustomSizeWithinRange(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.SizeID = nil
	candidate.CustomWidth = dec("4.25")
	candidate.CustomHeight = dec("6")

	validated, err := Validate(f.resolved, candidate)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !validated.Size.Custom {
		t.Fatal("expected custom size selection")
	}
}

func TestValidateCoatingNotOnStock(t *testing.T) {
	f := newFixture("25.00")
	// second stock that only offers gloss
	otherStock := f.resolved.PaperStocks[0]
	otherStock.ID = uuid.New()
	otherStock.Coatings = otherStock.Coatings[1:2] // gloss only
	f.resolved.PaperStocks = append(f.resolved.PaperStocks, otherStock)

	candidate := f.baseCandidate()
	candidate.PaperStockID = otherStock.ID
	candidate.CoatingID = f.coatingNoneID // exists in catalog, not on this stock

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeIncompatibleOption)
	expectField(t, typed, "coating_id")
}

func TestValidateTurnaroundRequiresNoCoating(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.CoatingID = f.glossID
	candidate.TurnaroundTimeID = f.nextDayTT

	_, err := Validate(f.resolved, candidate)
	expectCode(t, err, pkgerrors.CodeIncompatibleTurnaround)
}

func TestValidateTurnaroundRestrictedCoating(t *testing.T) {
	f := newFixture("25.00")
	f.restrictGlossOnRush()
	candidate := f.baseCandidate()
	candidate.CoatingID = f.glossID
	candidate.TurnaroundTimeID = f.rushTT

	_, err := Validate(f.resolved, candidate)
	expectCode(t, err, pkgerrors.CodeIncompatibleTurnaround)
}

func TestValidateNoCoatingAlwaysAccepted(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.TurnaroundTimeID = f.nextDayTT // requires no coating

	if _, err := Validate(f.resolved, candidate); err != nil {
		t.Fatalf("no-coating selection should pass: %v", err)
	}
}

func TestValidateRequiredSubOptionMissing(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{{AddOnID: f.cornerID}}

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeIncompatibleOption)
	expectField(t, typed, "sub_option_ids")
}

func TestValidateExclusiveSubOptions(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.AddOns = []AddOnSelection{{
		AddOnID:      f.cornerID,
		SubOptionIDs: subIDs(f.radiusSmall, f.radiusLarge),
	}}

	_, err := Validate(f.resolved, candidate)
	expectCode(t, err, pkgerrors.CodeIncompatibleOption)
}

func TestValidateFailFastOrder(t *testing.T) {
	// Both an unknown stock (rule 1) and an out-of-range quantity (rule 2):
	// the membership failure must win.
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.PaperStockID = uuid.New()
	candidate.Quantity = 1

	_, err := Validate(f.resolved, candidate)
	typed := expectCode(t, err, pkgerrors.CodeInvalidOption)
	expectField(t, typed, "paper_stock_id")
}

func TestValidateNeverReturnsPartialResult(t *testing.T) {
	f := newFixture("25.00")
	candidate := f.baseCandidate()
	candidate.Quantity = 1 // out of range

	validated, err := Validate(f.resolved, candidate)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if validated != nil {
		t.Fatal("failed validation must not return a partial result")
	}
}
