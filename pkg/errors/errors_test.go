package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorFormatsCodeAndMessage(t *testing.T) {
	err := New(CodeInvalidOption, "paper stock not in catalog")
	if got := err.Error(); got != "INVALID_OPTION: paper stock not in catalog" {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeDependency, cause, "load catalog")
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsThroughFmtWrap(t *testing.T) {
	inner := New(CodeOutOfRange, "quantity above custom max")
	wrapped := fmt.Errorf("validating configuration: %w", inner)

	typed := As(wrapped)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeOutOfRange {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestMetadataForEngineCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeInvalidOption, http.StatusBadRequest},
		{CodeOutOfRange, http.StatusBadRequest},
		{CodeIncompatibleOption, http.StatusUnprocessableEntity},
		{CodeIncompatibleTurnaround, http.StatusUnprocessableEntity},
		{CodeIncompleteCatalog, http.StatusInternalServerError},
		{CodePricingModelMismatch, http.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestDataIntegrityCodesHideDetails(t *testing.T) {
	for _, code := range []Code{CodeIncompleteCatalog, CodePricingModelMismatch} {
		meta := MetadataFor(code)
		if meta.DetailsAllowed {
			t.Fatalf("code %s must not leak details to clients", code)
		}
	}
}

func TestNilErrorAccessors(t *testing.T) {
	var err *Error
	if err.Code() != CodeInternal {
		t.Fatal("nil error should report internal code")
	}
	if err.Error() != "" || err.Message() != "" || err.Details() != nil {
		t.Fatal("nil error accessors should be zero values")
	}
}
