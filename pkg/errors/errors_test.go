package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataMapping(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeConflict, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeNotFound, http.StatusNotFound},
		{CodeInternal, http.StatusInternalServerError},
		{Code("UNKNOWN"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeInternal, cause, "saving wishlist")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if typed := As(fmt.Errorf("outer: %w", err)); typed == nil || typed.Code() != CodeInternal {
		t.Fatal("expected As to find the typed error through wrapping")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeNotFound, errors.New("row missing"), "wishlist lookup")
	d := Dump(err)
	if d.Code != CodeNotFound {
		t.Fatalf("expected code NOT_FOUND, got %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected chain of at least 2, got %v", d.Chain)
	}
}
