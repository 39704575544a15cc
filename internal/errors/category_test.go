package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/hapax/vaultbak/internal/errors"
)

func TestCategorize(t *testing.T) {
	base := errors.New("archive not found")
	err := errors.Categorize(errors.Policy, base)

	cat, ok := errors.CategoryOf(err)
	if !ok {
		t.Fatal("expected a category to be attached")
	}
	if cat != errors.Policy {
		t.Fatalf("expected Policy, got %v", cat)
	}
	if !stderrors.Is(err, base) {
		t.Fatal("expected categorized error to wrap base error")
	}
}

func TestCategorizeNil(t *testing.T) {
	if errors.Categorize(errors.IO, nil) != nil {
		t.Fatal("expected nil in, nil out")
	}
}
