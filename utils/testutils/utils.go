package testutils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func AssertEqual(t *testing.T, got, exp interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(exp, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
