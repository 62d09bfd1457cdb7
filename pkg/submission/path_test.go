package submission_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/submission"
)

func TestStoragePath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"top level", "firstName", "data.firstName"},
		{"one level nested", "address.city", "data.address.data.city"},
		{"two levels nested", "a.b.c", "data.a.data.b.data.c"},
		{"empty", "", ""},
		{"stray dots", "a..b", "data.a.data.b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := submission.StoragePath(tc.path); got != tc.want {
				t.Fatalf("storage path for %q: want %q, got %q", tc.path, tc.want, got)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"a.b.c", []string{"a", "b", "c"}},
		{"a", []string{"a"}},
		{"a..b", []string{"a", "b"}},
		{"", nil},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, submission.Segments(tc.path)); diff != "" {
			t.Fatalf("segments of %q mismatch (-want +got):\n%s", tc.path, diff)
		}
	}
}
