package launch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnsureLinkBackend_Appends(t *testing.T) {
	got := EnsureLinkBackend([]string{"--mac", "--switch", "ovsk"})
	want := []string{"--mac", "--switch", "ovsk", "--link", "tc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureLinkBackend_Empty(t *testing.T) {
	got := EnsureLinkBackend(nil)
	want := []string{"--link", "tc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// An explicit --link wins, whatever backend it names. The arguments come
// back untouched rather than merged.
func TestEnsureLinkBackend_UserChoiceUntouched(t *testing.T) {
	args := []string{"--link", "default", "--mac"}
	got := EnsureLinkBackend(args)
	if diff := cmp.Diff(args, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureLinkBackend_NoSecondSelector(t *testing.T) {
	got := EnsureLinkBackend([]string{"--link", "tc"})
	count := 0
	for _, tok := range got {
		if tok == "--link" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one --link, got %d in %v", count, got)
	}
}
