package keymap

import (
	"github.com/robinovitch61/hcols/internal/strip"
	"testing"
)

func TestDescriptiveKeyBindings(t *testing.T) {
	km := DefaultKeyMap()
	bindings := DescriptiveKeyBindings(km, strip.DefaultKeyMap())
	for _, b := range bindings {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("expected every listed binding to have help, got %+v", b.Help())
		}
	}
	if km.Enter.Help().Desc != "" {
		t.Errorf("expected WithDesc not to modify the original binding")
	}
}
