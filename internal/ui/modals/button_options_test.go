package modals

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Sefyu24/Componentcn/internal/button"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

func TestButtonOptionsState_ApplyUnchanged(t *testing.T) {
	b := button.New("Click me")
	b.Variant = button.VariantOutline
	b.Size = button.SizeLg
	want := *b

	s := NewButtonOptionsState(b)
	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff(want, *b, cmpopts.IgnoreUnexported(button.Button{})); diff != "" {
		t.Errorf("Apply() changed button (-want +got):\n%s", diff)
	}
}

func TestButtonOptionsState_ApplyEdits(t *testing.T) {
	b := button.New("Click me")
	b.Click()

	s := NewButtonOptionsState(b)
	s.label = "  Delete  "
	s.variant = string(button.VariantDestructive)
	s.size = string(button.SizeSm)
	s.flags = []string{optionDisabled}

	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if b.Label != "Delete" || b.Variant != button.VariantDestructive || b.Size != button.SizeSm {
		t.Errorf("button = %+v", b)
	}
	if !b.Disabled || b.Confetti {
		t.Errorf("flags: disabled=%v confetti=%v, want true/false", b.Disabled, b.Confetti)
	}
	if b.Clicks() != 1 {
		t.Errorf("Clicks() = %d, want click counter preserved", b.Clicks())
	}
}

func TestButtonOptionsState_ApplyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ButtonOptionsState)
	}{
		{"empty label", func(s *ButtonOptionsState) { s.label = "   " }},
		{"unknown variant", func(s *ButtonOptionsState) { s.variant = "shiny" }},
		{"unknown size", func(s *ButtonOptionsState) { s.size = "xl" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := button.New("Click me")
			s := NewButtonOptionsState(b)
			tt.mutate(s)
			if err := s.Apply(b); perrors.GetKind(err) != perrors.KindInvalid {
				t.Errorf("Apply() error kind = %v, want invalid", perrors.GetKind(err))
			}
			if b.Label != "Click me" {
				t.Errorf("failed Apply modified label to %q", b.Label)
			}
		})
	}
}
