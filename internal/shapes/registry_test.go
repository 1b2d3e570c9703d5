package shapes

import (
	"errors"
	"reflect"
	"testing"
)

func stubIcon() string { return frame(`<rect x="0" y="0" width="10" height="10" fill="#000000" />`) }

func TestBuildViews_Succeeds(t *testing.T) {
	views, err := BuildViews()
	if err != nil {
		t.Fatalf("BuildViews() error = %v", err)
	}
	if got := len(views.Top.Names()); got != 22 {
		t.Fatalf("top view generator count = %d, want 22", got)
	}
	if got := len(views.Side.Names()); got != 22 {
		t.Fatalf("side view generator count = %d, want 22", got)
	}
}

func TestLookup_CaseInsensitiveAndIdempotent(t *testing.T) {
	views, err := BuildViews()
	if err != nil {
		t.Fatalf("BuildViews() error = %v", err)
	}
	first, ok := views.Side.Lookup("WaShEr")
	if !ok {
		t.Fatalf("mixed-case lookup missed")
	}
	second, ok := views.Side.Lookup("washer")
	if !ok {
		t.Fatalf("lowercase lookup missed")
	}
	if reflect.ValueOf(first).Pointer() != reflect.ValueOf(second).Pointer() {
		t.Fatalf("case variants resolved to different generators")
	}
	again, _ := views.Side.Lookup("washer")
	if reflect.ValueOf(second).Pointer() != reflect.ValueOf(again).Pointer() {
		t.Fatalf("repeat lookup resolved to a different generator")
	}
}

func TestLookup_WasherFlatAliasIsByteIdentical(t *testing.T) {
	views, err := BuildViews()
	if err != nil {
		t.Fatalf("BuildViews() error = %v", err)
	}
	washer, ok := views.Side.Lookup("washer")
	if !ok {
		t.Fatalf("washer missing from side view")
	}
	flat, ok := views.Side.Lookup("washer_flat")
	if !ok {
		t.Fatalf("washer_flat missing from side view")
	}
	if washer() != flat() {
		t.Fatalf("washer and washer_flat outputs differ")
	}
	if canonical, _ := views.Side.Canonical("washer_flat"); canonical != "washer_std" {
		t.Fatalf("washer_flat canonical = %q, want washer_std", canonical)
	}
}

func TestLookup_MissReturnsNotFound(t *testing.T) {
	views, err := BuildViews()
	if err != nil {
		t.Fatalf("BuildViews() error = %v", err)
	}
	if _, ok := views.Top.Lookup("unobtainium"); ok {
		t.Fatalf("unregistered symbol resolved")
	}
	if _, ok := views.Top.Lookup(""); ok {
		t.Fatalf("empty symbol resolved")
	}
}

func TestAliasing_ChosenPerView(t *testing.T) {
	views, err := BuildViews()
	if err != nil {
		t.Fatalf("BuildViews() error = %v", err)
	}
	topCanonical, ok := views.Top.Canonical("insert_press")
	if !ok {
		t.Fatalf("insert_press missing from top view")
	}
	if topCanonical != "insert_heat" {
		t.Fatalf("top insert_press canonical = %q, want insert_heat", topCanonical)
	}
	sideCanonical, ok := views.Side.Canonical("insert_press")
	if !ok {
		t.Fatalf("insert_press missing from side view")
	}
	if sideCanonical != "insert_press" {
		t.Fatalf("side insert_press canonical = %q, want insert_press", sideCanonical)
	}
}

func TestRegistryBuilder_DuplicateKeysFailAtBuild(t *testing.T) {
	tests := []struct {
		name string
		fill func(b *registryBuilder)
	}{
		{"canonical twice", func(b *registryBuilder) {
			b.add("anchor", stubIcon)
			b.add("anchor", stubIcon)
		}},
		{"alias collides with canonical", func(b *registryBuilder) {
			b.add("anchor", stubIcon)
			b.add("rivet", stubIcon, "anchor")
		}},
		{"alias twice", func(b *registryBuilder) {
			b.add("anchor", stubIcon, "fixing")
			b.add("rivet", stubIcon, "fixing")
		}},
		{"case-folded collision", func(b *registryBuilder) {
			b.add("anchor", stubIcon)
			b.add("Anchor", stubIcon)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newRegistryBuilder("top")
			tc.fill(b)
			if _, err := b.build(); !errors.Is(err, ErrDuplicateSymbol) {
				t.Fatalf("build error = %v, want ErrDuplicateSymbol", err)
			}
		})
	}
}

func TestRegistryBuilder_ErrorDoesNotSurfaceAtLookup(t *testing.T) {
	b := newRegistryBuilder("side")
	b.add("anchor", stubIcon)
	b.add("anchor", stubIcon)
	reg, err := b.build()
	if err == nil {
		t.Fatalf("expected build error")
	}
	if reg != nil {
		t.Fatalf("registry returned despite build error")
	}
}
