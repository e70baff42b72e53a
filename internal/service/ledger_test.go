package service

import (
	"strings"
	"testing"

	"concierge/internal/model"
)

func sampleListings() []model.Listing {
	return []model.Listing{
		{
			ID:          1,
			Title:       "Lake View Villa",
			Type:        "House",
			Price:       model.FlexPrice("4500000"),
			Location:    "Pune",
			Description: "Spacious villa near the lake.",
		},
		{
			ID:          2,
			Title:       "City Center Flat",
			Type:        "Apartment",
			Price:       model.FlexPrice("₹25,00,000"),
			Location:    "Mumbai",
			Description: "Compact 2BHK close to the station.",
		},
	}
}

func TestLedgerCompiler_Compile(t *testing.T) {
	compiler := NewLedgerCompiler(100)

	ledger := compiler.Compile(sampleListings())

	lines := strings.Split(ledger, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 ledger lines, got %d:\n%s", len(lines), ledger)
	}

	first := lines[0]
	for _, want := range []string{"Lake View Villa", "(House)", "₹4500000", "Location: Pune", "(RawValue: 4500000)", "Spacious villa near the lake."} {
		if !strings.Contains(first, want) {
			t.Errorf("First ledger line missing %q:\n%s", want, first)
		}
	}

	// Formatted legacy price keeps its display form but normalizes for comparison
	second := lines[1]
	if !strings.Contains(second, "25,00,000") {
		t.Errorf("Second ledger line should carry the stored price text:\n%s", second)
	}
	if !strings.Contains(second, "(RawValue: 2500000)") {
		t.Errorf("Second ledger line missing normalized price:\n%s", second)
	}
}

func TestLedgerCompiler_Deterministic(t *testing.T) {
	compiler := NewLedgerCompiler(100)
	listings := sampleListings()

	first := compiler.Compile(listings)
	second := compiler.Compile(listings)
	if first != second {
		t.Error("Compiling the same snapshot twice should yield identical text")
	}
}

func TestLedgerCompiler_OrderPreserving(t *testing.T) {
	compiler := NewLedgerCompiler(100)
	listings := sampleListings()

	reversed := []model.Listing{listings[1], listings[0]}

	forward := strings.Split(compiler.Compile(listings), "\n")
	backward := strings.Split(compiler.Compile(reversed), "\n")

	if forward[0] != backward[1] || forward[1] != backward[0] {
		t.Error("Reordering the snapshot should reorder the ledger identically")
	}
}

func TestLedgerCompiler_EmptySnapshot(t *testing.T) {
	compiler := NewLedgerCompiler(100)

	if got := compiler.Compile(nil); got != EmptyLedgerSentinel {
		t.Errorf("Empty snapshot should compile to sentinel, got %q", got)
	}
	if got := compiler.Compile([]model.Listing{}); got != EmptyLedgerSentinel {
		t.Errorf("Empty snapshot should compile to sentinel, got %q", got)
	}
}

func TestLedgerCompiler_TruncatesDescription(t *testing.T) {
	compiler := NewLedgerCompiler(100)

	long := strings.Repeat("a", 150)
	entries := compiler.Entries([]model.Listing{{Title: "X", Description: long}})

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].Description; got != strings.Repeat("a", 100) {
		t.Errorf("Expected description truncated to 100 chars, got %d", len(got))
	}
}

func TestLedgerCompiler_TruncationIsRuneSafe(t *testing.T) {
	compiler := NewLedgerCompiler(10)

	long := strings.Repeat("नमस्ते", 20)
	entries := compiler.Entries([]model.Listing{{Title: "X", Description: long}})

	got := entries[0].Description
	if runes := []rune(got); len(runes) != 10 {
		t.Errorf("Expected 10 runes, got %d", len(runes))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("Truncated description should be a prefix of the original")
	}
}
