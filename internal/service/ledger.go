package service

import (
	"fmt"
	"strings"

	"concierge/internal/model"
)

// EmptyLedgerSentinel is compiled instead of an empty ledger block so the
// assistant can state that nothing is listed rather than hallucinate.
const EmptyLedgerSentinel = "No properties currently listed."

// LedgerCompiler renders a listing snapshot into the grounding ledger: one
// fixed-format line per listing, in snapshot order. The transformation is
// pure; compiling the same snapshot twice yields identical text.
type LedgerCompiler struct {
	descriptionLimit int
}

// NewLedgerCompiler creates a compiler with the given per-listing description
// budget in characters
func NewLedgerCompiler(descriptionLimit int) *LedgerCompiler {
	if descriptionLimit <= 0 {
		descriptionLimit = 100
	}
	return &LedgerCompiler{descriptionLimit: descriptionLimit}
}

// Entries derives one ledger entry per listing, preserving input order
func (c *LedgerCompiler) Entries(listings []model.Listing) []model.LedgerEntry {
	entries := make([]model.LedgerEntry, 0, len(listings))
	for _, l := range listings {
		entries = append(entries, model.LedgerEntry{
			Title:           l.Title,
			Type:            l.Type,
			DisplayPrice:    l.Price.String(),
			Location:        l.Location,
			NormalizedPrice: NormalizePrice(l.Price.String()),
			Description:     truncate(l.Description, c.descriptionLimit),
		})
	}
	return entries
}

// Compile renders the snapshot as ledger text
func (c *LedgerCompiler) Compile(listings []model.Listing) string {
	if len(listings) == 0 {
		return EmptyLedgerSentinel
	}

	lines := make([]string, 0, len(listings))
	for _, e := range c.Entries(listings) {
		lines = append(lines, fmt.Sprintf(
			"- %s (%s): ₹%s, Location: %s. (RawValue: %d). Desc: %s...",
			e.Title, e.Type, e.DisplayPrice, e.Location, e.NormalizedPrice, e.Description,
		))
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most limit characters, on a rune boundary
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
