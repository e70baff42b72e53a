package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"concierge/internal/model"

	"github.com/google/uuid"
)

// ListingStore is the read-only view of the listing store the assistant
// grounds on. The store itself is owned and mutated by the portal CRUD
// subsystem; the assistant only takes bounded snapshots.
type ListingStore interface {
	// ActiveListings returns up to limit active listings, newest first
	ActiveListings(ctx context.Context, limit int) ([]model.Listing, error)

	// LogConversation records one completed exchange, best effort
	LogConversation(ctx context.Context, rec *model.ConversationRecord) error
}

// Assistant answers natural-language questions about available properties.
// Each request is an independent fetch -> compile -> assemble -> generate
// cycle; no ledger, prompt or reply is cached or shared across requests, so
// concurrent requests need no coordination.
type Assistant struct {
	store         ListingStore
	gen           Generator
	compiler      *LedgerCompiler
	prompts       *PromptAssembler
	snapshotLimit int
}

// NewAssistant creates the assistant service
func NewAssistant(store ListingStore, gen Generator, compiler *LedgerCompiler, prompts *PromptAssembler, snapshotLimit int) *Assistant {
	if snapshotLimit <= 0 {
		snapshotLimit = 50
	}
	return &Assistant{
		store:         store,
		gen:           gen,
		compiler:      compiler,
		prompts:       prompts,
		snapshotLimit: snapshotLimit,
	}
}

// Answer grounds the user's message on a fresh inventory snapshot and returns
// the generated reply.
//
// req.History is accepted but not folded into the grounding prompt: every
// request is grounded independently, and the transcript lives only on the
// client.
func (a *Assistant) Answer(ctx context.Context, req *model.ChatRequest) (string, error) {
	start := time.Now()

	// The credential is validated before any network call; a broken call must
	// never be allowed to proceed silently.
	if a.gen == nil || !a.gen.IsEnabled() {
		return "", ErrConfigurationMissing
	}

	listings, err := a.store.ActiveListings(ctx, a.snapshotLimit)
	if err != nil {
		// Surface the failure instead of compiling an empty, misleading
		// "no properties" ledger.
		log.Printf("assistant: snapshot fetch failed: %v", err)
		wrapped := fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		a.logExchange(req.Message, "", ErrorCode(wrapped), start)
		return "", wrapped
	}

	ledger := a.compiler.Compile(listings)
	prompt := a.prompts.Assemble(ledger, req.Message)

	text, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("assistant: generation failed: %v", err)
		a.logExchange(req.Message, "", ErrorCode(err), start)
		return "", err
	}

	a.logExchange(req.Message, text, "ok", start)
	return text, nil
}

// logExchange records the exchange without blocking the response
func (a *Assistant) logExchange(message, reply, outcome string, start time.Time) {
	took := time.Since(start).Milliseconds()
	go func() {
		rec := &model.ConversationRecord{
			ID:      uuid.New(),
			Message: message,
			Reply:   reply,
			Outcome: outcome,
			TookMS:  took,
		}
		if err := a.store.LogConversation(context.Background(), rec); err != nil {
			log.Printf("assistant: failed to log conversation: %v", err)
		}
	}()
}
