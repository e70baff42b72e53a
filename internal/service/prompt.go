package service

import (
	"fmt"
	"strings"
)

// Rules enforced through the prompt. These are best-effort steering for the
// generation backend, not code-level validation; callers must treat the
// generated text as advisory.
const (
	// RuleLanguageMirroring instructs the model to reply in the user's input
	// language while keeping prices and property names unchanged.
	RuleLanguageMirroring = "LANGUAGE ADAPTATION: Always reply in the same language the user uses. " +
		"If the user writes in another language or script, you MUST reply in that same language, " +
		"while keeping property details (like prices and names) unchanged."

	ruleFormatting = `FORMATTING RULES (CRITICAL):
   - ALWAYS use **Bullet Points** for list items.
   - **Bold** the Property Title and Price.
   - Keep descriptions short (1 sentence max).
   - Use polite, professional spacing.`
)

// PromptAssembler builds the grounding prompt: persona, ledger, rules block
// and the verbatim user message, always in that order. The prompt is built
// once per request and never stored.
type PromptAssembler struct {
	agencyName    string
	contactNumber string
}

// NewPromptAssembler creates an assembler for the given business identity
func NewPromptAssembler(agencyName, contactNumber string) *PromptAssembler {
	return &PromptAssembler{
		agencyName:    agencyName,
		contactNumber: contactNumber,
	}
}

// Assemble combines the compiled ledger and the user message into the
// grounding prompt
func (a *PromptAssembler) Assemble(ledger, userMessage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a friendly and professional Real Estate Concierge for '%s' agency.\n", a.agencyName)
	b.WriteString("Your goal is to help users find properties from our inventory.\n\n")

	b.WriteString("HERE IS OUR CURRENT INVENTORY:\n")
	b.WriteString(ledger)
	b.WriteString("\n\n")

	b.WriteString("RULES:\n")
	fmt.Fprintf(&b, "1. ONLY recommend properties from the list above. If a user asks for something we don't have, "+
		"say \"I don't see anything like that right now, but please contact us on WhatsApp (%s) for upcoming listings.\"\n",
		a.contactNumber)
	fmt.Fprintf(&b, "2. %s\n", ruleFormatting)
	b.WriteString("3. Prices are in Indian Rupees (₹).\n")
	fmt.Fprintf(&b, "4. If asked about contact info, provide the WhatsApp number: %s. Do not claim to have any other contact channel.\n", a.contactNumber)
	b.WriteString("5. Do not invent properties.\n")
	fmt.Fprintf(&b, "6. %s\n", RuleLanguageMirroring)
	b.WriteString("\n")

	fmt.Fprintf(&b, "User Message: %s\n", userMessage)

	return b.String()
}
