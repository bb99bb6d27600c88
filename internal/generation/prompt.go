package generation

import "fmt"

// systemDirective is the fixed style contract sent with every call. It
// forbids template placeholders, forbids fabricating facts the sheet does
// not contain, and pins the response to exactly the two required keys.
const systemDirective = "You are a legal drafting assistant for consumer and administrative matters in Spain. " +
	"Write complete, formal documents in correct legal register. " +
	"Never use template placeholders such as [NAME] or {date}; if a fact is not provided, omit it rather than invent it. " +
	"Respond with a JSON object containing exactly two keys: " +
	`"spanish_legal_text" (the full document in Spanish) and ` +
	`"native_user_translation" (a faithful translation of that document into the user's language). ` +
	"Do not include any other keys or any text outside the JSON object."

// BuildPrompt assembles the user message from the requester's locale, the
// compiled fact sheet, and the use-case hint. The fact sheet is the sole
// source of facts for the document.
func BuildPrompt(locale, factSheet, useCaseHint string) string {
	if useCaseHint == "" {
		useCaseHint = "formal complaint letter"
	}
	return fmt.Sprintf(
		"Document type: %s\nUser language (for the translation): %s\n\nFacts:\n%s",
		useCaseHint, locale, factSheet,
	)
}
