package usecase

import (
	"strings"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
)

// MinFactLen is the minimum trimmed length of a usable fact sheet. Shorter
// output fails with FACTS_REQUIRED before any call to the generation
// provider is attempted.
const MinFactLen = 10

// factWriter accumulates fact-sheet lines. Compilers add one descriptive
// line per populated field, in schema order, each prefixed by a stable
// label; absent fields produce no line, never a placeholder.
type factWriter struct {
	lines []string
}

// addRecipient prepends the three identification lines for a resolved
// recipient entity. A nil recipient writes nothing; an unknown company slug
// is not an error.
func (w *factWriter) addRecipient(rec *domain.Recipient) {
	if rec == nil {
		return
	}
	w.addLine("Recipient legal name: " + rec.LegalName)
	w.addLine("Recipient tax ID: " + rec.TaxID)
	w.addLine("Recipient address: " + rec.Address)
}

// addField writes "Label: value" when the field is populated.
func (w *factWriter) addField(form TypedForm, name, label string) {
	if v, ok := form.String(name); ok {
		w.addLine(label + ": " + v)
	}
}

// addYesNo writes "Label: yes|no" when the field was answered.
func (w *factWriter) addYesNo(form TypedForm, name, label string) {
	if v, ok := form.Bool(name); ok {
		w.addLine(label + ": " + yesNo(v))
	}
}

func (w *factWriter) addLine(line string) {
	w.lines = append(w.lines, line)
}

// String joins the accumulated lines into the canonical newline-separated
// fact sheet.
func (w *factWriter) String() string {
	return strings.Join(w.lines, "\n")
}

// fieldLines emits every schema field of d in declaration order. Compilers
// that have no conditional logic use this directly; the strategy use cases
// call it and then append their fixed drafting block and conditional lines.
func fieldLines(w *factWriter, d *Descriptor, form TypedForm) {
	for _, spec := range d.Schema.Fields {
		switch spec.Kind {
		case FieldYesNo:
			w.addYesNo(form, spec.Name, spec.Label)
		default:
			w.addField(form, spec.Name, spec.Label)
		}
	}
}
