package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// Disputed invoice ("factura"). Direct category.

var facturaDescriptor = &Descriptor{
	Category: "factura",
	Meta: Meta{
		Title:       "Bill dispute",
		Description: "Dispute an incorrect or unexpected invoice and request a correction or refund.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "invoice_number", Label: "Invoice number", Kind: FieldText},
		{Name: "invoice_date", Label: "Invoice date", Kind: FieldText},
		{Name: "disputed_amount", Label: "Disputed amount", Kind: FieldText},
		{Name: "dispute_reason", Label: "Reason for the dispute", Kind: FieldText, Required: true, MinLen: 10},
		{Name: "already_complained", Label: "Already complained to the company", Kind: FieldYesNo},
		{Name: "payment_withheld", Label: "Disputed amount withheld from payment", Kind: FieldYesNo},
	}},
}

func init() {
	facturaDescriptor.Compile = compileFactura
	register(facturaDescriptor)
}

func compileFactura(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, facturaDescriptor, form)
	return w.String()
}
