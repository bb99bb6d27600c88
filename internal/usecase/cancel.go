package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// Telecom/utility contract cancellation. Direct category: the company slug
// identifies the provider but never changes the schema.

var cancelDescriptor = &Descriptor{
	Category: "cancel",
	Meta: Meta{
		Title:       "Contract cancellation",
		Description: "Formally cancel a telecom or utility contract and stop further charges.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "contract_reference", Label: "Contract or account reference", Kind: FieldText},
		{Name: "service_type", Label: "Service type", Kind: FieldEnum,
			Enum: []string{"mobile", "internet", "landline", "tv", "combined"}},
		{Name: "cancellation_date", Label: "Cancellation requested on", Kind: FieldText},
		{Name: "charge_after_cancellation", Label: "Provider continued charging after cancellation", Kind: FieldYesNo},
		{Name: "amount_charged", Label: "Amount charged after cancellation", Kind: FieldText},
		{Name: "additional_details", Label: "Additional details", Kind: FieldText, MinLen: 10},
	}},
}

func init() {
	cancelDescriptor.Compile = compileCancel
	register(cancelDescriptor)
}

func compileCancel(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, cancelDescriptor, form)
	return w.String()
}
