package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// Rental deposit ("fianza") return demand. Direct category.

var fianzaDescriptor = &Descriptor{
	Category: "fianza",
	Meta: Meta{
		Title:       "Deposit return",
		Description: "Demand the return of a rental deposit withheld after the tenancy ended.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "landlord_name", Label: "Landlord or agency name", Kind: FieldText},
		{Name: "property_address", Label: "Rented property address", Kind: FieldText, MinLen: 5},
		{Name: "deposit_amount", Label: "Deposit amount", Kind: FieldText},
		{Name: "tenancy_end_date", Label: "Tenancy ended on", Kind: FieldText},
		{Name: "keys_returned", Label: "Keys and property returned", Kind: FieldYesNo},
		{Name: "deduction_reason_given", Label: "Landlord stated a reason for withholding", Kind: FieldYesNo},
		{Name: "additional_details", Label: "Additional details", Kind: FieldText, MinLen: 10},
	}},
}

func init() {
	fianzaDescriptor.Compile = compileFianza
	register(fianzaDescriptor)
}

func compileFianza(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, fianzaDescriptor, form)
	return w.String()
}
