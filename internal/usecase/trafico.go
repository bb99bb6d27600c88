package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// Compound category "trafico". The company slug carries the variant:
// "multa" (traffic-fine appeal) or "venta" (private vehicle-sale notice),
// optionally followed by entity context ("multa-madrid").

// Fixed drafting-instruction blocks. These are appended verbatim after the
// field lines; only the conditional lines below vary, keyed on a single
// discriminant field.
const (
	multaStrategy = "Drafting instructions: write a formal administrative appeal (recurso) against the traffic fine, " +
		"citing the right to presumption of innocence and requesting the suspension of the collection procedure " +
		"while the appeal is pending."
	ventaStrategy = "Drafting instructions: write a formal notice of private vehicle sale for the traffic authority, " +
		"stating that liability for the vehicle, including fines and taxes accrued after the sale date, " +
		"passes to the buyer."
)

// Conditional sentences selected by appeal_reason. Exactly one is appended;
// an absent or out-of-set reason appends nothing (out-of-set is already a
// validation issue because the field is a discriminant).
const (
	multaNoEvidenceLine = "Demand that the authority produce the photographic or documentary evidence supporting " +
		"the alleged infraction, without which the fine must be annulled."
	multaNotDriverLine = "State that the applicant was not the driver at the time of the alleged infraction and " +
		"that the sanctioning procedure must be redirected to the identified driver."
	multaSignageLine = "State that the signage at the location was missing or not visible and request an official " +
		"report on the signage in force on the date of the alleged infraction."
	multaAlreadyPaidLine = "State that the fine was already paid and attach the payment reference, requesting the " +
		"closure of the duplicate collection procedure."
)

var multaDescriptor = &Descriptor{
	Category: "trafico",
	Variant:  "multa",
	Meta: Meta{
		Title:       "Traffic fine appeal",
		Description: "Appeal a traffic fine before the issuing authority.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "fine_reference", Label: "Fine file reference", Kind: FieldText},
		{Name: "fine_date", Label: "Fine issued on", Kind: FieldText},
		{Name: "fine_amount", Label: "Fine amount", Kind: FieldText},
		{Name: "vehicle_plate", Label: "Vehicle plate", Kind: FieldText},
		{Name: "appeal_reason", Label: "Ground of appeal", Kind: FieldEnum, Discriminant: true,
			Enum: []string{"no_evidence", "not_driver", "signage_missing", "already_paid"}},
		{Name: "additional_details", Label: "Additional details", Kind: FieldText, MinLen: 10},
	}},
}

var ventaDescriptor = &Descriptor{
	Category: "trafico",
	Variant:  "venta",
	Meta: Meta{
		Title:       "Vehicle sale notice",
		Description: "Notify the traffic authority of a private vehicle sale.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "buyer_full_name", Label: "Buyer full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "buyer_dni", Label: "Buyer ID number (DNI/NIE)", Kind: FieldText},
		{Name: "vehicle_plate", Label: "Vehicle plate", Kind: FieldText, Required: true},
		{Name: "sale_date", Label: "Sale date", Kind: FieldText, Required: true},
		{Name: "sale_price", Label: "Sale price", Kind: FieldText},
	}},
}

func init() {
	multaDescriptor.Compile = compileMulta
	ventaDescriptor.Compile = compileVenta
	register(multaDescriptor)
	register(ventaDescriptor)
}

func compileMulta(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, multaDescriptor, form)
	w.addLine(multaStrategy)
	if reason, ok := form.String("appeal_reason"); ok {
		switch reason {
		case "no_evidence":
			w.addLine(multaNoEvidenceLine)
		case "not_driver":
			w.addLine(multaNotDriverLine)
		case "signage_missing":
			w.addLine(multaSignageLine)
		case "already_paid":
			w.addLine(multaAlreadyPaidLine)
		}
	}
	return w.String()
}

func compileVenta(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, ventaDescriptor, form)
	w.addLine(ventaStrategy)
	return w.String()
}
