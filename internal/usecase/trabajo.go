package usecase

import "github.com/reclamo-app/go-reclamo-backend/internal/domain"

// Compound category "trabajo". Variants: "salarios" (unpaid wages claim),
// "baja" (voluntary resignation notice), "vacaciones" (vacation request).

const (
	salariosStrategy = "Drafting instructions: write a formal extrajudicial claim for unpaid wages, warning that " +
		"absent payment within the statutory term the applicant will file a claim before the labor court, " +
		"with the ten percent annual interest on wage debts."
	bajaStrategy = "Drafting instructions: write a formal voluntary resignation letter, stating the final working " +
		"day unambiguously and requesting the settlement document (finiquito) and the company certificate."
	vacacionesStrategy = "Drafting instructions: write a formal written request for the vacation days, noting that " +
		"the dates must be known at least two months in advance and asking for written confirmation."
)

// Conditional sentences keyed on each variant's discriminant field.
const (
	salariosTemporalLine = "Include the end-of-contract settlement for the temporary contract in the amount claimed."
	bajaImmediateLine    = "Acknowledge that the employer may deduct from the settlement the wages for the " +
		"notice days not worked."
	bajaStatutoryLine = "State that the fifteen-day statutory notice period is being observed."
)

var salariosDescriptor = &Descriptor{
	Category: "trabajo",
	Variant:  "salarios",
	Meta: Meta{
		Title:       "Unpaid wages claim",
		Description: "Claim wages the employer has failed to pay.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "employer_name", Label: "Employer name", Kind: FieldText},
		{Name: "position", Label: "Position held", Kind: FieldText},
		{Name: "amount_owed", Label: "Amount owed", Kind: FieldText, Required: true},
		{Name: "periods_owed", Label: "Unpaid periods", Kind: FieldText},
		{Name: "last_payment_date", Label: "Last payment received on", Kind: FieldText},
		{Name: "still_employed", Label: "Still employed by the company", Kind: FieldYesNo},
		{Name: "contract_type", Label: "Contract type", Kind: FieldEnum, Discriminant: true,
			Enum: []string{"indefinido", "temporal"}},
	}},
}

var bajaDescriptor = &Descriptor{
	Category: "trabajo",
	Variant:  "baja",
	Meta: Meta{
		Title:       "Resignation notice",
		Description: "Give formal notice of voluntary resignation.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "applicant_dni", Label: "Applicant ID number (DNI/NIE)", Kind: FieldText},
		{Name: "employer_name", Label: "Employer name", Kind: FieldText},
		{Name: "position", Label: "Position held", Kind: FieldText},
		{Name: "start_date", Label: "Employment started on", Kind: FieldText},
		{Name: "last_working_day", Label: "Last working day", Kind: FieldText, Required: true},
		{Name: "notice_given", Label: "Notice period", Kind: FieldEnum, Discriminant: true,
			Enum: []string{"statutory", "immediate"}},
	}},
}

var vacacionesDescriptor = &Descriptor{
	Category: "trabajo",
	Variant:  "vacaciones",
	Meta: Meta{
		Title:       "Vacation request",
		Description: "Formally request accrued vacation days.",
	},
	Schema: Schema{Fields: []FieldSpec{
		{Name: "applicant_full_name", Label: "Applicant full name", Kind: FieldText, Required: true, MinLen: 3},
		{Name: "employer_name", Label: "Employer name", Kind: FieldText},
		{Name: "position", Label: "Position held", Kind: FieldText},
		{Name: "requested_from", Label: "Vacation requested from", Kind: FieldText, Required: true},
		{Name: "requested_until", Label: "Vacation requested until", Kind: FieldText, Required: true},
		{Name: "days_accrued", Label: "Vacation days accrued", Kind: FieldText},
		{Name: "prior_request_denied", Label: "A previous request was denied", Kind: FieldYesNo},
	}},
}

func init() {
	salariosDescriptor.Compile = compileSalarios
	bajaDescriptor.Compile = compileBaja
	vacacionesDescriptor.Compile = compileVacaciones
	register(salariosDescriptor)
	register(bajaDescriptor)
	register(vacacionesDescriptor)
}

func compileSalarios(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, salariosDescriptor, form)
	w.addLine(salariosStrategy)
	if ct, ok := form.String("contract_type"); ok && ct == "temporal" {
		w.addLine(salariosTemporalLine)
	}
	return w.String()
}

func compileBaja(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, bajaDescriptor, form)
	w.addLine(bajaStrategy)
	if notice, ok := form.String("notice_given"); ok {
		switch notice {
		case "immediate":
			w.addLine(bajaImmediateLine)
		case "statutory":
			w.addLine(bajaStatutoryLine)
		}
	}
	return w.String()
}

func compileVacaciones(form TypedForm, rec *domain.Recipient) string {
	var w factWriter
	w.addRecipient(rec)
	fieldLines(&w, vacacionesDescriptor, form)
	w.addLine(vacacionesStrategy)
	return w.String()
}
