// Package directory provides the static recipient directory: a compiled-in
// mapping from company slug to the legal entity a generated document is
// addressed to. An unknown slug simply resolves to nothing; documents for
// unlisted recipients carry no recipient lines.
package directory

import (
	"strings"

	"github.com/reclamo-app/go-reclamo-backend/internal/domain"
)

// entries is the fixed recipient dataset. Slugs are lowercase; Lookup
// normalizes case so "Vodafone" and "vodafone" resolve identically.
var entries = map[string]domain.Recipient{
	"vodafone": {
		LegalName: "Vodafone España, S.A.U.",
		TaxID:     "A80907397",
		Address:   "Avenida de América 115, 28042 Madrid",
	},
	"movistar": {
		LegalName: "Telefónica de España, S.A.U.",
		TaxID:     "A82018474",
		Address:   "Gran Vía 28, 28013 Madrid",
	},
	"orange": {
		LegalName: "Orange Espagne, S.A.U.",
		TaxID:     "A82009812",
		Address:   "Paseo del Club Deportivo 1, 28223 Pozuelo de Alarcón",
	},
	"endesa": {
		LegalName: "Endesa Energía, S.A.U.",
		TaxID:     "A81948077",
		Address:   "Calle Ribera del Loira 60, 28042 Madrid",
	},
	"iberdrola": {
		LegalName: "Iberdrola Clientes, S.A.U.",
		TaxID:     "A95758389",
		Address:   "Plaza Euskadi 5, 48009 Bilbao",
	},
	"naturgy": {
		LegalName: "Naturgy Iberia, S.A.",
		TaxID:     "A08431090",
		Address:   "Avenida de San Luis 77, 28033 Madrid",
	},
	// City authorities used as entity context by compound slugs
	// ("multa-madrid" → "madrid").
	"madrid": {
		LegalName: "Ayuntamiento de Madrid",
		TaxID:     "P2807900B",
		Address:   "Plaza de Cibeles 1, 28014 Madrid",
	},
	"barcelona": {
		LegalName: "Ajuntament de Barcelona",
		TaxID:     "P0801900B",
		Address:   "Plaça de Sant Jaume 1, 08002 Barcelona",
	},
	"valencia": {
		LegalName: "Ajuntament de València",
		TaxID:     "P4625200C",
		Address:   "Plaça de l'Ajuntament 1, 46002 València",
	},
	"dgt": {
		LegalName: "Dirección General de Tráfico",
		TaxID:     "Q2816003D",
		Address:   "Calle Josefa Valcárcel 28, 28071 Madrid",
	},
}

// Lookup resolves a company slug to its recipient entity. The boolean is
// false for empty or unknown slugs.
func Lookup(slug string) (domain.Recipient, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return domain.Recipient{}, false
	}
	rec, ok := entries[slug]
	return rec, ok
}
