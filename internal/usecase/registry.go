package usecase

import "strings"

// Compound categories embed the real schema discriminator (the variant) in
// the company slug instead of the category itself. For every other category
// the company value is an opaque business identifier with no bearing on
// which schema applies.
var compoundCategories = map[string]struct{}{
	"trafico": {},
	"trabajo": {},
}

// registry is the closed descriptor table, keyed by Descriptor.Key().
// It is populated by init() in the per-use-case files and never mutated
// afterwards.
var registry = map[string]*Descriptor{}

func register(d *Descriptor) {
	key := d.Key()
	if _, dup := registry[key]; dup {
		panic("usecase: duplicate descriptor " + key)
	}
	registry[key] = d
}

// Resolve maps a (category, company) pair to its descriptor.
//
// Direct categories dispatch on the category alone. Compound categories
// ("trafico", "trabajo") dispatch on the variant embedded in company: either
// the bare legacy value ("multa", "salarios", …) or the prefix before the
// first hyphen in a compound slug ("multa-madrid" → "multa"). An
// unrecognized category or variant yields nil, which callers treat as the
// free-text fallback, not an error.
func Resolve(category, company string) *Descriptor {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	if _, compound := compoundCategories[category]; !compound {
		return registry[category]
	}
	variant := VariantOf(company)
	if variant == "" {
		return nil
	}
	return registry[category+"/"+variant]
}

// VariantOf extracts the variant prefix from a compound company slug.
// "multa-madrid" → "multa"; "salarios" → "salarios"; "" → "".
func VariantOf(company string) string {
	company = strings.TrimSpace(company)
	if company == "" {
		return ""
	}
	if i := strings.Index(company, "-"); i >= 0 {
		return company[:i]
	}
	return company
}

// EntitySlug returns the slug used for the recipient-directory lookup.
// For direct categories that is the company itself; for compound slugs it is
// the remainder after the variant prefix ("multa-madrid" → "madrid"), and
// bare legacy variants carry no entity context at all.
func EntitySlug(category, company string) string {
	company = strings.TrimSpace(company)
	if _, compound := compoundCategories[category]; !compound {
		return company
	}
	if i := strings.Index(company, "-"); i >= 0 {
		return company[i+1:]
	}
	return ""
}

// All returns every registered descriptor's metadata keyed by registry key.
// Used by the use-case metadata endpoint for response enrichment.
func All() map[string]Meta {
	out := make(map[string]Meta, len(registry))
	for k, d := range registry {
		out[k] = d.Meta
	}
	return out
}
