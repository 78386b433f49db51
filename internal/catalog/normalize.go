package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"pygextintores/internal/domain"
)

// Normalize maps free-form descriptor text onto the closed category set.
// Matching is case-insensitive substring, first rule wins; anything
// unrecognized sells as an extinguisher.
func Normalize(descriptor string) domain.Category {
	d := strings.ToLower(descriptor)
	switch {
	case strings.Contains(d, "mantencion") || strings.Contains(d, "mantención") || strings.Contains(d, "recarga"):
		return domain.CategoryMaintenance
	case strings.Contains(d, "accesorio") || strings.Contains(d, "señal") || strings.Contains(d, "senal"):
		return domain.CategoryAccessories
	default:
		return domain.CategoryExtinguishers
	}
}

// Slugify lowercases, folds diacritics, and collapses everything else into
// single dashes: "Extintor CO2 2kg Elite" -> "extintor-co2-2kg-elite".
func Slugify(value string) string {
	decomposed := norm.NFD.String(strings.ToLower(value))
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Hydrate fills the derived fields of a stored or seed record: the category
// is recomputed from the record's own text, the slug defaults to the
// slugified name, short and long descriptions cross-fill, and specs default
// to an empty list.
func Hydrate(p domain.Product) domain.Product {
	p.Category = Normalize(strings.Join([]string{string(p.Category), p.Name, p.Capacity, p.Description}, " "))
	if p.Slug == "" {
		p.Slug = Slugify(p.Name)
	}
	if p.ShortDesc == "" {
		p.ShortDesc = p.Description
	}
	if p.Description == "" {
		p.Description = p.ShortDesc
	}
	if p.Specs == nil {
		p.Specs = []domain.ProductSpec{}
	}
	return p
}
