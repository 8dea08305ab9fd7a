package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Allergen is one of the fixed dietary-hazard tags attachable to a recipe.
type Allergen int

// The 13 defined allergen tags. Ids are stable and part of the API contract.
const (
	AllergenGluten Allergen = iota + 1
	AllergenNuts
	AllergenDairy
	AllergenEggs
	AllergenSoy
	AllergenFish
	AllergenShellfish
	AllergenSesame
	AllergenSulfites
	AllergenMustard
	AllergenCelery
	AllergenPeanuts
	AllergenLupin
)

var allergenNames = map[Allergen]string{
	AllergenGluten:    "Gluten",
	AllergenNuts:      "Nuts",
	AllergenDairy:     "Dairy",
	AllergenEggs:      "Eggs",
	AllergenSoy:       "Soy",
	AllergenFish:      "Fish",
	AllergenShellfish: "Shellfish",
	AllergenSesame:    "Sesame",
	AllergenSulfites:  "Sulfites",
	AllergenMustard:   "Mustard",
	AllergenCelery:    "Celery",
	AllergenPeanuts:   "Peanuts",
	AllergenLupin:     "Lupin",
}

// Valid reports whether a is one of the defined tags.
func (a Allergen) Valid() bool {
	_, ok := allergenNames[a]
	return ok
}

func (a Allergen) String() string {
	if name, ok := allergenNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Allergen(%d)", int(a))
}

// ParseAllergen maps a stored name back to its tag. Unknown tokens are a
// decode error, never silently skipped.
func ParseAllergen(s string) (Allergen, error) {
	for a, name := range allergenNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown allergen %q", s)
}

// AllergenList is the set of allergen tags on a recipe, persisted as a
// comma-separated string of tag names.
type AllergenList []Allergen

// Value implements driver.Valuer.
func (l AllergenList) Value() (driver.Value, error) {
	names := make([]string, len(l))
	for i, a := range l {
		if !a.Valid() {
			return nil, fmt.Errorf("encode allergens: invalid tag %d", int(a))
		}
		names[i] = a.String()
	}
	return strings.Join(names, ","), nil
}

// Scan implements sql.Scanner.
func (l *AllergenList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("decode allergens: unsupported type %T", src)
	}

	if raw == "" {
		*l = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(AllergenList, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		a, err := ParseAllergen(p)
		if err != nil {
			return fmt.Errorf("decode allergens: %w", err)
		}
		out = append(out, a)
	}
	*l = out
	return nil
}
