package embed

import (
	"fmt"
	"strings"
)

// Variant selects which shape of the data model decoded documents must
// follow.
type Variant int

const (
	// VariantStrict requires both text and url whenever a title is present.
	VariantStrict Variant = iota
	// VariantRelaxed makes every title part optional.
	VariantRelaxed
)

// String returns the configuration name of the variant
func (v Variant) String() string {
	switch v {
	case VariantStrict:
		return "strict"
	case VariantRelaxed:
		return "relaxed"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant parses a variant name. The empty string selects the strict
// variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return VariantStrict, nil
	case "relaxed":
		return VariantRelaxed, nil
	default:
		return VariantStrict, fmt.Errorf("unknown embed variant %q (expected strict or relaxed)", s)
	}
}
