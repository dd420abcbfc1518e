package pricing

import "strings"

// kefirNameFragment drives the kefir duration discount. The rule is
// intentionally name-based rather than a catalog flag: any addon whose
// display name contains this fragment, in any casing, gets the discount.
// Downstream catalogs may rely on this exact matching, so do not replace
// it with a category or boolean without auditing them.
const kefirNameFragment = "kefir"

// IsKefirAddon reports whether the addon name qualifies for the kefir
// duration discount.
func IsKefirAddon(name string) bool {
	return strings.Contains(strings.ToLower(name), kefirNameFragment)
}
