package storefront

// NormalizeIdentity resolves the two identifier fields a record can carry
// into one canonical identifier: the store-native "_id" wins when both are
// present, the display-native "id" is the fallback. A record with neither
// field passes through unchanged and must be treated as unidentifiable by
// callers (skipped, never indexed).
//
// Pure function: the input is copied, never mutated, and there are no error
// conditions. It is applied once at the cache boundary; downstream code
// relies on ID without re-checking DocID.
func NormalizeIdentity(p Product) Product {
	switch {
	case p.DocID != "":
		p.ID = p.DocID
	case p.ID != "":
		// already canonical
	}
	return p
}

// CanonicalID returns the canonical identifier for a record, or "" when the
// record is unidentifiable.
func CanonicalID(p Product) string {
	if p.DocID != "" {
		return p.DocID
	}
	return p.ID
}

// matchesID reports whether a product is addressed by the given identifier
// under either key field. Lookups accept both because callers may hold an
// identifier taken from a record that predates normalization.
func matchesID(p Product, id string) bool {
	if id == "" {
		return false
	}
	return p.ID == id || p.DocID == id
}
