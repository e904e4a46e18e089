//go:build unit || e2e

package testutil

// Field builds a mutation for DtoMap. A nil value deletes the key,
// which is how validation tests express an omitted field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
