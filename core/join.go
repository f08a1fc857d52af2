package core

// KeyFunc extracts a key from a value.
type KeyFunc[K comparable, V any] func(V) K

// OrderByKeys returns the values whose key is in keys, in key order.
// Keys without a value are skipped.
func OrderByKeys[K comparable, V any](keys []K, values []V, keyFn KeyFunc[K, V]) []V {
	lookup := make(map[K]V, len(values))
	for _, v := range values {
		lookup[keyFn(v)] = v
	}
	result := make([]V, 0, len(keys))
	for _, key := range keys {
		if v, ok := lookup[key]; ok {
			result = append(result, v)
		}
	}
	return result
}

// GroupByKey groups values by a key function, keeping input order within
// each group.
func GroupByKey[K comparable, V any](values []V, keyFn KeyFunc[K, V]) map[K][]V {
	result := make(map[K][]V)
	for _, v := range values {
		key := keyFn(v)
		result[key] = append(result[key], v)
	}
	return result
}
