package setcover

// Verify checks that cover is a valid cover of sets: every ID names a set,
// no ID repeats and the union of the chosen sets equals the universe.
func Verify[K comparable, T comparable](sets map[K][]T, cover []K) error {
	covered := make(map[T]struct{})
	chosen := make(map[K]struct{}, len(cover))
	for _, id := range cover {
		elements, ok := sets[id]
		if !ok {
			return &ErrIncompleteCover{UnknownID: id}
		}
		if _, dup := chosen[id]; dup {
			return &ErrDuplicateSetID{ID: id}
		}
		chosen[id] = struct{}{}
		for _, e := range elements {
			covered[e] = struct{}{}
		}
	}

	missing := make(map[T]struct{})
	for _, elements := range sets {
		for _, e := range elements {
			if _, ok := covered[e]; !ok {
				missing[e] = struct{}{}
			}
		}
	}
	if len(missing) > 0 {
		return &ErrIncompleteCover{Missing: len(missing)}
	}
	return nil
}
