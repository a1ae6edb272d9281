package match

// Row is one exported match candidate row: the flat, allocation-friendly
// shape a binding layer (columnar table, dataframe, JSON) consumes
// verbatim, mirroring the teacher's plain-struct JSON response shapes.
type Row struct {
	SourceID       int32
	TargetID       int32
	SharedLen      float64
	SourceWeighted float64
	TargetWeighted float64
}

// Export flattens the store into one Row per candidate, in store
// iteration order (ascending target id, then first-encounter order within
// each target). sourceLens and targetLens must be the engine's full
// per-feature length arrays.
func Export(s *Store, sourceLens, targetLens []float64) ([]Row, bool) {
	entries, ok := s.Get()
	if !ok {
		return nil, false
	}

	n := 0
	for _, e := range entries {
		n += len(e.Candidates)
	}

	rows := make([]Row, 0, n)
	for _, e := range entries {
		targetLen := targetLens[e.TargetIndex]
		for _, c := range e.Candidates {
			sourceLen := sourceLens[c.SourceIndex]
			rows = append(rows, Row{
				SourceID:       int32(c.SourceIndex),
				TargetID:       int32(e.TargetIndex),
				SharedLen:      c.SharedLen,
				SourceWeighted: c.SharedLen / sourceLen,
				TargetWeighted: c.SharedLen / targetLen,
			})
		}
	}
	return rows, true
}
