package flight

// HighScore is the running maximum of distance travelled. It never decreases.
type HighScore struct {
	best float64
}

// NewHighScore seeds the tracker with a previously recorded best.
func NewHighScore(best float64) HighScore {
	if best < 0 {
		best = 0
	}
	return HighScore{best: best}
}

// Observe folds a distance into the maximum and reports whether it improved.
func (h *HighScore) Observe(distance float64) bool {
	if distance > h.best {
		h.best = distance
		return true
	}
	return false
}

// Best returns the highest distance seen.
func (h HighScore) Best() float64 { return h.best }
