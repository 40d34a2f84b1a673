package domain

// Card is an immutable playable song supplied by the catalog.
type Card struct {
	ID         string
	Title      string
	Artist     string
	Year       int
	PreviewURL string
}

// ValidatePlacement reports whether card may be inserted at position in timeline.
// Neighbours with the same year never make a placement invalid.
func ValidatePlacement(timeline []Card, card Card, position int) bool {
	if position < 0 || position > len(timeline) {
		return false
	}
	if position > 0 && timeline[position-1].Year > card.Year {
		return false
	}
	if position < len(timeline) && card.Year > timeline[position].Year {
		return false
	}
	return true
}

// IsSorted reports whether the timeline is in non-decreasing year order.
func IsSorted(timeline []Card) bool {
	for i := 1; i < len(timeline); i++ {
		if timeline[i-1].Year > timeline[i].Year {
			return false
		}
	}
	return true
}

func insertCard(timeline []Card, position int, card Card) []Card {
	out := make([]Card, 0, len(timeline)+1)
	out = append(out, timeline[:position]...)
	out = append(out, card)
	return append(out, timeline[position:]...)
}
