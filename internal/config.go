package internal

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// SplitOrigins parses a comma separated FRONTEND_URL value.
func SplitOrigins(raw string) []string {
	return lo.FilterMap(strings.Split(raw, ","), func(origin string, _ int) (string, bool) {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		return origin, origin != ""
	})
}
