package slug

import (
	"context"
	"fmt"
	"strings"
)

// accents folds the Spanish diacritics that show up in club and product
// names. Input is lowercased before folding.
var accents = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
	"ñ", "n",
)

// Make builds a URL slug from a display name: lowercase, accents folded,
// anything outside [a-z0-9] collapsed into single hyphens.
func Make(name string) string {
	lowered := accents.Replace(strings.ToLower(strings.TrimSpace(name)))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// ExistsFunc reports whether a candidate slug is already taken.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// MakeUnique returns the first free slug for name, suffixing -2, -3, ...
// when the base form is taken.
func MakeUnique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Make(name)
	candidate := base
	counter := 2
	for {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
