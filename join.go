package bemgen

import "strings"

// JoinClasses merges class strings into one, dropping empty chunks and
// repeated tokens. The first occurrence of each token keeps its position.
//
//	JoinClasses("btn btn--sm", "", "btn card") // "btn btn--sm card"
func JoinClasses(chunks ...string) string {
	seen := make(map[string]bool)
	tokens := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		for _, token := range strings.Fields(chunk) {
			if seen[token] {
				continue
			}
			seen[token] = true
			tokens = append(tokens, token)
		}
	}

	return strings.Join(tokens, " ")
}
