// Package dockername maps git branch names to Docker image name components.
//
// A name component may contain lowercase letters, digits and separators. A
// separator is a period, one or two underscores, or one or more hyphens, and a
// component may not start or end with a separator.
// See https://docs.docker.com/engine/reference/commandline/tag/#extended-description
package dockername

import "strings"

// transliterations maps German umlauts and sharp s to their ASCII spelling.
var transliterations = map[rune]string{
	'ä': "ae",
	'Ä': "ae",
	'ü': "ue",
	'Ü': "ue",
	'ö': "oe",
	'Ö': "oe",
	'ß': "ss",
}

// NormalizeRune maps a single rune to its replacement in an image name.
// Runes that have no mapping become "_".
func NormalizeRune(r rune) string {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
		return string(r)
	case r >= 'A' && r <= 'Z':
		return string(r + ('a' - 'A'))
	}
	if s, ok := transliterations[r]; ok {
		return s
	}
	return "_"
}

// ImageName converts a branch name into a Docker image name component.
//
// A leading separator is escaped with an "a" prefix, a second consecutive "."
// and a third consecutive "_" are broken up by an inserted "a". Trailing
// separators are kept as they are, so the result may end with ".", "_" or "-".
func ImageName(branchName string) string {
	if branchName == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(branchName) + 2)
	dots, underscores := 0, 0
	first := true
	for _, r := range branchName {
		c := NormalizeRune(r)
		if first {
			first = false
			switch c {
			case ".":
				b.WriteString("a.")
				dots++
			case "_":
				b.WriteString("a_")
				underscores++
			case "-":
				b.WriteString("a-")
			default:
				b.WriteString(c)
			}
			continue
		}
		switch c {
		case ".":
			dots++
			if dots > 1 {
				b.WriteByte('a')
				dots = 0
			}
			b.WriteByte('.')
		case "_":
			underscores++
			if underscores > 2 {
				b.WriteByte('a')
				// one underscore follows the inserted "a"
				underscores = 1
			}
			b.WriteByte('_')
		default:
			b.WriteString(c)
			dots, underscores = 0, 0
		}
	}
	return b.String()
}
