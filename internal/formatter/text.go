package formatter

import "strings"

// LineWidth is the column after which rule text gets a soft break
const LineWidth = 54

var (
	smallTextStripper = strings.NewReplacer("[sup]", "", "[/sup]", "")
	quoteNormalizer   = strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"”", "''",
		"“", "''",
		`"`, "''",
	)
)

// InsertLineBreaks breaks long text for the tabletop renderer, which
// overflows lines much past LineWidth characters. Whenever a line reaches
// LineWidth runes its last space becomes "\r\n". A line with no space keeps
// growing until one turns up. Text shorter than LineWidth is returned as is.
func InsertLineBreaks(s string) string {
	if len([]rune(s)) < LineWidth {
		return s
	}

	out := make([]rune, 0, len(s)+8)
	lineStart := 0
	for _, r := range s {
		out = append(out, r)
		if r == '\n' {
			lineStart = len(out)
			continue
		}
		if len(out)-lineStart < LineWidth {
			continue
		}
		for j := len(out) - 1; j >= lineStart; j-- {
			if out[j] != ' ' {
				continue
			}
			tail := append([]rune{'\r', '\n'}, out[j+1:]...)
			out = append(out[:j], tail...)
			lineStart = j + 2
			break
		}
	}
	return string(out)
}

// StripSmallText removes every [sup] and [/sup] marker
func StripSmallText(s string) string {
	return smallTextStripper.Replace(s)
}

// NormalizeQuotes swaps typographic quotes for the straight forms the
// tabletop renderer can show. Double quotes become two single quotes, which
// is how inch marks are written in range profiles.
func NormalizeQuotes(s string) string {
	return quoteNormalizer.Replace(s)
}
