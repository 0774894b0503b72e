package formatter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/opr-tts-api/internal/formatter"
)

func TestInsertLineBreaksShortTextUnchanged(t *testing.T) {
	in := "Must take X wounds before being killed."
	assert.Equal(t, in, formatter.InsertLineBreaks(in))
}

func TestInsertLineBreaksBreaksAtPrecedingSpace(t *testing.T) {
	// 120 characters, the only spaces sit at 40 and 90
	in := strings.Repeat("a", 40) + " " + strings.Repeat("b", 49) + " " + strings.Repeat("c", 29)
	require.Len(t, in, 120)

	out := formatter.InsertLineBreaks(in)

	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("a", 40), lines[0])
	assert.Equal(t, strings.Repeat("b", 49), lines[1])
	assert.Equal(t, strings.Repeat("c", 29), lines[2])
	assert.LessOrEqual(t, len(lines[0]), formatter.LineWidth)
}

func TestInsertLineBreaksEveryLineWithinWidth(t *testing.T) {
	in := "This model and its unit get +1 to Defense rolls against shooting, " +
		"and may ignore the first wound it takes each round if it did not move."

	out := formatter.InsertLineBreaks(in)

	assert.Equal(t, in, strings.ReplaceAll(out, "\r\n", " "))
	for _, line := range strings.Split(out, "\r\n") {
		assert.Less(t, len(line), formatter.LineWidth, line)
	}
}

func TestInsertLineBreaksWithoutSpaces(t *testing.T) {
	in := strings.Repeat("x", 60)
	assert.Equal(t, in, formatter.InsertLineBreaks(in))

	in = strings.Repeat("x", 60) + " tail"
	assert.Equal(t, strings.Repeat("x", 60)+"\r\ntail", formatter.InsertLineBreaks(in))
}

func TestStripSmallText(t *testing.T) {
	assert.Equal(t, "[ff0000]Rifle[-]\nbang", formatter.StripSmallText("[ff0000]Rifle[-]\n[sup]bang[/sup]"))
}

func TestNormalizeQuotes(t *testing.T) {
	assert.Equal(t, "(24'', A1) it's ''fine''", formatter.NormalizeQuotes("(24”, A1) it’s \"fine\""))
	assert.Equal(t, "''quoted''", formatter.NormalizeQuotes("“quoted”"))
}
