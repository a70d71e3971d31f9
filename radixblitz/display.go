package radixblitz

// Display is the two line character display capability. Writes are
// fire-and-forget; there is nothing to read back and nothing to fail.
type Display interface {
	ClearAndShow(line1, line2 string)
}

// lcd is the in-memory model of the 16x2 panel the draw layer renders.
type lcd struct {
	line1 string
	line2 string
}

func (l *lcd) ClearAndShow(line1, line2 string) {
	l.line1 = clipToCols(line1)
	l.line2 = clipToCols(line2)
}

func (l *lcd) Lines() (string, string) {
	return l.line1, l.line2
}

func clipToCols(line string) string {
	if len(line) > lcdCols {
		return line[:lcdCols]
	}
	return line
}
