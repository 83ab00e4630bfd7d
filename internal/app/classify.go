package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"hanmoa/internal/hangul"
)

// writeClassification prints one line per rune: the rune, its code point,
// its positional role and its category.
func writeClassification(w io.Writer, r io.Reader) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	for {
		ch, _, err := in.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if ch == '\n' || ch == '\r' {
			continue
		}
		fmt.Fprintf(out, "%q\tU+%04X\t%s\t%s\t%t\n", ch, ch, hangul.RoleOf(ch), hangul.Classify(ch), hangul.IsKorean(ch))
	}
	return out.Flush()
}
