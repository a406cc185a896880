package postscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/randalmurphal/figkit/figure"
)

// Encode writes f to w in bracket notation:
//
//	[(open)[[x y]...]]  [(closed)[[x y]...]]  [(compose)[<figure>...]]
func Encode(w io.Writer, f figure.Figure) error {
	bw := bufio.NewWriter(w)
	if err := encodeFigure(bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeToString returns the bracket notation of f.
func EncodeToString(f figure.Figure) (string, error) {
	var b strings.Builder
	if err := Encode(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeFigure(w *bufio.Writer, f figure.Figure) error {
	switch f.Kind {
	case figure.KindOpen, figure.KindClosed, figure.KindComposed:
	default:
		return fmt.Errorf("%w: %w: %q", ErrEncode, figure.ErrUnknownKind, f.Kind)
	}

	w.WriteString("[(")
	w.WriteString(string(f.Kind))
	w.WriteString(")[")
	if f.Kind == figure.KindComposed {
		for _, child := range f.Figures {
			if err := encodeFigure(w, child); err != nil {
				return err
			}
		}
	} else {
		for _, p := range f.Points {
			encodePoint(w, p)
		}
	}
	_, err := w.WriteString("]]")
	return err
}

func encodePoint(w *bufio.Writer, p figure.Point) {
	var buf [48]byte
	b := append(buf[:0], '[')
	b = strconv.AppendInt(b, int64(p.X), 10)
	b = append(b, ' ')
	b = strconv.AppendInt(b, int64(p.Y), 10)
	b = append(b, ']')
	w.Write(b)
}
