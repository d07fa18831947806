package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

// fixed prints v with four decimals, never as -0.0000.
func fixed(v float64) string {
	if math.Abs(v) < 5e-5 {
		v = 0.0
	}
	return fmt.Sprintf("%.4f", v)
}

func encodeText(w io.Writer, report *Report) error {
	_, err := fmt.Fprintf(w, "scene %s: %d shapes, %d pairs, %d contacts, digest %s\n",
		report.Scene, report.Shapes, report.Pairs, len(report.Contacts), report.Digest)
	if err != nil {
		return err
	}

	for _, c := range report.Contacts {
		_, err := fmt.Fprintf(w, "%s/%s: normal=(%s, %s) point=(%s, %s) depth=%s\n",
			c.A, c.B,
			fixed(c.Normal.X), fixed(c.Normal.Y),
			fixed(c.Point.X), fixed(c.Point.Y),
			fixed(c.Depth),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the report in one of the Format* formats.
func Encode(w io.Writer, report *Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(report)
	case FormatText:
		return encodeText(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
