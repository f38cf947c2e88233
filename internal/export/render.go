//go:generate go run github.com/dmarkham/enumer -type=Format -trimprefix=Format -transform=kebab -text
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vipcxj/randfactory/internal/sample"
)

// Format selects how drawn values are written.
type Format int

const (
	// FormatPlain writes one value per line; points as "x y".
	FormatPlain Format = iota
	// FormatJSON writes a single JSON array.
	FormatJSON
	// FormatEnv writes shell assignments for eval/source.
	FormatEnv
)

// DefaultName is the variable name used by FormatEnv when none is given.
const DefaultName = "RANDOM_VALUE"

type Options struct {
	Format  Format
	Shell   ShellType
	Name    string
	Persist bool
}

func (o Options) varName(suffix string) string {
	name := EnvName(o.Name)
	if name == "" {
		name = DefaultName
	}
	if suffix != "" {
		name += "_" + suffix
	}
	return name
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func mapStrings[T any](values []T, f func(T) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = f(v)
	}
	return out
}

// WriteUints writes integer draws to w.
func WriteUints(w io.Writer, opts Options, values []uint32) error {
	return writeScalars(w, opts, values, mapStrings(values, formatUint))
}

// WriteFloats writes floating-point draws to w.
func WriteFloats(w io.Writer, opts Options, values []float64) error {
	return writeScalars(w, opts, values, mapStrings(values, formatFloat))
}

func writeScalars(w io.Writer, opts Options, raw any, text []string) error {
	switch opts.Format {
	case FormatPlain:
		return writeLines(w, text)
	case FormatJSON:
		return writeJSON(w, raw)
	case FormatEnv:
		return writeEnv(w, opts, map[string]string{"": strings.Join(text, ",")}, []string{""})
	default:
		return fmt.Errorf("unsupported output format: %v", opts.Format)
	}
}

// WritePoints writes point draws to w. FormatEnv emits NAME_X and NAME_Y.
func WritePoints(w io.Writer, opts Options, points []sample.Point[float64]) error {
	switch opts.Format {
	case FormatPlain:
		return writeLines(w, mapStrings(points, func(p sample.Point[float64]) string {
			return formatFloat(p.X) + " " + formatFloat(p.Y)
		}))
	case FormatJSON:
		return writeJSON(w, points)
	case FormatEnv:
		xs := mapStrings(points, func(p sample.Point[float64]) string { return formatFloat(p.X) })
		ys := mapStrings(points, func(p sample.Point[float64]) string { return formatFloat(p.Y) })
		return writeEnv(w, opts, map[string]string{
			"X": strings.Join(xs, ","),
			"Y": strings.Join(ys, ","),
		}, []string{"X", "Y"})
	default:
		return fmt.Errorf("unsupported output format: %v", opts.Format)
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal values to json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeEnv emits one assignment per suffix, in the given order.
func writeEnv(w io.Writer, opts Options, values map[string]string, suffixes []string) error {
	shellType, err := ResolveShellType(opts.Shell)
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		line, err := Assignment(shellType, opts.varName(suffix), values[suffix], opts.Persist)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	return writeLines(w, lines)
}
