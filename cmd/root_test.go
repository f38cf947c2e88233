package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/vipcxj/randfactory/internal/config"
	"github.com/vipcxj/randfactory/internal/sample"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"SOURCE", "SEED", "COUNT", "FORMAT", "SHELL", "NAME", "PERSIST"} {
		t.Setenv(config.EnvPrefix+key, "")
	}
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntCmd_JSONInRange(t *testing.T) {
	out, _, err := run(t, "int", "[3,9]", "--count", "200", "--format", "json", "--seed", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := gjson.Parse(out).Array()
	if len(values) != 200 {
		t.Fatalf("got %d values, want 200", len(values))
	}
	for _, v := range values {
		if n := v.Uint(); n < 3 || n > 9 {
			t.Fatalf("value %d outside [3,9]", n)
		}
	}
}

func TestIntCmd_SeedIsReproducible(t *testing.T) {
	first, _, err := run(t, "int", "[0,1000000]", "-c", "5", "--seed", "77")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := run(t, "int", "[0,1000000]", "-c", "5", "--seed", "77")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("seeded runs differ:\n%s\n%s", first, second)
	}
	if lines := strings.Split(strings.TrimSpace(first), "\n"); len(lines) != 5 {
		t.Fatalf("got %d lines, want 5", len(lines))
	}
}

func TestIntCmd_InvalidRange(t *testing.T) {
	out, _, err := run(t, "int", "[10,5]")
	if !errors.Is(err, sample.ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
	if out != "" {
		t.Fatalf("stdout = %q, want nothing", out)
	}
}

func TestFloatCmd_InRange(t *testing.T) {
	out, _, err := run(t, "float", "[-0.5,0.5]", "-c", "100", "-f", "json", "--source", "crypto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range gjson.Parse(out).Array() {
		if f := v.Float(); f < -0.5 || f > 0.5 {
			t.Fatalf("value %v outside [-0.5,0.5]", f)
		}
	}
}

func TestPointCmd_FixedX(t *testing.T) {
	out, _, err := run(t, "point", "--x", "3", "--y", "[0,1]", "-c", "50", "-f", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points := gjson.Parse(out).Array()
	if len(points) != 50 {
		t.Fatalf("got %d points, want 50", len(points))
	}
	for _, p := range points {
		if p.Get("x").Float() != 3 {
			t.Fatalf("x = %v, want 3", p.Get("x"))
		}
		if y := p.Get("y").Float(); y < 0 || y > 1 {
			t.Fatalf("y = %v outside [0,1]", y)
		}
	}
}

func TestPointCmd_BothRanges(t *testing.T) {
	out, _, err := run(t, "point", "--x", "[0,640]", "--y", "[0,480]", "-c", "20", "-f", "json", "--seed", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range gjson.Parse(out).Array() {
		x, y := p.Get("x").Float(), p.Get("y").Float()
		if x < 0 || x > 640 || y < 0 || y > 480 {
			t.Fatalf("point (%v, %v) out of range", x, y)
		}
	}
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randfactory.yaml")
	if err := os.WriteFile(path, []byte("format: env\nshell: sh\nname: roll\ncount: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "--config", path, "int", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ROLL='4,4'\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}

	out, _, err = run(t, "--config", path, "int", "4", "--format", "plain", "-c", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "4\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestVerboseLogsSource(t *testing.T) {
	_, stderr, err := run(t, "int", "1", "-v", "--seed", "12")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "kind=seeded") || !strings.Contains(stderr, "seed=12") {
		t.Fatalf("stderr = %q, want source diagnostics", stderr)
	}
}

func TestFlagErrors(t *testing.T) {
	cases := [][]string{
		{"int"},
		{"int", "(1,5)"},
		{"int", "5", "--count", "0"},
		{"int", "5", "--format", "xml"},
		{"int", "5", "--source", "dice"},
		{"point", "--x", "1"},
		{"point", "--x", "1", "--y", "[3,1]"},
		{"replay", "does-not-exist.yaml"},
	}
	for _, args := range cases {
		if _, _, err := run(t, args...); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}
