package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestDemoFrame(t *testing.T) {
	f := demoFrame()
	if f.Len() != 3 {
		t.Fatalf("demo frame has %d paths, want 3", f.Len())
	}
	f.Update()
	if f.PointCount() == 0 {
		t.Error("demo frame produced no points")
	}
	if f.PathColor(0) == f.PathColor(1) {
		t.Error("demo paths share a color")
	}
}

func TestPrintDump(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	printDump(&buf, out, "params:\na : 1\n\nstats:\nb : 2\n")

	want := "params:\na : 1\n\nstats:\nb : 2\n"
	if got := buf.String(); got != want {
		t.Errorf("printDump() = %q, want %q", got, want)
	}
}

func TestRun_WritesPreview(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "frame.toml")
	doc := "[[paths]]\npoints = [[0.1, 0.1], [0.9, 0.9]]\n"
	if err := os.WriteFile(in, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, stream := range []bool{false, true} {
		png := filepath.Join(dir, "preview.png")
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
		err := run(&buf, out, options{in: in, png: png, size: 32, stream: stream})
		if err != nil {
			t.Fatalf("run(stream=%v) = %v", stream, err)
		}
		if !strings.Contains(buf.String(), "stats.paths : 1") {
			t.Errorf("stream=%v: dump not written to the given writer:\n%s", stream, buf.String())
		}
		data, err := os.ReadFile(png)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "\x89PNG") {
			t.Errorf("stream=%v: preview is not a PNG", stream)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	if err := run(&buf, out, options{in: filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("run() with missing input succeeded")
	}
}
