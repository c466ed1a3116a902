package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/crederauk/svgmapcanvas/internal/config"
	"github.com/crederauk/svgmapcanvas/mapcanvas"
)

const doc = `<map width="100" height="50">
  <transit id="t">
    <path id="p"><straight from="0,25" to="100,25"/></path>
    <stations path="p"><station id="s" location="0.5" label="Mid"/></stations>
  </transit>
</map>`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "map.xml")
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRunRender(t *testing.T) {
	input := writeDoc(t, doc)
	for format, prefix := range map[string]string{
		"svg": "<?xml",
		"png": "\x89PNG",
		"pdf": "%PDF-",
	} {
		var out bytes.Buffer
		err := runRender(&out, input, renderOptions{output: "-", format: format}, zerolog.Nop())
		if err != nil {
			t.Fatalf("%s: %s", format, err)
		}
		if !strings.HasPrefix(out.String(), prefix) {
			t.Errorf("%s: unexpected output start %q", format, out.String()[:5])
		}
	}
}

func TestRunRenderErrors(t *testing.T) {
	input := writeDoc(t, doc)
	if err := runRender(&bytes.Buffer{}, input, renderOptions{format: "gif"}, zerolog.Nop()); err == nil {
		t.Error("expected an error for unknown format")
	}
	if err := runRender(&bytes.Buffer{}, "missing.xml", renderOptions{format: "svg"}, zerolog.Nop()); err == nil {
		t.Error("expected an error for missing input")
	}
	bad := writeDoc(t, `<map><tunnel/></map>`)
	if err := runRender(&bytes.Buffer{}, bad, renderOptions{format: "svg", strict: true}, zerolog.Nop()); err == nil {
		t.Error("expected an error in strict mode")
	}
	neg := writeDoc(t, `<map width="-5"/>`)
	if err := runRender(&bytes.Buffer{}, neg, renderOptions{format: "svg"}, zerolog.Nop()); err == nil {
		t.Error("expected an error for negative size")
	}
}

func TestCommands(t *testing.T) {
	input := writeDoc(t, doc)
	output := filepath.Join(t.TempDir(), "out.svg")

	cfg := &config.Config{Format: "png", Width: 1200, Height: 850, LogLevel: zerolog.Disabled}
	root := newRootCmd(cfg)
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetArgs([]string{"render", input, "-o", output, "--format", "svg"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), ">Mid</text>") {
		t.Errorf("unexpected svg output:\n%s", b)
	}

	var stdout bytes.Buffer
	root = newRootCmd(cfg)
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "mapcanvas dev\n" {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	scene := &mapcanvas.Scene{}

	name := filepath.Join(dir, "out.txt")
	ok := func(w io.Writer, _ *mapcanvas.Scene) error {
		_, err := io.WriteString(w, "map")
		return err
	}
	if err := writeFile(name, scene, ok); err != nil {
		t.Fatal(err)
	}
	if b, err := os.ReadFile(name); err != nil || string(b) != "map" {
		t.Errorf("unexpected file content %q (%v)", b, err)
	}

	errEncode := errors.New("encode failed")
	failing := func(io.Writer, *mapcanvas.Scene) error { return errEncode }
	err := writeFile(filepath.Join(dir, "bad.txt"), scene, failing)
	if !errors.Is(err, errEncode) || !strings.Contains(err.Error(), "bad.txt") {
		t.Errorf("unexpected error %v", err)
	}

	if err := writeFile(filepath.Join(dir, "missing", "out.txt"), scene, ok); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
