package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestProgressCountsBatch(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), 3)

	prog.succeeded()
	prog.fail("Neon Pink/rounded", errors.New("boom"))
	prog.succeeded()
	prog.done("Rendered gallery", "zoom", 60)

	if prog.ok != 2 || prog.failed != 1 {
		t.Errorf("Expected 2 ok and 1 failed, got %d and %d", prog.ok, prog.failed)
	}

	out := buf.String()
	for _, want := range []string{"position=2", "ok=2", "failed=1", "total=3", "zoom=60", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output, got:\n%s", want, out)
		}
	}
}

func TestProgressSingleItemOmitsCounts(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), 1)
	prog.succeeded()
	prog.done("Rendered QR code", "shape", "square")

	out := buf.String()
	if strings.Contains(out, "total=") {
		t.Errorf("Expected no batch counts for a single render, got:\n%s", out)
	}
	if !strings.Contains(out, "shape=square") {
		t.Errorf("Expected shape in log output, got:\n%s", out)
	}
}
