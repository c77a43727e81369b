package docgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScript drops an executable shell script standing in for soffice.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script converter stub")
	}
	path := filepath.Join(t.TempDir(), "soffice")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLibreOfficeConverter(t *testing.T) {
	t.Run("success reads produced pdf", func(t *testing.T) {
		// The last argument is the input file; the stub mimics soffice by
		// writing <basename>.pdf into the --outdir argument.
		bin := writeScript(t, `
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--outdir" ]; then out="$a"; fi
  prev="$a"
  last="$a"
done
base=$(basename "$last" .docx)
printf '%%PDF-1.7 stub' > "$out/$base.pdf"
`)
		outDir := t.TempDir()
		input := filepath.Join(outDir, "trabalho.docx")
		if err := os.WriteFile(input, []byte("docx"), 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}

		c := &LibreOfficeConverter{Binary: bin}
		pdf, err := c.ConvertToPDF(context.Background(), input, outDir)
		if err != nil {
			t.Fatalf("ConvertToPDF: %v", err)
		}
		if !strings.HasPrefix(string(pdf), "%PDF-1.7") {
			t.Fatalf("pdf bytes = %q", pdf)
		}
	})

	t.Run("nonzero exit carries captured output", func(t *testing.T) {
		bin := writeScript(t, `
echo "convert: aborted"
echo "Fatal: no writer filter" >&2
exit 81
`)
		c := &LibreOfficeConverter{Binary: bin}
		_, err := c.ConvertToPDF(context.Background(), "input.docx", t.TempDir())

		var ce *ConversionError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConversionError, got %v", err)
		}
		if !strings.Contains(ce.Stderr, "no writer filter") {
			t.Fatalf("stderr not captured: %q", ce.Stderr)
		}
		if !strings.Contains(ce.Stdout, "convert: aborted") {
			t.Fatalf("stdout not captured: %q", ce.Stdout)
		}
	})

	t.Run("missing output file is an error", func(t *testing.T) {
		bin := writeScript(t, "exit 0\n")
		c := &LibreOfficeConverter{Binary: bin}
		_, err := c.ConvertToPDF(context.Background(), "input.docx", t.TempDir())
		var ce *ConversionError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConversionError, got %v", err)
		}
	})
}

func TestUnavailableConverter(t *testing.T) {
	_, err := UnavailableConverter{}.ConvertToPDF(context.Background(), "a.docx", t.TempDir())
	if !errors.Is(err, ErrConversionUnavailable) {
		t.Fatalf("expected ErrConversionUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "LibreOffice") {
		t.Fatalf("remediation missing from message: %v", err)
	}
}
