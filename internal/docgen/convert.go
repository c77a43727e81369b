package docgen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrConversionUnavailable is returned when PDF output was requested but no
// conversion backend exists on the host. The message names the remediation.
var ErrConversionUnavailable = errors.New(
	"conversão para PDF indisponível: instale o LibreOffice " +
		"(apt-get install -y libreoffice-core libreoffice-writer)")

// ConversionError is a fatal converter failure carrying the external tool's
// captured output verbatim for diagnostics.
type ConversionError struct {
	Stdout string
	Stderr string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("falha ao converter DOCX para PDF via LibreOffice: %v\nstdout:\n%s\nstderr:\n%s",
		e.Err, e.Stdout, e.Stderr)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// DocumentConverter turns a populated DOCX into PDF bytes. Implementations
// are selected once at startup by capability probing and injected into the
// Generator, so tests can substitute deterministic doubles.
type DocumentConverter interface {
	ConvertToPDF(ctx context.Context, docxPath, outDir string) ([]byte, error)
}

// NewConverter probes the host and returns the best available backend.
// Desktop office automation only exists on Windows desktops; this service
// ships the headless LibreOffice backend and degrades to an unavailable
// backend that fails with an actionable message.
func NewConverter() DocumentConverter {
	for _, name := range []string{"soffice", "libreoffice"} {
		if bin, err := exec.LookPath(name); err == nil {
			log.Printf("[docgen] pdf converter: %s", bin)
			return &LibreOfficeConverter{Binary: bin}
		}
	}
	log.Printf("[docgen] pdf converter: none found on PATH")
	return UnavailableConverter{}
}

// LibreOfficeConverter drives a headless LibreOffice to export PDF.
type LibreOfficeConverter struct {
	Binary string
}

var _ DocumentConverter = (*LibreOfficeConverter)(nil)

func (c *LibreOfficeConverter) ConvertToPDF(ctx context.Context, docxPath, outDir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary,
		"--headless",
		"--convert-to", "pdf:writer_pdf_Export",
		"--outdir", outDir,
		docxPath,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &ConversionError{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	base := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	produced := filepath.Join(outDir, base+".pdf")
	data, err := os.ReadFile(produced)
	if err != nil {
		return nil, &ConversionError{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    fmt.Errorf("conversor terminou sem erro mas não produziu %s: %w", produced, err),
		}
	}
	return data, nil
}

// UnavailableConverter is the terminal fallback when no backend exists.
type UnavailableConverter struct{}

var _ DocumentConverter = UnavailableConverter{}

func (UnavailableConverter) ConvertToPDF(context.Context, string, string) ([]byte, error) {
	return nil, ErrConversionUnavailable
}
