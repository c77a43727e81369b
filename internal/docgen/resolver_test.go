package docgen

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveImagePath(t *testing.T) {
	base := t.TempDir()
	img := filepath.Join(base, "static", "images", "maquinas", "torno.png")
	writeFile(t, img)

	t.Run("blank input", func(t *testing.T) {
		if _, ok := ResolveImagePath("", base); ok {
			t.Fatal("blank path resolved")
		}
		if _, ok := ResolveImagePath("   ", base); ok {
			t.Fatal("whitespace path resolved")
		}
	})

	t.Run("absolute existing path is idempotent", func(t *testing.T) {
		got, ok := ResolveImagePath(img, base)
		if !ok {
			t.Fatal("existing absolute path not resolved")
		}
		if got != img {
			t.Fatalf("resolved %q, want unchanged %q", got, img)
		}
	})

	t.Run("windows separators and prefix variants agree", func(t *testing.T) {
		a, ok := ResolveImagePath(`static\images\maquinas\torno.png`, base)
		if !ok {
			t.Fatal("windows-style path not resolved")
		}
		b, ok := ResolveImagePath("maquinas/torno.png", base)
		if !ok {
			t.Fatal("trimmed path not resolved")
		}
		if a != b {
			t.Fatalf("normalization mismatch: %q vs %q", a, b)
		}
		if a != img {
			t.Fatalf("resolved %q, want %q", a, img)
		}
	})

	t.Run("leading slash and dot segments ignored", func(t *testing.T) {
		got, ok := ResolveImagePath("/static/./images/../images/maquinas/torno.png", base)
		if !ok {
			t.Fatal("noisy path not resolved")
		}
		if got != img {
			t.Fatalf("resolved %q, want %q", got, img)
		}
	})

	t.Run("basename fallback", func(t *testing.T) {
		flat := filepath.Join(base, "static", "images", "fresa.png")
		writeFile(t, flat)
		got, ok := ResolveImagePath(`C:\antigo\caminho\fresa.png`, base)
		if !ok {
			t.Fatal("basename fallback did not resolve")
		}
		if got != flat {
			t.Fatalf("resolved %q, want %q", got, flat)
		}
	})

	t.Run("unknown file", func(t *testing.T) {
		if _, ok := ResolveImagePath("nada/aqui.png", base); ok {
			t.Fatal("nonexistent path resolved")
		}
	})
}
