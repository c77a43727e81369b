package docgen

import (
	"strings"
	"unicode"

	"github.com/vktkrum1/sistema-de-propostas/internal/docx"
)

// minPhoneDigits is the shortest digits-only phone accepted for WhatsApp
// linking: country code + area code + mobile subscriber number.
const minPhoneDigits = 12

// DigitsOnly strips every non-digit rune from a phone number.
func DigitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether a digits-only phone number is long enough to be
// a full international mobile number.
func ValidPhone(digits string) bool {
	return len(digits) >= minPhoneDigits
}

// linkifyPhone rewrites the first top-level paragraph containing the raw
// phone text so that the phone becomes a wa.me hyperlink, preserving the
// exact surrounding text. Later occurrences are left alone.
func linkifyPhone(doc *docx.Document, rawPhone, digits string) {
	url := "https://wa.me/" + digits
	for _, p := range doc.Paragraphs() {
		text := p.Text()
		idx := strings.Index(text, rawPhone)
		if idx < 0 {
			continue
		}

		prefix := text[:idx]
		suffix := text[idx+len(rawPhone):]

		p.ClearRuns()
		if prefix != "" {
			p.AddRun(prefix)
		}
		p.AddHyperlink(url, rawPhone)
		if suffix != "" {
			p.AddRun(suffix)
		}
		break
	}
}
