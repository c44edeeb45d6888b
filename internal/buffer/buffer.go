// ABOUTME: Buffer model: stable IDs, NFC-normalized names, markdown detection
// ABOUTME: Buffers are the host-owned items that rings reference by ID

package buffer

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ID is the stable, comparable identity a buffer keeps for its whole
// lifetime. Rings reference buffers by ID only.
type ID uint64

// Buffer is one open buffer. Content lives here; rings never interpret it.
type Buffer struct {
	ID      ID
	Name    string // display name, unique per shell
	Path    string // empty for scratch buffers
	Content string
}

// IsMarkdown reports whether the buffer should get markdown rendering.
func (b *Buffer) IsMarkdown() bool {
	ext := strings.ToLower(filepath.Ext(b.Name))
	return ext == ".md" || ext == ".markdown"
}

// NormalizeName returns name in NFC form with Unicode spaces collapsed to
// ASCII space, so the same visual name always compares equal regardless of
// the input method that produced it.
func NormalizeName(name string) string {
	return norm.NFC.String(normalizeSpaces(name))
}

// normalizeSpaces replaces non-ASCII Unicode space characters with U+0020.
func normalizeSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isUnicodeSpace(r) {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUnicodeSpace(r rune) bool {
	switch {
	case r == ' ':
		return true
	case r >= ' ' && r <= ' ':
		return true
	case r == ' ', r == ' ', r == '　':
		return true
	}
	return false
}
