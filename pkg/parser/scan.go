package parser

import (
	"iter"
	"strings"
)

// MaxFieldLen bounds every value pulled out of a tag. Longer content is cut
// without complaint.
const MaxFieldLen = 4095

const (
	blockOpen  = "<STMTTRN"
	blockClose = "</STMTTRN>"
)

// Block is the half-open span [Start, End) of one transaction record inside
// a document. Start is the first byte after the opening marker's '>' and End
// is the first byte after the closing marker.
type Block struct {
	Start int
	End   int
}

// Text returns the part of doc covered by the block.
func (b Block) Text(doc string) string {
	return doc[b.Start:b.End]
}

// indexFold is strings.Index with ASCII case folding.
func indexFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}
	first := lower(substr[0])
	for i := 0; i+n <= len(s); i++ {
		if lower(s[i]) != first {
			continue
		}
		if equalFoldASCII(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(a, b string) bool {
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// ExtractTag returns the content of <tag> inside text. When the matching
// </tag> is missing the content runs up to the next '<' or the end of text,
// which is how leaf elements are written in SGML statements. The bool is
// false only when the opening tag is absent.
func ExtractTag(text, tag string, maxLen int) (string, bool) {
	open := "<" + tag + ">"
	i := indexFold(text, open)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(open):]

	value := rest
	if j := indexFold(rest, "</"+tag+">"); j >= 0 {
		value = rest[:j]
	} else if j := strings.IndexByte(rest, '<'); j >= 0 {
		value = rest[:j]
	}
	return truncate(value, maxLen), true
}

func truncate(s string, maxLen int) string {
	if maxLen >= 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// NextBlock finds the first complete transaction record at or after from.
// A record whose closing marker is missing ends the sequence.
//
// The opening marker is matched as a prefix, so <STMTTRNRS> also opens a
// record; the span then reaches the first </STMTTRN> and still holds exactly
// one transaction.
func NextBlock(doc string, from int) (Block, bool) {
	if from < 0 || from > len(doc) {
		return Block{}, false
	}
	i := indexFold(doc[from:], blockOpen)
	if i < 0 {
		return Block{}, false
	}
	i += from
	gt := strings.IndexByte(doc[i:], '>')
	if gt < 0 {
		return Block{}, false
	}
	start := i + gt + 1
	j := indexFold(doc[start:], blockClose)
	if j < 0 {
		return Block{}, false
	}
	return Block{Start: start, End: start + j + len(blockClose)}, true
}

// Blocks yields every record of doc in document order.
func Blocks(doc string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		pos := 0
		for {
			b, ok := NextBlock(doc, pos)
			if !ok {
				return
			}
			if !yield(b) {
				return
			}
			pos = b.End
		}
	}
}
