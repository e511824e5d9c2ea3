package parser

import (
	"strings"
	"testing"
)

func TestIndexFold(t *testing.T) {
	cases := []struct {
		s, substr string
		want      int
	}{
		{"<stmttrn><name>x", "<STMTTRN", 0},
		{"abc<Name>", "<NAME>", 3},
		{"abc", "", 0},
		{"abc", "abcd", -1},
		{"", "<", -1},
		{"xx<DTPOSTED>", "<dtposted>", 2},
		{"ÄÖ<memo>", "<MEMO>", 4},
	}
	for _, c := range cases {
		if got := indexFold(c.s, c.substr); got != c.want {
			t.Errorf("indexFold(%q, %q) = %d, want %d", c.s, c.substr, got, c.want)
		}
	}
}

func TestExtractTag(t *testing.T) {
	cases := []struct {
		name, text, tag string
		want            string
		found           bool
	}{
		{"closed", "<NAME>Coffee Shop</NAME>", "NAME", "Coffee Shop", true},
		{"case insensitive", "<name>Coffee</Name>", "NAME", "Coffee", true},
		{"unclosed leaf", "<TRNAMT>-20.96<FITID>1", "TRNAMT", "-20.96", true},
		{"unclosed at end", "<MEMO>last one", "MEMO", "last one", true},
		{"missing", "<NAME>x</NAME>", "MEMO", "", false},
		{"empty", "<MEMO></MEMO>", "MEMO", "", true},
		{"longer name does not match", "<NAMEX>a</NAMEX>", "NAME", "", false},
		{"closing tag spans markup", "<NAME>a<B>b</B></NAME>", "NAME", "a<B>b</B>", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, found := ExtractTag(c.text, c.tag, MaxFieldLen)
			if got != c.want || found != c.found {
				t.Errorf("ExtractTag(%q, %q) = (%q, %t), want (%q, %t)", c.text, c.tag, got, found, c.want, c.found)
			}
		})
	}
}

func TestExtractTagTruncates(t *testing.T) {
	long := strings.Repeat("x", MaxFieldLen+100)

	got, found := ExtractTag("<NAME>"+long+"</NAME>", "NAME", MaxFieldLen)
	if !found || len(got) != MaxFieldLen {
		t.Errorf("closed tag: got len %d found %t, want len %d", len(got), found, MaxFieldLen)
	}

	got, found = ExtractTag("<NAME>"+long, "NAME", 10)
	if !found || got != "xxxxxxxxxx" {
		t.Errorf("unclosed tag: got %q found %t", got, found)
	}
}

func TestNextBlock(t *testing.T) {
	doc := `<OFX><STMTTRN><TRNAMT>1</STMTTRN><stmttrn type="x"><TRNAMT>2</stmttrn>`

	b, ok := NextBlock(doc, 0)
	if !ok {
		t.Fatal("expected first block")
	}
	if got := b.Text(doc); got != "<TRNAMT>1</STMTTRN>" {
		t.Errorf("first block = %q", got)
	}

	b2, ok := NextBlock(doc, b.End)
	if !ok {
		t.Fatal("expected second block")
	}
	if got := b2.Text(doc); got != "<TRNAMT>2</stmttrn>" {
		t.Errorf("second block = %q", got)
	}
	if b2.Start <= b.Start {
		t.Errorf("scan went backwards: %d after %d", b2.Start, b.Start)
	}

	if _, ok := NextBlock(doc, b2.End); ok {
		t.Error("expected end of sequence")
	}
}

func TestNextBlockUnterminated(t *testing.T) {
	cases := map[string]string{
		"no close marker": "<STMTTRN><TRNAMT>1",
		"no gt":           "<STMTTRN",
		"no marker":       "<OFX></OFX>",
		"empty":           "",
	}
	for name, doc := range cases {
		if b, ok := NextBlock(doc, 0); ok {
			t.Errorf("%s: unexpected block %+v", name, b)
		}
	}
	if _, ok := NextBlock("abc", 10); ok {
		t.Error("offset past the end should end the sequence")
	}
}

func TestBlocksWithResponseWrapper(t *testing.T) {
	doc := `<STMTTRNRS><TRNUID>0<STMTRS><BANKTRANLIST>
<STMTTRN><TRNAMT>-1.00<NAME>first</STMTTRN>
<STMTTRN><TRNAMT>-2.00<NAME>second</STMTTRN>
</BANKTRANLIST></STMTRS></STMTTRNRS>`

	var names []string
	for b := range Blocks(doc) {
		name, _ := ExtractTag(b.Text(doc), "NAME", MaxFieldLen)
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("got names %q, want [first second]", names)
	}
}

func TestBlocksStopsEarly(t *testing.T) {
	doc := strings.Repeat("<STMTTRN><TRNAMT>1</STMTTRN>", 5)
	n := 0
	for range Blocks(doc) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("got %d iterations, want 2", n)
	}
}
