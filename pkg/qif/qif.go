package qif

import (
	"bufio"
	"bytes"
	"io"
)

const (
	Header = "!Type:Bank"

	// UnknownPayee stands in for records without a NAME.
	UnknownPayee = "(unknown)"
)

type Record interface {
	Date() string
	Payee() string
	Memo() string
	Amount() string
}

// Writer emits QIF bank stanzas. Output is buffered; the first write error
// sticks and is reported by every later call and by Flush.
type Writer struct {
	w            *bufio.Writer
	includeMemos bool
	err          error
}

func NewWriter(w io.Writer, includeMemos bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), includeMemos: includeMemos}
}

func (w *Writer) line(prefix, value string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(prefix); err != nil {
		w.err = err
		return
	}
	if _, err := w.w.WriteString(value); err != nil {
		w.err = err
		return
	}
	w.err = w.w.WriteByte('\n')
}

func (w *Writer) WriteHeader() error {
	w.line(Header, "")
	return w.err
}

// WriteTransaction writes one stanza. memoSuppressed is true when the record
// had a memo that was left out because memos are not included.
func (w *Writer) WriteTransaction(r Record) (memoSuppressed bool, err error) {
	w.line("D", r.Date())

	payee := r.Payee()
	if payee == "" {
		payee = UnknownPayee
	}
	w.line("P", payee)

	if memo := r.Memo(); memo != "" {
		if w.includeMemos {
			w.line("M", memo)
		} else {
			memoSuppressed = true
		}
	}

	w.line("T", r.Amount())
	w.line("C", "*")
	w.line("^", "")
	return memoSuppressed, w.err
}

func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Create renders records as a complete QIF document.
func Create[T Record](records []T, includeMemos bool) []byte {
	var buf bytes.Buffer
	qw := NewWriter(&buf, includeMemos)
	_ = qw.WriteHeader()
	for _, r := range records {
		_, _ = qw.WriteTransaction(r)
	}
	_ = qw.Flush()
	return buf.Bytes()
}
