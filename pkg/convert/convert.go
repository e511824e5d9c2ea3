// Package convert drives a whole statement document through the scanner and
// the QIF writer.
package convert

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/ofx2qif/pkg/parser"
	"github.com/yurifrl/ofx2qif/pkg/qif"
)

type Options struct {
	IncludeMemos bool
}

// Result is accumulated over one run and handed back once the last record
// has been written.
type Result struct {
	Transactions   int
	Skipped        int
	MemoSuppressed bool
}

type Converter struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert writes the QIF rendition of doc to w. Only write errors are
// returned; anything odd in the input degrades or skips a single record.
func (c *Converter) Convert(doc []byte, opts Options, w io.Writer) (Result, error) {
	var res Result

	qw := qif.NewWriter(w, opts.IncludeMemos)
	if err := qw.WriteHeader(); err != nil {
		return res, fmt.Errorf("failed to write header: %w", err)
	}

	text := string(doc)
	for b := range parser.Blocks(text) {
		tx, ok := parser.Transform(b.Text(text))
		if !ok {
			res.Skipped++
			c.logger.Debug("record without amount, skipping", "offset", b.Start)
			continue
		}

		suppressed, err := qw.WriteTransaction(tx)
		if err != nil {
			return res, fmt.Errorf("failed to write transaction: %w", err)
		}
		res.Transactions++
		res.MemoSuppressed = res.MemoSuppressed || suppressed

		memo := tx.Memo()
		if suppressed {
			memo = "EXCLUDED"
		}
		c.logger.Debug("transaction", "date", tx.Date(), "payee", tx.Payee(), "memo", memo, "amount", tx.Amount())
	}

	if err := qw.Flush(); err != nil {
		return res, fmt.Errorf("failed to flush output: %w", err)
	}
	return res, nil
}

var discard = log.New(io.Discard)

// Convert runs a converter that logs nothing.
func Convert(doc []byte, opts Options, w io.Writer) (Result, error) {
	return New(discard).Convert(doc, opts, w)
}
