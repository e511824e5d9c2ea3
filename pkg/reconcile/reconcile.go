// Package reconcile cross-checks the tolerant scan against a strict OFX
// parse of the same document. It only reports; conversion output never
// depends on it.
package reconcile

import (
	"bytes"
	"fmt"

	"github.com/aclindsa/ofxgo"

	"github.com/yurifrl/ofx2qif/pkg/compare"
	"github.com/yurifrl/ofx2qif/pkg/models"
)

// Status indicates how a scanned transaction fared against the strict parse.
//
//   - Matched:  the strict parser saw the same transaction.
//   - ScanOnly: only the tolerant scan found it.
type Status int

const (
	Matched Status = iota
	ScanOnly
)

func (s Status) String() string {
	if s == Matched {
		return "matched"
	}
	return "scan-only"
}

type Entry struct {
	Local  *models.Transaction
	Strict *ofxgo.Transaction // nil when status == ScanOnly
	Status Status
}

// Report is every scanned transaction plus the strict ones nothing matched.
type Report struct {
	Items      []Entry
	StrictOnly []ofxgo.Transaction
	scanOnly   int
}

// Strict parses doc with ofxgo and returns the bank and credit card
// transactions in statement order.
func Strict(doc []byte) ([]ofxgo.Transaction, error) {
	resp, err := ofxgo.ParseResponse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("strict parse failed: %w", err)
	}

	var out []ofxgo.Transaction
	for _, msg := range append(resp.Bank, resp.CreditCard...) {
		var list *ofxgo.TransactionList
		switch st := msg.(type) {
		case *ofxgo.StatementResponse:
			list = st.BankTranList
		case *ofxgo.CCStatementResponse:
			list = st.BankTranList
		default:
			return nil, fmt.Errorf("unexpected response type %T", msg)
		}
		if list != nil {
			out = append(out, list.Transactions...)
		}
	}
	return out, nil
}

// Build pairs each local transaction with the first unused strict one that
// compare.Equal accepts.
func Build(local []*models.Transaction, strict []ofxgo.Transaction) *Report {
	used := make([]bool, len(strict))
	r := &Report{Items: make([]Entry, 0, len(local))}

	for _, lt := range local {
		entry := Entry{Local: lt, Status: ScanOnly}
		for i := range strict {
			if used[i] || !compare.Equal(lt, &strict[i]) {
				continue
			}
			used[i] = true
			entry.Strict = &strict[i]
			entry.Status = Matched
			break
		}
		if entry.Status == ScanOnly {
			r.scanOnly++
		}
		r.Items = append(r.Items, entry)
	}

	for i, st := range strict {
		if !used[i] {
			r.StrictOnly = append(r.StrictOnly, st)
		}
	}
	return r
}

func (r *Report) MatchedCount() int {
	return len(r.Items) - r.scanOnly
}

func (r *Report) ScanOnlyCount() int {
	return r.scanOnly
}

// Consistent is true when both parsers saw exactly the same transactions.
func (r *Report) Consistent() bool {
	return r.scanOnly == 0 && len(r.StrictOnly) == 0
}
