package parser

import (
	"strings"

	"github.com/yurifrl/ofx2qif/pkg/models"
)

var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

func field(block, tag string) string {
	v, _ := ExtractTag(block, tag, MaxFieldLen)
	return strings.TrimSpace(v)
}

// Transform builds the transaction held in one record. It returns false when
// the record has no amount; every other missing or malformed field degrades
// to a usable value.
func Transform(block string) (*models.Transaction, bool) {
	amount := field(block, "TRNAMT")
	if amount == "" {
		return nil, false
	}

	return &models.Transaction{
		PostedDate: postedDate(field(block, "DTPOSTED")),
		Name:       lineBreaks.Replace(field(block, "NAME")),
		Note:       lineBreaks.Replace(field(block, "MEMO")),
		Value:      strings.ReplaceAll(amount, ",", ""),
		FITID:      field(block, "FITID"),
		Type:       field(block, "TRNTYPE"),
	}, true
}
