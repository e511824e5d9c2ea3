package parser

import (
	"testing"

	"github.com/yurifrl/ofx2qif/pkg/models"
)

func TestTransform(t *testing.T) {
	cases := []struct {
		name  string
		block string
		want  *models.Transaction
	}{
		{
			name:  "closed tags",
			block: "<DTPOSTED>20240115120000</DTPOSTED><TRNAMT>-42.50</TRNAMT><NAME>Coffee Shop</NAME><MEMO>latte</MEMO></STMTTRN>",
			want:  &models.Transaction{PostedDate: "01/15/2024", Name: "Coffee Shop", Note: "latte", Value: "-42.50"},
		},
		{
			name:  "sgml leaves",
			block: "<TRNTYPE>DEBIT<DTPOSTED>20190119090000<TRNAMT>-20.96<FITID>20190119090001<NAME>Sample Expense</STMTTRN>",
			want:  &models.Transaction{PostedDate: "01/19/2019", Name: "Sample Expense", Value: "-20.96", FITID: "20190119090001", Type: "DEBIT"},
		},
		{
			name:  "trim, newlines and commas",
			block: "<DTPOSTED> 20240301 </DTPOSTED><TRNAMT> 1,234,567.89 </TRNAMT><NAME>\r\nACME\r\nCORP\n</NAME><MEMO>line one\nline two</MEMO>",
			want:  &models.Transaction{PostedDate: "03/01/2024", Name: "ACME  CORP", Note: "line one line two", Value: "1234567.89"},
		},
		{
			name:  "bad date keeps prefix",
			block: "<DTPOSTED>BADDATE1</DTPOSTED><TRNAMT>5</TRNAMT>",
			want:  &models.Transaction{PostedDate: "BADDATE1", Value: "5"},
		},
		{
			name:  "short date passes through",
			block: "<DTPOSTED>0115<TRNAMT>5",
			want:  &models.Transaction{PostedDate: "0115", Value: "5"},
		},
		{
			name:  "missing date",
			block: "<TRNAMT>5</TRNAMT><NAME>x</NAME>",
			want:  &models.Transaction{Name: "x", Value: "5"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Transform(c.block)
			if !ok {
				t.Fatalf("Transform(%q) skipped the record", c.block)
			}
			if *got != *c.want {
				t.Errorf("Transaction mismatch:\nExpected: %+v\nGot: %+v", c.want, got)
			}
		})
	}
}

func TestTransformSkipsMissingAmount(t *testing.T) {
	blocks := []string{
		"<DTPOSTED>20240115<NAME>no amount</STMTTRN>",
		"<DTPOSTED>20240115<TRNAMT>   <NAME>blank amount</STMTTRN>",
		"<TRNAMT></TRNAMT>",
	}
	for _, b := range blocks {
		if tx, ok := Transform(b); ok {
			t.Errorf("Transform(%q) = %+v, want skip", b, tx)
		}
	}
}
