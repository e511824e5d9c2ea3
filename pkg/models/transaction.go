package models

// Transaction is one statement record cleaned up and ready to be written as
// a QIF stanza. Values are kept as text: the date is either MM/DD/YYYY or
// whatever the source carried, and the amount is the source number with
// thousands separators removed.
type Transaction struct {
	PostedDate string `json:"date"`
	Name       string `json:"payee"`
	Note       string `json:"memo,omitempty"`
	Value      string `json:"amount"`
	FITID      string `json:"fitid,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (t *Transaction) Date() string   { return t.PostedDate }
func (t *Transaction) Payee() string  { return t.Name }
func (t *Transaction) Memo() string   { return t.Note }
func (t *Transaction) Amount() string { return t.Value }

// HasMemo reports whether the source record carried a memo.
func (t *Transaction) HasMemo() bool {
	return t.Note != ""
}
