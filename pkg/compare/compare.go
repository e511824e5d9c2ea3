package compare

import (
	"math/big"

	"github.com/aclindsa/ofxgo"

	"github.com/yurifrl/ofx2qif/pkg/models"
)

// Equal compares a transaction produced by the tolerant scan with one from a
// strict OFX parse. Date (formatted as MM/DD/YYYY in the statement's own
// zone) and amount (compared as exact rationals, so "-42.50" equals
// "-42.5") must both agree.
func Equal(local *models.Transaction, strict *ofxgo.Transaction) bool {
	if local == nil || strict == nil {
		return false
	}
	amount, ok := new(big.Rat).SetString(local.Amount())
	if !ok || amount.Cmp(&strict.TrnAmt.Rat) != 0 {
		return false
	}
	return local.Date() == strict.DtPosted.Format("01/02/2006")
}
