package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// PaymentReference reports whether s is a well-formed payment provider
// reference: digits with a valid Luhn check digit.
func PaymentReference(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
