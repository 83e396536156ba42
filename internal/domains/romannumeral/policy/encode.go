package policy

import "fmt"

// Standard-form fragments per decimal position, indexed by digit.
var (
	thousands = [4]string{"", "M", "MM", "MMM"}
	hundreds  = [10]string{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"}
	tens      = [10]string{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"}
	units     = [10]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
)

// Encode returns the Roman numeral for n. n must already be validated;
// values outside [MinValue, MaxValue] panic.
func Encode(n int) string {
	if !InSupportedRange(n) {
		panic(fmt.Sprintf("policy.Encode: %d outside [%d, %d]", n, MinValue, MaxValue))
	}
	return thousands[n/1000] + hundreds[(n/100)%10] + tens[(n/10)%10] + units[n%10]
}
