// Package units converts Ethereum values between the native integer unit (wei)
// and the decimal display unit (ether).
//
// WeiToEther is lossy and exists for human display only. Never feed its result
// back into anything that needs exact amounts (balances, comparisons, sums);
// use the wei value or FormatEther instead.
package units

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Decimals is the number of decimal places between wei and ether.
const Decimals = 18

const uint256BitLen = 256

var (
	// weiPerEther is 10^18 as a uint256.
	weiPerEther = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(Decimals))

	// weiPerEtherFloat is 10^18 as an exact big.Float.
	weiPerEtherFloat = new(big.Float).SetInt(weiPerEther.ToBig())
)

// WeiToEther divides wei by 10^18 and returns the nearest float64.
//
// float64 carries 53 bits of mantissa, so values above 2^53 wei are rounded and
// the result keeps roughly 15-17 significant digits. The conversion is
// monotonic: for a < b, WeiToEther(a) <= WeiToEther(b). A nil value is zero.
func WeiToEther(wei *uint256.Int) float64 {
	if wei == nil || wei.IsZero() {
		return 0
	}

	// 256 bits hold any uint256 exactly, and a fixed precision keeps the
	// rounding identical for every input.
	f := new(big.Float).SetPrec(uint256BitLen).SetInt(wei.ToBig())
	ether, _ := f.Quo(f, weiPerEtherFloat).Float64()
	return ether
}

// FormatEther renders wei as an exact ether decimal string. Trailing zeros in
// the fractional part are trimmed but at least one fractional digit is kept:
// 10^18 -> "1.0", 5*10^17 -> "0.5", 0 -> "0.0", 1 -> "0.000000000000000001".
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		return "0.0"
	}

	var quo, rem uint256.Int
	quo.DivMod(wei, weiPerEther, &rem)

	frac := strings.TrimRight(padLeft(rem.Dec(), Decimals), "0")
	if frac == "" {
		frac = "0"
	}

	return quo.Dec() + "." + frac
}

// padLeft left-pads s with zeros up to width characters.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
