// Package types holds small value types shared by the transport and domain layers.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a JSON-RPC quantity encoded as a 0x-prefixed hexadecimal string
// (e.g., a block number "0x1b4"). The zero value means "unknown".
type Hex string

// HexFromUint64 encodes n as a Hex quantity.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

// validateHex checks that s is a 0x-prefixed hexadecimal number fitting in 64 bits.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// UnmarshalJSON parses and validates a JSON-encoded quantity. A JSON null
// leaves the value empty.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// IsEmpty reports whether the quantity is unset.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Uint64 returns the decoded value. Empty or malformed values decode to zero.
func (h Hex) Uint64() uint64 {
	if len(h) < 3 {
		return 0
	}

	v, _ := strconv.ParseUint(string(h)[2:], 16, 64)
	return v
}

// String returns the decimal representation, or an empty string when unset.
func (h Hex) String() string {
	if h.IsEmpty() {
		return ""
	}
	return strconv.FormatUint(h.Uint64(), 10)
}
