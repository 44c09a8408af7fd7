package ethutil

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is an ethereum address normalized to lower case. Using it as a map
// key makes checksum-cased duplicates structurally impossible.
type Address string

func NewAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("invalid ethereum address %q", s)
	}

	return Address(strings.ToLower(s)), nil
}

func (a Address) String() string {
	return string(a)
}

// Short returns the truncated 0x1234...abcd label used when an address has no
// resolved identity.
func (a Address) Short() string {
	s := string(a)
	if len(s) <= 10 {
		return s
	}

	return s[:6] + "..." + s[len(s)-4:]
}
