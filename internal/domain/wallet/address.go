package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Normalize проверяет адрес и приводит его к нижнему регистру.
// Нижний регистр используется как ключ для всех данных пользователя.
func Normalize(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// Checksum returns the EIP-55 mixed-case form used for display.
func Checksum(address string) string {
	return common.HexToAddress(address).Hex()
}

// Equal compares two addresses ignoring case.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Short returns "0x1234…abcd".
func Short(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
