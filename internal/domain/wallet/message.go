package wallet

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	nonceFractionDigits = 11

	messageTemplate = `Welcome to DropOps!

Sign this message to verify your wallet ownership.

Wallet: %s
Nonce: %s
Timestamp: %s

This signature does not trigger a blockchain transaction or cost any gas fees.`
)

// ChallengeMessage builds the text the wallet is asked to sign.
func ChallengeMessage(address, nonce string, at time.Time) string {
	return fmt.Sprintf(messageTemplate, address, nonce, at.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

// NewNonce returns a best-effort unique value: a base-36 random fraction
// followed by the current unix-ms timestamp in base 36. It is not
// collision-proof and nothing checks it against a stored value.
func NewNonce() string {
	return nonceAt(rand.Float64(), time.Now())
}

func nonceAt(fraction float64, now time.Time) string {
	return fractionBase36(fraction, nonceFractionDigits) + strconv.FormatInt(now.UnixMilli(), 36)
}

func fractionBase36(f float64, digits int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	var b strings.Builder
	for i := 0; i < digits && f > 0; i++ {
		f *= 36
		d := int(f)
		b.WriteByte(alphabet[d])
		f -= float64(d)
	}
	return b.String()
}
