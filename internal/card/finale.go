package card

import (
	"encoding/base64"
	"strings"

	"heartlock/internal/vault"
)

// sealedFinaleB64 holds the output of cmd/heartlock-seal: the closing
// message encrypted under the deck's answer letters. Leave empty to show
// the plain defaultFinale instead.
const sealedFinaleB64 = ""

var defaultFinale = []string{
	"TAKEOFF CLEARED",
	"VALENTINE AUTHORIZED <3",
}

// Hints shown on the final lock's first, second, and every further "no".
var refusalHints = [3]string{
	"I think your finger slipped. Try again.",
	"Hint: it is three letters long.",
	"Nice try. That key does nothing, remember?",
}

func hintForRefusal(n int) string {
	switch {
	case n <= 1:
		return refusalHints[0]
	case n == 2:
		return refusalHints[1]
	default:
		return refusalHints[2]
	}
}

// finaleLines returns the success-frame body, decrypting the sealed
// message when one is compiled in. The deck's answers are the key, so by
// the time this runs the player has already typed them. Falls back to the
// plain finale if the blob is absent or does not open.
func finaleLines(deck []Question) []string {
	if sealedFinaleB64 == "" {
		return defaultFinale
	}
	blob, err := base64.StdEncoding.DecodeString(sealedFinaleB64)
	if err != nil {
		return defaultFinale
	}
	buf, err := vault.Open(blob, Passphrase(deck))
	if err != nil {
		return defaultFinale
	}
	defer buf.Destroy()
	return strings.Split(string(buf.Bytes()), "\n")
}
