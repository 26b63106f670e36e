package processor

import (
	"strings"
)

// detectionWindow bounds how many lines of the input are inspected.
// Statement exports bury their column header under metadata lines, so a
// single-line sniff is not enough.
const detectionWindow = 20

// Detect inspects the first lines of raw input and returns the dialect
// that applies. A line carrying both peer-trade order markers selects the
// peer-trade dialect; a line carrying both bank-statement column markers
// selects the bank-statement dialect. When nothing matches, Detect falls
// open to the peer-trade dialect for compatibility with callers that
// predate detection. Callers that need strict detection must pre-validate
// with the processors' ValidateFormat.
func Detect(raw []byte) Type {
	lines := strings.Split(string(raw), "\n")
	if len(lines) > detectionWindow {
		lines = lines[:detectionWindow]
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "order number") && strings.Contains(lower, "order type") {
			return PeerTrade
		}
		if strings.Contains(lower, "data;") && strings.Contains(lower, "valor (r$)") {
			return BankStatement
		}
	}
	return PeerTrade
}
