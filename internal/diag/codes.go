package diag

import "fmt"

// Code identifies a diagnostic class. Blocks are reserved per area so
// codes stay stable as rules are added.
type Code uint16

const (
	// UnknownCode is the zero value; no diagnostic should ship with it.
	UnknownCode Code = 0

	// Wire / prototype decoding
	WireInfo         Code = 1000
	WireBadShape     Code = 1001
	WireInvalidToken Code = 1002

	// Fix rules
	FixInfo               Code = 3000
	FixDoubleWhitespace   Code = 3001
	FixTrailingWhitespace Code = 3002
)

func (c Code) String() string {
	return fmt.Sprintf("PHX%04d", uint16(c))
}
