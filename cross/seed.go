package cross

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/carbocation/pfx"
)

// NewSeed draws a seed from crypto/rand for runs where the user did not ask
// for one. Report it so the run can be reproduced.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, pfx.Err(err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
