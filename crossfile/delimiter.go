package crossfile

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in b, assuming a CSV-like file. Tab wins when the detector has no
// opinion, since that is what the rest of the toolchain writes.
func DetermineDelimiter(b []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(b), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return rune(delimiters[0][0])
	}

	return '\t'
}
