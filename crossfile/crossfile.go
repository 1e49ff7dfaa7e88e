// Package crossfile reads lists of crosses to simulate in one run. Files may
// be tab- or comma-delimited and optionally compressed; both are sniffed from
// the content rather than the file name.
package crossfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Cross is one requested simulation. Zero Offspring or Seed mean the caller's
// defaults apply.
type Cross struct {
	Parent1   string `csv:"parent1"`
	Parent2   string `csv:"parent2"`
	Offspring int    `csv:"offspring"`
	Seed      int64  `csv:"seed"`
}

func ReadFile(path string) ([]*Cross, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a header row naming parent1, parent2, offspring and seed, then
// one cross per row. Only the parent columns are required.
func Read(r io.Reader) ([]*Cross, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}

	plain, err := decompress(raw)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(plain))
	cr.Comma = DetermineDelimiter(plain)
	cr.LazyQuotes = true

	out := []*Cross{}
	if err := gocsv.UnmarshalCSV(cr, &out); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
