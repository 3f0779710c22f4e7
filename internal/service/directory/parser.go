// Package directory parses binary employee-directory exports.
//
// The export is a headerless sequence of fixed-size records whose layout
// varies by device firmware. There is no format tag in the file, so both the
// record size and the field positions are recovered heuristically: the record
// size from divisibility of the total length, the name and id by scanning
// bytes. The whole heuristic sits behind a narrow bytes-to-entries interface
// so it can be replaced with a declarative record layout without touching
// callers.
package directory

import (
	"strconv"
	"strings"

	"github.com/punchlab/punchclock-backend-go/internal/domain/directory"
)

// Known record sizes across device firmware variants.
const (
	recordSizeLarge  = 72
	recordSizeMedium = 66
	recordSizeSmall  = 64
)

// The display name lives somewhere in this byte window of each record.
const (
	nameScanStart = 10
	nameScanEnd   = 50
)

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts directory entries from a raw export blob. Unreadable records
// are skipped; an entirely empty result fails with
// directory.ErrNoValidRecords because it means the wrong file was supplied.
//
// Entries are returned in record order. Duplicate employee ids are resolved
// last-write-wins by the consumer; exports are full snapshots, not deltas.
func (p *Parser) Parse(blob []byte) ([]directory.Entry, error) {
	if len(blob) == 0 {
		return nil, directory.ErrNoValidRecords
	}

	recordSize := detectRecordSize(len(blob))
	count := len(blob) / recordSize // trailing partial record is ignored

	var entries []directory.Entry
	for i := 0; i < count; i++ {
		record := blob[i*recordSize : (i+1)*recordSize]
		if entry, ok := parseRecord(record, i); ok {
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, directory.ErrNoValidRecords
	}

	return entries, nil
}

// EntryMap collapses entries into an id-to-name map, last-write-wins.
func EntryMap(entries []directory.Entry) map[int]string {
	m := make(map[int]string, len(entries))
	for _, e := range entries {
		m[e.EmployeeID] = e.Name
	}
	return m
}

// detectRecordSize guesses the fixed record size from the blob length.
// 72 wins outright on even divisibility; 66 only when 64 does not also
// divide the length; 64 is the fallback. Covers the three known firmware
// variants.
func detectRecordSize(n int) int {
	switch {
	case n%recordSizeLarge == 0:
		return recordSizeLarge
	case n%recordSizeMedium == 0 && n%recordSizeSmall != 0:
		return recordSizeMedium
	default:
		return recordSizeSmall
	}
}

func parseRecord(record []byte, index int) (directory.Entry, bool) {
	// Find where the name starts: first printable byte in the scan window.
	start := -1
	end := nameScanEnd
	if end > len(record) {
		end = len(record)
	}
	for i := nameScanStart; i < end; i++ {
		if isPrintable(record[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return directory.Entry{}, false
	}

	// Accumulate printable bytes until NUL or a non-printable byte.
	pos := start
	for pos < len(record) && isPrintable(record[pos]) {
		pos++
	}
	name := strings.TrimSpace(string(record[start:pos]))
	if name == "" {
		return directory.Entry{}, false
	}

	// The employee id is the first digit run after the name that parses to a
	// positive integer. A non-digit byte between runs resets the accumulator.
	id, found := scanDigitRun(record[pos:])
	if !found {
		// No id anywhere in the record; fall back to the record position.
		return directory.Entry{
			EmployeeID:    index + 1,
			Name:          name,
			LowConfidence: true,
		}, true
	}

	return directory.Entry{EmployeeID: id, Name: name}, true
}

func scanDigitRun(tail []byte) (int, bool) {
	var run []byte
	flush := func() (int, bool) {
		if len(run) == 0 {
			return 0, false
		}
		n, err := strconv.Atoi(string(run))
		if err == nil && n > 0 {
			return n, true
		}
		return 0, false
	}

	for _, b := range tail {
		if b >= '0' && b <= '9' {
			run = append(run, b)
			continue
		}
		if n, ok := flush(); ok {
			return n, true
		}
		run = run[:0]
	}
	return flush()
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}
