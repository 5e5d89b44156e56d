// Package procmaps locates the vdso and vvar mappings in the current
// process's /proc/self/maps listing.
//
// The maps path is fixed: only the calling process's own address space
// can be scanned. Each row has the form
//
//	start-end perms offset dev inode [pathname]
//
// with start and end as unprefixed lowercase hex. Only the address pair
// and the optional bracketed pathname label are consumed; everything
// else on the row is ignored.
package procmaps

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const mapsPath = "/proc/self/maps"

const (
	labelVDSO = "[vdso]"
	labelVVar = "[vvar]"
)

// Region is a half-open byte range [Start, End) in the current
// process's virtual address space. It describes an ephemeral OS-level
// mapping, never Go-managed memory; it must not outlive the operation
// that discovered it.
type Region struct {
	Start uint64
	End   uint64
}

// Size returns the byte count of the region.
func (r Region) Size() uint64 { return r.End - r.Start }

func (r Region) String() string {
	return fmt.Sprintf("start-%#x end-%#x (size %d)", r.Start, r.End, r.Size())
}

// Mappings is the result of one full scan. A field is nil when its
// label was not seen in the listing.
type Mappings struct {
	VDSO *Region
	VVar *Region
}

// Complete reports whether both target mappings were discovered.
func (m Mappings) Complete() bool { return m.VDSO != nil && m.VVar != nil }

// FormatError reports a maps row that did not match the expected shape.
// Line carries the offending raw text when one is available.
type FormatError struct {
	Msg  string
	Line string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s: %q", e.Msg, e.Line)
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Scan reads /proc/self/maps and returns any vdso and vvar regions
// found. One file descriptor is opened per call and closed on every
// path. Scan never mutates anything.
func Scan() (Mappings, error) {
	f, err := os.Open(mapsPath)
	if err != nil {
		return Mappings{}, fmt.Errorf("open %s: %w", mapsPath, err)
	}
	defer f.Close()

	return ScanReader(f)
}

// ScanReader scans a maps listing from r. It is the seam Scan is built
// on; tests feed it synthetic listings.
//
// Rows are classified by substring containment of the bracketed label,
// not by position, so trailing whitespace or extra flags after the
// label are tolerated. If the same label appears on more than one row
// the last row wins; some kernels list a fragmented mapping as several
// rows and the final fragment is the one observed in practice.
func ScanReader(r io.Reader) (Mappings, error) {
	var m Mappings

	br := bufio.NewReader(r)
	for {
		line, err := readLine(br)
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return Mappings{}, fmt.Errorf("read maps listing: %w", err)
		}

		switch {
		case strings.Contains(line, labelVDSO):
			region, err := parseLine(line)
			if err != nil {
				return Mappings{}, err
			}
			m.VDSO = &region
		case strings.Contains(line, labelVVar):
			region, err := parseLine(line)
			if err != nil {
				return Mappings{}, err
			}
			m.VVar = &region
		}
	}
}

// readLine returns the next line, without its terminator. A line longer
// than the reader's buffer is truncated rather than failed: the address
// field sits in the first few bytes of a row, so only an overlong
// trailing pathname can be lost.
func readLine(br *bufio.Reader) (string, error) {
	head, isPrefix, err := br.ReadLine()
	if err != nil {
		return "", err
	}
	line := string(head)
	for isPrefix {
		_, isPrefix, err = br.ReadLine()
		if err != nil {
			return "", err
		}
	}
	return line, nil
}

// parseLine extracts the leading start-end address pair from a matched
// row. End must be strictly greater than Start: an inverted or empty
// range cannot be unmapped or remapped meaningfully, so both are
// rejected here before any region reaches a syscall.
func parseLine(line string) (Region, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Region{}, &FormatError{Msg: "empty maps line", Line: line}
	}

	bounds := strings.Split(fields[0], "-")
	if len(bounds) != 2 {
		return Region{}, &FormatError{Msg: "malformed address range", Line: line}
	}

	start, err := parseHexAddress(bounds[0])
	if err != nil {
		return Region{}, &FormatError{Msg: "invalid hexadecimal number", Line: line, Err: err}
	}
	end, err := parseHexAddress(bounds[1])
	if err != nil {
		return Region{}, &FormatError{Msg: "invalid hexadecimal number", Line: line, Err: err}
	}

	if end <= start {
		return Region{}, &FormatError{Msg: "empty or inverted address range", Line: line}
	}

	return Region{Start: start, End: end}, nil
}

// parseHexAddress parses an unprefixed hex address. strconv with an
// explicit base accepts exactly the digits 0-9, a-f, A-F and nothing
// else (no sign, no 0x prefix, no underscores).
func parseHexAddress(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
