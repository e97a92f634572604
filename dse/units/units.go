// Package units holds the byte-size type shared by tier catalogs and workloads.
// Sizes are whole bytes; YAML accepts either an integer or a humanised string
// such as "64GiB" or "1 TiB".
package units

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ByteSize is a quantity of bytes.
type ByteSize int64

// Binary size units.
const (
	Byte ByteSize = 1
	KiB           = 1024 * Byte
	MiB           = 1024 * KiB
	GiB           = 1024 * MiB
	TiB           = 1024 * GiB
	PiB           = 1024 * TiB
)

// ParseByteSize parses "4096", "64GiB", "1.5 TiB" or "10 GB" into bytes.
// Decimal suffixes (GB) are powers of 1000, binary suffixes (GiB) powers of 1024.
func ParseByteSize(s string) (ByteSize, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ByteSize(n), nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("parsing byte size %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("byte size %q overflows int64", s)
	}
	return ByteSize(n), nil
}

// Bytes returns the size as a plain int64.
func (b ByteSize) Bytes() int64 { return int64(b) }

// String renders the size with binary units ("64 GiB"). Negative sizes are
// rendered as raw integers.
func (b ByteSize) String() string {
	if b < 0 {
		return strconv.FormatInt(int64(b), 10)
	}
	return humanize.IBytes(uint64(b))
}

// UnmarshalYAML accepts integer byte counts and humanised strings.
func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: byte size must be a scalar", value.Line)
	}
	parsed, err := ParseByteSize(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*b = parsed
	return nil
}

// MarshalYAML emits the humanised form when it parses back to the exact same
// value, and the raw integer otherwise.
func (b ByteSize) MarshalYAML() (any, error) {
	s := b.String()
	if back, err := ParseByteSize(s); err == nil && back == b {
		return s, nil
	}
	return int64(b), nil
}
