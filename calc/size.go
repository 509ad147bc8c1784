package calc

import "fmt"

// SizeUnit is a binary (1024-based) size unit accepted for raw object-size
// input.
type SizeUnit string

const (
	UnitBytes SizeUnit = "Bytes"
	UnitKB    SizeUnit = "KB"
	UnitMB    SizeUnit = "MB"
	UnitGB    SizeUnit = "GB"
	UnitTB    SizeUnit = "TB"
)

var unitMultipliers = map[SizeUnit]float64{
	UnitBytes: 1,
	UnitKB:    1024,
	UnitMB:    1024 * 1024,
	UnitGB:    1024 * 1024 * 1024,
	UnitTB:    1024 * 1024 * 1024 * 1024,
}

// ParseSizeUnit maps a unit name to its SizeUnit. "B" is accepted as an
// alias for "Bytes".
func ParseSizeUnit(s string) (SizeUnit, error) {
	if s == "B" {
		return UnitBytes, nil
	}
	u := SizeUnit(s)
	if _, ok := unitMultipliers[u]; !ok {
		return "", fmt.Errorf("unknown size unit %q", s)
	}
	return u, nil
}

// Bytes converts a value expressed in this unit to bytes.
func (u SizeUnit) Bytes(value float64) float64 {
	return value * unitMultipliers[u]
}

// FormatMemorySize renders a byte count as a human-readable string with two
// decimal places, scaling through B/KB/MB/GB/TB and falling through to PB
// for anything that never drops below 1024.
func FormatMemorySize(bytes float64) string {
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if bytes < 1024 {
			return fmt.Sprintf("%.2f %s", bytes, unit)
		}
		bytes /= 1024
	}
	return fmt.Sprintf("%.2f PB", bytes)
}
