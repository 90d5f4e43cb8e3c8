package attractor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when an iteration count or parameter cannot be used.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxCount is the largest iteration count accepted. Each coordinate slice of
// MaxCount float64s stays below the runtime's single-allocation limit on both
// 32- and 64-bit platforms.
const MaxCount = min(1<<40, math.MaxInt/16)

// CheckCount reports whether n is a usable iteration count.
// Negative counts are rejected rather than treated as zero.
func CheckCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: iteration count must be non-negative, got %d", ErrInvalidArgument, n)
	}
	if n > MaxCount {
		return fmt.Errorf("%w: iteration count %d exceeds maximum %d", ErrInvalidArgument, n, MaxCount)
	}
	return nil
}

// ParseCount converts a textual iteration count, as received from a caller that
// only has strings, into an int.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: iteration count %q out of range", ErrInvalidArgument, s)
		}
		return 0, fmt.Errorf("%w: iteration count %q is not an integer", ErrInvalidArgument, s)
	}
	if err := CheckCount(n); err != nil {
		return 0, err
	}
	return n, nil
}
