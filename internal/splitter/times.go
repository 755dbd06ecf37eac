package splitter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/cablesplit/internal/domain"
)

// ParseTimes parses a split count given as text, such as a flag or an
// environment variable. Anything that is not a whole decimal number,
// including "1.6" and the empty string, is rejected with
// domain.ErrTimesNotInteger. Integers too large for an int are reported
// with the range error Split would give them; other range checks are left
// to Split.
func ParseTimes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, domain.ErrTimesNotInteger
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return 0, fmt.Errorf("%w: %s", domain.ErrTooFewSplits, s)
		}
		return 0, fmt.Errorf("%w: %s", domain.ErrTooManySplits, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrTimesNotInteger, s)
	}
	return n, nil
}

// TimesFromValue converts a decoded value (from TOML, JSON or YAML) into a
// split count. Only integer kinds are accepted; nil, floats (even whole
// ones), strings and booleans are rejected with domain.ErrTimesNotInteger.
func TimesFromValue(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %d out of range", domain.ErrTimesNotInteger, n)
		}
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d out of range", domain.ErrTimesNotInteger, n)
		}
		return int(n), nil
	case nil:
		return 0, domain.ErrTimesNotInteger
	default:
		return 0, fmt.Errorf("%w: got %T", domain.ErrTimesNotInteger, v)
	}
}
