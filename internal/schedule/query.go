package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/utfq/agmd/internal/domain"
)

var offsetRe = regexp.MustCompile(`^[+-]?\d+$`)

// ParseQuery parses a relative date filter. Accepted shapes, matched against
// the whole input:
//
//   - a signed day offset: "0", "-1", "+3"
//   - an offset range with ".." and optionally-open sides: "-1..3", "..3",
//     "-1..", ".."
//
// Anything else is rejected with a descriptive error; the caller must not
// fall back to a default on failure.
func ParseQuery(raw string) (domain.DateQuery, error) {
	if offsetRe.MatchString(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.DateQuery{}, fmt.Errorf("parsing day offset %q: %w", raw, err)
		}
		return domain.SingleQuery(n), nil
	}

	idx := strings.Index(raw, "..")
	if idx < 0 {
		return domain.DateQuery{}, fmt.Errorf("invalid date query %q: want a day offset like -1 or a range like -1..3", raw)
	}
	from, err := parseBound(raw[:idx], raw)
	if err != nil {
		return domain.DateQuery{}, err
	}
	to, err := parseBound(raw[idx+2:], raw)
	if err != nil {
		return domain.DateQuery{}, err
	}
	return domain.RangeQuery(from, to), nil
}

// parseBound parses one side of a range query; an empty side is open.
func parseBound(side, raw string) (*int, error) {
	if side == "" {
		return nil, nil
	}
	if !offsetRe.MatchString(side) {
		return nil, fmt.Errorf("invalid date query %q: range side %q is not a day offset", raw, side)
	}
	n, err := strconv.Atoi(side)
	if err != nil {
		return nil, fmt.Errorf("parsing day offset %q: %w", side, err)
	}
	return &n, nil
}
