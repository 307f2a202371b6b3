package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parse reads MAJOR[.MINOR[.PATCH]] with an optional leading v. Build and pre-release suffixes are ignored.
func parse(s string) ([3]int, error) {
	var parts [3]int

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	s, _, _ = strings.Cut(s, "-")
	s, _, _ = strings.Cut(s, "+")

	fields := strings.Split(s, ".")
	if len(fields) > 3 {
		return parts, fmt.Errorf("invalid version %q", s)
	}

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return parts, fmt.Errorf("invalid version %q", s)
		}
		parts[i] = n
	}

	return parts, nil
}

// Compare returns 1 if a is newer than b, -1 if it is older and 0 if they are the same release.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		if c := cmp.Compare(pair.A, pair.B); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}
