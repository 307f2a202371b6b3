package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/apod-cli/apod/apod"
	"github.com/apod-cli/apod/constant"
	"github.com/apod-cli/apod/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker selects a single entry from a list. It returns nil when nothing matches.
type Picker func([]*apod.Entry) *apod.Entry

type Options struct {
	Out    io.Writer
	Json   bool
	Search string
	Sort   mo.Option[apod.SortOrder]
	// Count limits the number of listed entries. Zero lists everything.
	Count  int
	Picker mo.Option[Picker]
}

// ParsePicker parses a picker description:
//
//	first | last | index:N | N | date:YYYY-MM-DD
func ParsePicker(description string) (Picker, error) {
	kind, value, _ := strings.Cut(strings.TrimSpace(description), ":")

	switch kind {
	case "first":
		return func(entries []*apod.Entry) *apod.Entry {
			if len(entries) == 0 {
				return nil
			}
			return entries[0]
		}, nil
	case "last":
		return func(entries []*apod.Entry) *apod.Entry {
			if len(entries) == 0 {
				return nil
			}
			return entries[len(entries)-1]
		}, nil
	case "date":
		day, err := time.Parse(constant.DateLayout, value)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %s", value)
		}
		date := day.Format(constant.DateLayout)
		return func(entries []*apod.Entry) *apod.Entry {
			entry, _ := lo.Find(entries, func(e *apod.Entry) bool {
				return e.Date == date
			})
			return entry
		}, nil
	case "index":
		return indexPicker(value)
	default:
		if _, err := strconv.ParseUint(kind, 10, 16); err == nil && value == "" {
			return indexPicker(kind)
		}
		return nil, fmt.Errorf("unknown picker: %s", description)
	}
}

// indexPicker clamps out of range indices to the last entry.
func indexPicker(value string) (Picker, error) {
	idx, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid index: %s", value)
	}
	return func(entries []*apod.Entry) *apod.Entry {
		if len(entries) == 0 {
			return nil
		}
		i := util.Min(idx, uint64(len(entries)-1))
		return entries[i]
	}, nil
}
