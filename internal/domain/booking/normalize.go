package booking

import (
	"sort"
	"time"

	"github.com/bellebook/salon-scheduler/internal/httperr"
)

// BlockPayload is the wire shape of a time-block submission. The backend
// schema changed over time, so two forms still occur: the current flat
// list and the legacy labelled groups. Exactly one must be present.
type BlockPayload struct {
	Times      []string      `json:"times"`
	TimeBlocks []LegacyBlock `json:"time_blocks"`
}

type LegacyBlock struct {
	Label string   `json:"label"`
	Times []string `json:"times"`
}

// NormalizeTimes flattens either shape into one validated, de-duplicated,
// sorted list of "HH:MM" times. Equivalent payloads in either shape
// normalize to identical results.
func NormalizeTimes(p BlockPayload) ([]string, error) {
	var raw []string

	switch {
	case len(p.Times) > 0 && len(p.TimeBlocks) > 0:
		return nil, httperr.ErrBusiness("ambiguous_time_shape")
	case len(p.Times) > 0:
		raw = p.Times
	case len(p.TimeBlocks) > 0:
		for _, tb := range p.TimeBlocks {
			raw = append(raw, tb.Times...)
		}
	default:
		return nil, httperr.ErrBusiness("missing_times")
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))

	for _, hm := range raw {
		// time.Parse alone accepts "9:00"; require the canonical
		// zero-padded form so stored times compare as strings
		if len(hm) != 5 || hm[2] != ':' {
			return nil, httperr.ErrBusiness("invalid_time_format")
		}
		if _, err := time.Parse("15:04", hm); err != nil {
			return nil, httperr.ErrBusiness("invalid_time_format")
		}
		if _, dup := seen[hm]; dup {
			continue
		}
		seen[hm] = struct{}{}
		out = append(out, hm)
	}

	sort.Strings(out)
	return out, nil
}
