package holiday

import (
	"fmt"
	"time"
)

// Oracle answers whether a calendar date is an office holiday. Attendance
// admission consumes it as a pluggable predicate; the service ships a static
// list implementation, deployments may supply their own.
type Oracle interface {
	IsHoliday(date time.Time) bool
}

type staticOracle struct {
	exact     map[string]struct{} // "2006-01-02"
	recurring map[string]struct{} // "01-02", every year
}

// NewStaticOracle builds an Oracle from date strings. Entries are either full
// dates ("2025-12-25") or recurring month-day pairs ("12-25").
func NewStaticOracle(entries []string) (Oracle, error) {
	o := &staticOracle{
		exact:     make(map[string]struct{}),
		recurring: make(map[string]struct{}),
	}
	for _, e := range entries {
		if e == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", e); err == nil {
			o.exact[e] = struct{}{}
			continue
		}
		if _, err := time.Parse("01-02", e); err == nil {
			o.recurring[e] = struct{}{}
			continue
		}
		return nil, fmt.Errorf("invalid holiday entry %q: want YYYY-MM-DD or MM-DD", e)
	}
	return o, nil
}

func (o *staticOracle) IsHoliday(date time.Time) bool {
	if _, ok := o.exact[date.Format("2006-01-02")]; ok {
		return true
	}
	_, ok := o.recurring[date.Format("01-02")]
	return ok
}

// None is an Oracle that recognizes no holidays.
type None struct{}

func (None) IsHoliday(time.Time) bool { return false }
