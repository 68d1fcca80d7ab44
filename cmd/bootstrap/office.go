package bootstrap

import (
	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/pkg/config"
	"office-scheduler/internal/pkg/holiday"
	"office-scheduler/internal/pkg/metrics"

	"go.uber.org/fx"
)

var OfficeModule = fx.Module("office",
	fx.Provide(
		NewOfficeRules,
	),
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewOfficeRules binds the calendar context every admission decision runs in:
// the office timezone and the configured holiday list.
func NewOfficeRules(cfg config.Config) (attendance.Rules, error) {
	loc, err := cfg.Office.Location()
	if err != nil {
		return attendance.Rules{}, err
	}

	oracle, err := holiday.NewStaticOracle(cfg.Office.Holidays)
	if err != nil {
		return attendance.Rules{}, err
	}

	return attendance.Rules{
		Location:  loc,
		IsHoliday: oracle.IsHoliday,
	}, nil
}

func NewMetrics() *metrics.Metrics {
	return metrics.New("office_scheduler")
}
