package metrics

import (
	"sort"

	"github.com/GoSim-25-26J-441/nutruth/pkg/models"
	"github.com/GoSim-25-26J-441/nutruth/pkg/utils"
)

// Truth quantity names used as Summary.Quantities keys
const (
	QuantityEnergy       = "energy_init_mev"
	QuantityMomentum     = "momentum_mev"
	QuantityQ2           = "q2_gev2"
	QuantityW            = "w_gev"
	QuantityBjorkenX     = "bjorken_x"
	QuantityInelasticity = "inelasticity"
)

// Summary aggregates the records of a NeutrinoSet
type Summary struct {
	Events     int                            `json:"events"`
	ByCurrent  map[string]int                 `json:"by_current"`
	ByMode     map[string]int                 `json:"by_mode"`
	Quantities map[string]*models.Aggregation `json:"quantities"`
}

// Summarize counts records per current and mode and aggregates their kinematics.
// An empty set gives an empty summary with no quantities.
func Summarize(set *models.NeutrinoSet) *Summary {
	summary := &Summary{
		Events:     set.Len(),
		ByCurrent:  make(map[string]int),
		ByMode:     make(map[string]int),
		Quantities: make(map[string]*models.Aggregation),
	}

	values := make(map[string][]float64)
	for _, rec := range set.All() {
		summary.ByCurrent[models.CurrentName(rec.CurrentType())]++
		summary.ByMode[models.ModeName(rec.InteractionMode())]++

		values[QuantityEnergy] = append(values[QuantityEnergy], rec.EnergyInit())
		values[QuantityMomentum] = append(values[QuantityMomentum], rec.P())
		values[QuantityQ2] = append(values[QuantityQ2], rec.MomentumTransfer())
		values[QuantityW] = append(values[QuantityW], rec.HadronicInvariantMass())
		values[QuantityBjorkenX] = append(values[QuantityBjorkenX], rec.BjorkenX())
		values[QuantityInelasticity] = append(values[QuantityInelasticity], rec.Inelasticity())
	}

	for name, vals := range values {
		summary.Quantities[name] = calculateAggregation(vals)
	}
	return summary
}

// LogArgs flattens the summary into slog key/value pairs
func (s *Summary) LogArgs() []any {
	args := []any{"events", s.Events}
	for _, name := range sortedKeys(s.ByCurrent) {
		args = append(args, "current_"+name, s.ByCurrent[name])
	}
	for _, name := range sortedKeys(s.ByMode) {
		args = append(args, "mode_"+name, s.ByMode[name])
	}
	if agg := s.Quantities[QuantityEnergy]; agg != nil {
		args = append(args, "energy_mean_mev", agg.Mean, "energy_stddev_mev", agg.StdDev, "energy_p95_mev", agg.P95)
	}
	if agg := s.Quantities[QuantityQ2]; agg != nil {
		args = append(args, "q2_mean_gev2", agg.Mean)
	}
	return args
}

// calculateAggregation calculates aggregated statistics; values is sorted in place
func calculateAggregation(values []float64) *models.Aggregation {
	if len(values) == 0 {
		return nil
	}

	sort.Float64s(values)

	return &models.Aggregation{
		Count:  int64(len(values)),
		Sum:    utils.Sum(values),
		Min:    values[0],
		Max:    values[len(values)-1],
		Mean:   utils.Mean(values),
		StdDev: utils.StdDev(values),
		P50:    utils.SortedPercentile(values, 50),
		P95:    utils.SortedPercentile(values, 95),
		P99:    utils.SortedPercentile(values, 99),
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
