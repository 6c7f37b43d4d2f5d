package projector

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

// RegionalProjector joins the case/intensity and temperature datasets into
// rows for tabular and chart display. The case dataset's region keys are the
// join spine; a region missing from the temperature dataset gets a zero-valued
// placeholder rather than dropping the row.
type RegionalProjector struct {
	Source RegionalSource
}

type RegionRow struct {
	Region         string
	CovidIntensity float64
	TotalCases     int
	TempAnomaly    float64
	TempCurrent    float64
	TempAverage    float64
	Impact         string
}

// CovidIntensityPercent rescales the 0-1 intensity for percentage display.
func (r RegionRow) CovidIntensityPercent() float64 {
	return r.CovidIntensity * 100
}

type RegionalStats struct {
	Regions       int
	TotalCases    int
	MeanIntensity float64
	MaxIntensity  float64
	MinIntensity  float64
	MeanAnomaly   float64
	MaxAnomaly    float64
	MinAnomaly    float64
}

type RegionalView struct {
	Rows       []RegionRow
	Advisories []string
	Stats      RegionalStats
}

func (p *RegionalProjector) Load(ctx context.Context) (*RegionalView, error) {
	var covid *data.CovidMap
	var temp *data.TemperatureMap

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := p.Source.CovidMap(gctx)
		if err != nil {
			return errors.Wrap(err, "couldn't fetch case dataset")
		}
		covid = m
		return nil
	})
	g.Go(func() error {
		m, err := p.Source.TemperatureMap(gctx)
		if err != nil {
			return errors.Wrap(err, "couldn't fetch temperature dataset")
		}
		temp = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(covid.Regions) == 0 {
		return nil, &data.EmptyDatasetError{Dataset: "covid"}
	}

	view := new(RegionalView)
	if covid.Simulated {
		view.Advisories = append(view.Advisories, "Datos COVID simulados: fuente en vivo no disponible")
	}
	if temp.Simulated {
		view.Advisories = append(view.Advisories, "Datos de temperatura simulados: fuente en vivo no disponible")
	}

	regions := make([]string, 0, len(covid.Regions))
	for region := range covid.Regions {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		c := covid.Regions[region]
		t := temp.Regions[region] // zero placeholder when absent
		view.Rows = append(view.Rows, RegionRow{
			Region:         region,
			CovidIntensity: c.Intensity,
			TotalCases:     c.TotalCases,
			TempAnomaly:    t.Anomaly,
			TempCurrent:    t.Current,
			TempAverage:    t.Average,
			Impact:         impactLabel(c.Intensity),
		})
	}

	view.Stats = aggregate(view.Rows)
	return view, nil
}

func impactLabel(intensity float64) string {
	switch {
	case intensity > 0.6:
		return "Alto"
	case intensity >= 0.3:
		return "Medio"
	default:
		return "Bajo"
	}
}

// aggregate recomputes the summary from the current joined rows on every load.
func aggregate(rows []RegionRow) RegionalStats {
	stats := RegionalStats{Regions: len(rows)}
	if len(rows) == 0 {
		return stats
	}

	stats.MinIntensity = rows[0].CovidIntensity
	stats.MaxIntensity = rows[0].CovidIntensity
	stats.MinAnomaly = rows[0].TempAnomaly
	stats.MaxAnomaly = rows[0].TempAnomaly
	var sumIntensity, sumAnomaly float64
	for _, row := range rows {
		stats.TotalCases += row.TotalCases
		sumIntensity += row.CovidIntensity
		sumAnomaly += row.TempAnomaly
		if row.CovidIntensity > stats.MaxIntensity {
			stats.MaxIntensity = row.CovidIntensity
		}
		if row.CovidIntensity < stats.MinIntensity {
			stats.MinIntensity = row.CovidIntensity
		}
		if row.TempAnomaly > stats.MaxAnomaly {
			stats.MaxAnomaly = row.TempAnomaly
		}
		if row.TempAnomaly < stats.MinAnomaly {
			stats.MinAnomaly = row.TempAnomaly
		}
	}
	stats.MeanIntensity = sumIntensity / float64(len(rows))
	stats.MeanAnomaly = sumAnomaly / float64(len(rows))
	return stats
}
