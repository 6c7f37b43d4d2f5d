package projector

// Chart projections are a pure presentation switch: no data reshaping beyond
// what each chart type needs. The rendering collaborator receives these as
// structured series.

type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartPie     ChartKind = "pie"
	ChartScatter ChartKind = "scatter"
)

type ChartPoint struct {
	Label string
	Value float64
	X     float64
	Y     float64
}

type ChartSeries struct {
	Kind   ChartKind
	Title  string
	Points []ChartPoint
}

// CovidSeries projects the case dataset as a bar or pie series; any other
// kind falls back to bar.
func (v *RegionalView) CovidSeries(kind ChartKind) ChartSeries {
	if kind != ChartPie {
		kind = ChartBar
	}
	series := ChartSeries{Kind: kind, Title: "Intensidad COVID por departamento"}
	for _, row := range v.Rows {
		series.Points = append(series.Points, ChartPoint{
			Label: row.Region,
			Value: row.CovidIntensity * 100,
		})
	}
	return series
}

// TemperatureSeries projects the temperature dataset as a bar or scatter
// series; any other kind falls back to bar. Scatter points plot current
// temperature against anomaly.
func (v *RegionalView) TemperatureSeries(kind ChartKind) ChartSeries {
	if kind != ChartScatter {
		kind = ChartBar
	}
	series := ChartSeries{Kind: kind, Title: "Anomalía de temperatura por departamento"}
	for _, row := range v.Rows {
		point := ChartPoint{
			Label: row.Region,
			Value: row.TempAnomaly,
		}
		if kind == ChartScatter {
			point.X = row.TempCurrent
			point.Y = row.TempAnomaly
		}
		series.Points = append(series.Points, point)
	}
	return series
}
