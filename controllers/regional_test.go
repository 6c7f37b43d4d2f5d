package controllers

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/projector"
)

func regionalView() *projector.RegionalView {
	return &projector.RegionalView{
		Rows: []projector.RegionRow{
			{Region: "LIMA", CovidIntensity: 0.85, TotalCases: 100000, TempCurrent: 19.5, TempAnomaly: 1.5, Impact: "Alto"},
		},
	}
}

func TestRegional(t *testing.T) {
	t.Parallel()

	loader := newTestRegionalLoader(t)
	loader.LoadFunc = func(ctx context.Context) (*projector.RegionalView, error) {
		return regionalView(), nil
	}

	c := &Regional{Loader: loader}
	result := c.handle(context.Background(), projector.ChartPie, projector.ChartScatter)

	if result.Err != nil {
		t.Errorf("Unexpected error: %s", result.Err)
		return
	}
	if result.CovidChart.Kind != projector.ChartPie {
		t.Errorf("Incorrect covid chart kind; expected %s, was %s", projector.ChartPie, result.CovidChart.Kind)
	}
	if result.TemperatureChart.Kind != projector.ChartScatter {
		t.Errorf("Incorrect temperature chart kind; expected %s, was %s", projector.ChartScatter, result.TemperatureChart.Kind)
	}
}

func TestRegional_DefaultCharts(t *testing.T) {
	t.Parallel()

	loader := newTestRegionalLoader(t)
	loader.LoadFunc = func(ctx context.Context) (*projector.RegionalView, error) {
		return regionalView(), nil
	}

	// Absent query parameters arrive as empty chart kinds.
	c := &Regional{Loader: loader}
	result := c.handle(context.Background(), "", "")

	if result.CovidChart.Kind != projector.ChartBar {
		t.Errorf("Incorrect default covid chart kind; was %s", result.CovidChart.Kind)
	}
	if result.TemperatureChart.Kind != projector.ChartBar {
		t.Errorf("Incorrect default temperature chart kind; was %s", result.TemperatureChart.Kind)
	}
}

func TestRegional_LoadFailure(t *testing.T) {
	t.Parallel()

	loader := newTestRegionalLoader(t)
	loader.LoadFunc = func(ctx context.Context) (*projector.RegionalView, error) {
		return nil, errors.New("upstream unavailable")
	}

	c := &Regional{Loader: loader}
	result := c.handle(context.Background(), "", "")

	if result.Err == nil {
		t.Errorf("Expected error, got nil error")
	}
	if result.View != nil {
		t.Errorf("Expected nil view, got view")
	}
}
