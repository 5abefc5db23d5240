// Package chartrender renders price bars as PNG line charts.
package chartrender

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"equity_backend/internal/feature/equities/domain/entity"
)

// ErrNotEnoughPoints is returned when fewer than two bars carry a parseable date.
var ErrNotEnoughPoints = errors.New("need at least 2 data points")

const dateLayout = "2006-01-02"

// RenderEquityChart renders a PNG with two series: daily high (left axis) and
// volume in millions (right axis). Bars whose date does not parse are skipped.
func RenderEquityChart(symbol string, equities []entity.Equity) ([]byte, error) {
	xValues := make([]time.Time, 0, len(equities))
	highY := make([]float64, 0, len(equities))
	volumeY := make([]float64, 0, len(equities))

	for _, e := range equities {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		xValues = append(xValues, d)
		highY = append(highY, e.High)
		volumeY = append(volumeY, float64(e.Volume)/1_000_000)
	}
	if len(xValues) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrNotEnoughPoints, len(xValues))
	}

	highSeries := chart.TimeSeries{
		Name: "High",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2,
		},
		XValues: xValues,
		YValues: highY,
	}

	volumeSeries := chart.TimeSeries{
		Name:  "Volume (M)",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: volumeY,
	}

	graph := chart.Chart{
		Title:  symbol,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Range: flatRange(highY),
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		YAxisSecondary: chart.YAxis{
			Range: flatRange(volumeY),
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1fM", f)
				}
				return ""
			},
		},
		Series: []chart.Series{highSeries, volumeSeries},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// flatRange widens a constant series so the axis has a non-zero span.
// It returns nil (auto range) when the values vary.
func flatRange(ys []float64) chart.Range {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if hi > lo {
		return nil
	}
	return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
}
