package artifact

import (
	"fmt"
	"strconv"

	"github.com/ALex83-r0ck/MietStoerungsProtokoll/internal/contract"
	"github.com/ALex83-r0ck/MietStoerungsProtokoll/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const dateTickFormat = "02.01.06"

// RenderTrend draws the mean duration per day as a line chart.
func (r *Renderer) RenderTrend(points []schema.TrendPoint) (bool, error) {
	if len(points) == 0 {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = "Mean disturbance duration per day"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Minutes"
	p.X.Tick.Marker = plot.TimeTicks{Format: dateTickFormat}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Date.Unix())
		xys[i].Y = pt.MeanDuration
	}
	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return false, fmt.Errorf("failed to build trend line: %w", err)
	}
	line.Color = baseColor
	marks.Color = baseColor
	p.Add(plotter.NewGrid(), line, marks)

	if err := r.save(p, schema.TrendArtifact); err != nil {
		return false, err
	}
	return true, nil
}

// RenderHistogram draws the duration distribution with the modal bin highlighted and annotated.
func (r *Renderer) RenderHistogram(h schema.DurationHistogram) (bool, error) {
	if h.Empty() {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = "Distribution of disturbance durations"
	p.X.Label.Text = "Duration (minutes)"
	p.Y.Label.Text = "Disturbances"

	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	width := h.Bins[0].Max - h.Bins[0].Min
	all := &plotter.Histogram{Bins: bins, Width: width, FillColor: baseColor, LineStyle: plotter.DefaultLineStyle}
	p.Add(plotter.NewGrid(), all)

	if h.ModalBin >= 0 {
		modal := h.Bins[h.ModalBin]
		p.Add(&plotter.Histogram{
			Bins:      []plotter.HistogramBin{bins[h.ModalBin]},
			Width:     width,
			FillColor: highlightColor,
			LineStyle: plotter.DefaultLineStyle,
		})

		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: modal.Center(), Y: float64(modal.Count)}},
			Labels: []string{fmt.Sprintf("Most frequent duration\n%.0f min", modal.Center())},
		})
		if err != nil {
			return false, fmt.Errorf("failed to build histogram annotation: %w", err)
		}
		labels.TextStyle[0].Color = highlightColor
		labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(4)}
		p.Add(labels)
	}

	if err := r.save(p, schema.HistogramArtifact); err != nil {
		return false, err
	}
	return true, nil
}

// RenderCauses draws the ranked causes as horizontal bars, the most frequent on top.
func (r *Renderer) RenderCauses(causes []schema.CauseCount) (bool, error) {
	if len(causes) == 0 {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = "Most frequent causes"
	p.X.Label.Text = "Disturbances"

	n := len(causes)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, c := range causes {
		// Nominal axes count from the bottom
		values[n-1-i] = float64(c.Count)
		names[n-1-i] = contract.TruncateLabel(c.Cause, maxCauseLabel)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return false, fmt.Errorf("failed to build cause bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = baseColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	if err := r.save(p, schema.CausesArtifact); err != nil {
		return false, err
	}
	return true, nil
}

// RenderHours draws the hour-of-day histogram with the peak hour highlighted.
func (r *Renderer) RenderHours(h schema.HourHistogram) (bool, error) {
	peak, ok := h.Peak()
	if !ok {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = "Disturbances by hour of day"
	p.X.Label.Text = "Hour"
	p.Y.Label.Text = "Disturbances"

	values := make(plotter.Values, schema.HoursPerDay)
	names := make([]string, schema.HoursPerDay)
	for hour, count := range h {
		values[hour] = float64(count)
		names[hour] = strconv.Itoa(hour)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return false, fmt.Errorf("failed to build hour bars: %w", err)
	}
	bars.Color = baseColor
	bars.LineStyle.Width = 0

	peakBar, err := plotter.NewBarChart(plotter.Values{values[peak]}, vg.Points(16))
	if err != nil {
		return false, fmt.Errorf("failed to build peak bar: %w", err)
	}
	peakBar.XMin = float64(peak)
	peakBar.Color = highlightColor
	peakBar.LineStyle.Width = 0

	p.Add(plotter.NewGrid(), bars, peakBar)
	p.NominalX(names...)

	if err := r.save(p, schema.HoursArtifact); err != nil {
		return false, err
	}
	return true, nil
}

// RenderForecast draws the recent daily history in grey and the forecast in red.
func (r *Renderer) RenderForecast(history []schema.TrendPoint, forecast []schema.ForecastPoint) (bool, error) {
	if len(forecast) == 0 {
		return false, nil
	}

	p := plot.New()
	p.Title.Text = "Forecast of disturbance duration"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Minutes"
	p.X.Tick.Marker = plot.TimeTicks{Format: dateTickFormat}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if len(history) > 0 {
		xys := make(plotter.XYs, len(history))
		for i, pt := range history {
			xys[i].X = float64(pt.Date.Unix())
			xys[i].Y = pt.MeanDuration
		}
		line, marks, err := plotter.NewLinePoints(xys)
		if err != nil {
			return false, fmt.Errorf("failed to build history line: %w", err)
		}
		line.Color = historyColor
		marks.Color = historyColor
		p.Add(line, marks)
		p.Legend.Add(fmt.Sprintf("Recent history (last %d)", schema.HistoryTailPoints), line, marks)
	}

	xys := make(plotter.XYs, len(forecast))
	for i, pt := range forecast {
		xys[i].X = float64(pt.Date.Unix())
		xys[i].Y = pt.PredictedMinutes
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return false, fmt.Errorf("failed to build forecast line: %w", err)
	}
	line.Color = highlightColor
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(line)
	p.Legend.Add("Forecast", line)

	if err := r.save(p, schema.ForecastArtifact); err != nil {
		return false, err
	}
	return true, nil
}
