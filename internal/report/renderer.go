package report

// ChartKind selects the chart drawn from a series.
type ChartKind string

const (
	// ChartPie draws one wedge per point.
	ChartPie ChartKind = "pie"
	// ChartBar draws one bar per point.
	ChartBar ChartKind = "bar"
)

// Renderer turns a named series into a raster chart image. The pipeline
// treats the renderer as opaque: it only requires that the returned bytes
// are a PNG image of the requested pixel dimensions, usable by the report
// composer. A series the renderer cannot draw (no points, zero total for a
// pie) is a rendering failure and fails the whole report.
type Renderer interface {
	Render(series Series, kind ChartKind, widthPx, heightPx int) ([]byte, error)
}
