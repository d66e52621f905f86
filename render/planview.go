// Package render draws a plan view of a reduced survey as a self-contained
// HTML chart. It consumes only stations and edges and knows nothing about
// the reduction algorithm.
package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/speleotech/surveyd/survey"
)

// PlanView renders the X (east) / Y (north) projection of a reduction as an
// HTML page. Stations become fixed-position labelled nodes and every edge
// whose endpoints are both positioned becomes a link; disconnected stations
// have no coordinates and are omitted, matching the plotting behaviour of
// the rest of the pipeline.
func PlanView(res *survey.Result) ([]byte, error) {
	names := make([]string, 0, len(res.Stations))
	for name := range res.Stations {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]opts.GraphNode, 0, len(names))
	for _, name := range names {
		p := res.Stations[name]
		// Chart y grows downward, survey north grows upward.
		nodes = append(nodes, opts.GraphNode{
			Name:       name,
			X:          float32(p.X),
			Y:          float32(-p.Y),
			Value:      float32(p.Z),
			Fixed:      opts.Bool(true),
			SymbolSize: 8,
		})
	}

	links := make([]opts.GraphLink, 0, len(res.Edges))
	for _, e := range res.Edges {
		if _, ok := res.Stations[e.From]; !ok {
			continue
		}
		if _, ok := res.Stations[e.To]; !ok {
			continue
		}
		links = append(links, opts.GraphLink{Source: e.From, Target: e.To})
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Survey Plan View",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Survey Plan View (X east / Y north)",
			Subtitle: fmt.Sprintf("stations=%d shots=%d residuals=%d", res.Meta.NumStations, res.Meta.NumShots, len(res.Meta.Residuals)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries("stations", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "none",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)

	var buf bytes.Buffer
	if err := graph.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render plan view: %w", err)
	}
	return buf.Bytes(), nil
}
