package reducer

import (
	"fmt"

	"github.com/speleotech/surveyd/geom"
	"github.com/speleotech/surveyd/survey"
)

// OriginMode selects how Reduce treats an origin station that appears in no
// shot.
type OriginMode string

const (
	// OriginPermissive anchors the absent origin on its own; every shot
	// endpoint is then reported as disconnected. This is the default.
	OriginPermissive OriginMode = "permissive"

	// OriginStrict fails the reduction with an OriginNotFoundError.
	OriginStrict OriginMode = "strict"
)

// Options configures a reduction call.
type Options struct {
	OriginMode OriginMode
}

// OriginNotFoundError reports a strict-mode reduction whose origin station
// is not an endpoint of any shot.
type OriginNotFoundError struct {
	Station string
}

func (e *OriginNotFoundError) Error() string {
	return fmt.Sprintf("origin station %q does not appear in any shot", e.Station)
}

// halfEdge is one direction of a shot in the adjacency list.
type halfEdge struct {
	to   int
	d    survey.Point3
	shot int
}

// graph interns station names into dense indices and holds the undirected
// adjacency list. Interning order is first appearance in the shot list,
// which also fixes the reporting order of disconnected stations.
type graph struct {
	index map[string]int
	names []string
	adj   [][]halfEdge
}

func newGraph() *graph {
	return &graph{index: map[string]int{}}
}

func (g *graph) intern(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	i := len(g.names)
	g.index[name] = i
	g.names = append(g.names, name)
	g.adj = append(g.adj, nil)
	return i
}

// Reduce validates shots, assigns an absolute position to every station
// reachable from the origin, and aggregates residuals and summary metadata.
// Shots are never mutated; all state is local to the call.
func Reduce(shots []survey.Shot, origin survey.Origin, opts Options) (*survey.Result, error) {
	if err := survey.ValidateShots(shots); err != nil {
		return nil, err
	}

	g := newGraph()
	edges := make([]survey.Edge, 0, len(shots))
	var totalSlope, totalHoriz float64
	for i, s := range shots {
		u := g.intern(s.FromStation)
		v := g.intern(s.ToStation)
		d, horiz := geom.ShotDisplacement(s)
		g.adj[u] = append(g.adj[u], halfEdge{to: v, d: d, shot: i})
		g.adj[v] = append(g.adj[v], halfEdge{to: u, d: d.Neg(), shot: i})
		edges = append(edges, survey.Edge{From: s.FromStation, To: s.ToStation})
		totalSlope += s.SlopeDistance
		totalHoriz += horiz
	}

	seed, ok := g.index[origin.Station]
	if !ok {
		if opts.OriginMode == OriginStrict {
			return nil, &OriginNotFoundError{Station: origin.Station}
		}
		seed = g.intern(origin.Station)
	}

	pos := make([]survey.Point3, len(g.names))
	have := make([]bool, len(g.names))
	pos[seed] = origin.Point()
	have[seed] = true

	consumed := make([]bool, len(shots))
	residuals := []survey.Residual{}

	queue := make([]int, 0, len(g.names))
	queue = append(queue, seed)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[u] {
			if consumed[e.shot] {
				continue
			}
			consumed[e.shot] = true
			if !have[e.to] {
				pos[e.to] = pos[u].Add(e.d)
				have[e.to] = true
				queue = append(queue, e.to)
				continue
			}
			// Loop closure: both endpoints already positioned. First
			// assignment wins; record the discrepancy in traversal direction.
			diff := pos[u].Add(e.d).Sub(pos[e.to])
			residuals = append(residuals, survey.Residual{
				From: g.names[u],
				To:   g.names[e.to],
				Dx:   diff.X,
				Dy:   diff.Y,
				Dz:   diff.Z,
			})
		}
	}

	stations := make(map[string]survey.Point3, len(g.names))
	disconnected := []string{}
	bbox := survey.NewBBox(origin.Point())
	for i, name := range g.names {
		if !have[i] {
			disconnected = append(disconnected, name)
			continue
		}
		stations[name] = pos[i]
		bbox.Extend(pos[i])
	}

	return &survey.Result{
		Stations: stations,
		Edges:    edges,
		Meta: survey.Meta{
			NumStations:             len(stations),
			NumShots:                len(shots),
			TotalSlopeDistance:      totalSlope,
			TotalHorizontalDistance: totalHoriz,
			BBox:                    bbox,
			Residuals:               residuals,
			DisconnectedStations:    disconnected,
		},
	}, nil
}
