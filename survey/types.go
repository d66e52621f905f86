package survey

// Shot is one measurement between two stations: distance along the tape,
// compass bearing clockwise from north, and inclination from horizontal
// (positive up). Station identity is case-sensitive.
type Shot struct {
	FromStation    string  `json:"from_station" validate:"required"`
	ToStation      string  `json:"to_station" validate:"required"`
	SlopeDistance  float64 `json:"slope_distance" validate:"gt=0"`
	AzimuthDeg     float64 `json:"azimuth_deg"`
	InclinationDeg float64 `json:"inclination_deg"`
}

// Origin names the anchor station and its absolute position.
type Origin struct {
	Station string  `json:"station"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

// Point returns the anchor position.
func (o Origin) Point() Point3 { return Point3{o.X, o.Y, o.Z} }

// Point3 is an absolute or relative position: X east, Y north, Z up.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Neg() Point3         { return Point3{-p.X, -p.Y, -p.Z} }

// Edge is one shot's connectivity, in the order shots were supplied.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Residual is the positional discrepancy of a loop-closing shot: the
// difference between the position the shot implies for its far endpoint and
// the position that endpoint already holds. From/To are in traversal
// direction, which may be the reverse of the underlying shot.
type Residual struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Dx   float64 `json:"dx"`
	Dy   float64 `json:"dy"`
	Dz   float64 `json:"dz"`
}

// BBox is the axis-aligned extent of all positioned stations.
type BBox struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
	MinZ float64 `json:"min_z"`
	MaxZ float64 `json:"max_z"`
}

// NewBBox returns a degenerate box containing only p.
func NewBBox(p Point3) BBox {
	return BBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y, MinZ: p.Z, MaxZ: p.Z}
}

// Extend grows the box to contain p.
func (b *BBox) Extend(p Point3) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	if p.Z < b.MinZ {
		b.MinZ = p.Z
	}
	if p.Z > b.MaxZ {
		b.MaxZ = p.Z
	}
}

// Meta is the summary block of a reduction.
type Meta struct {
	NumStations             int        `json:"num_stations"`
	NumShots                int        `json:"num_shots"`
	TotalSlopeDistance      float64    `json:"total_slope_distance"`
	TotalHorizontalDistance float64    `json:"total_horizontal_distance"`
	BBox                    BBox       `json:"bbox"`
	Residuals               []Residual `json:"residuals"`
	DisconnectedStations    []string   `json:"disconnected_stations"`
}

// Result is the full output of one reduction call.
type Result struct {
	Stations map[string]Point3 `json:"stations"`
	Edges    []Edge            `json:"edges"`
	Meta     Meta              `json:"meta"`
}
