// Package geom converts a single shot's polar measurement into a Cartesian
// displacement using cave-survey conventions: azimuth clockwise from north
// (N=0, E=90, S=180, W=270), inclination from horizontal, positive up.
package geom

import (
	"math"

	"github.com/speleotech/surveyd/survey"
)

// Displacement returns the Cartesian displacement of a shot in the local
// frame of its from-station, along with the horizontal component magnitude.
// X is east, Y is north, Z is up.
//
// Pure and validation-free: any finite inputs produce a mathematically
// consistent displacement, and non-finite inputs propagate. Range checks
// belong to the caller (see survey.ValidateShots).
func Displacement(slopeDistance, azimuthDeg, inclinationDeg float64) (d survey.Point3, horizontal float64) {
	inc := radians(inclinationDeg)
	az := radians(azimuthDeg)
	horizontal = slopeDistance * math.Cos(inc)
	d.Z = slopeDistance * math.Sin(inc)
	d.X = horizontal * math.Sin(az)
	d.Y = horizontal * math.Cos(az)
	return d, horizontal
}

// ShotDisplacement is Displacement applied to a shot's own fields.
func ShotDisplacement(s survey.Shot) (survey.Point3, float64) {
	return Displacement(s.SlopeDistance, s.AzimuthDeg, s.InclinationDeg)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
