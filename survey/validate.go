package survey

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// InvalidShotError reports a shot that failed boundary validation.
// Index is the shot's position in the submitted batch.
type InvalidShotError struct {
	Index  int
	Reason string
}

func (e *InvalidShotError) Error() string {
	return fmt.Sprintf("invalid shot at index %d: %s", e.Index, e.Reason)
}

// ValidateShots is the boundary pre-pass: station names must be non-empty,
// slope distance strictly positive, and every numeric field finite. The
// first failure aborts the whole batch; no partial reduction is performed
// downstream of a failed batch.
func ValidateShots(shots []Shot) error {
	for i, s := range shots {
		if err := validate.Struct(s); err != nil {
			return &InvalidShotError{Index: i, Reason: validationReason(s, err)}
		}
		if !isFinite(s.SlopeDistance) || !isFinite(s.AzimuthDeg) || !isFinite(s.InclinationDeg) {
			return &InvalidShotError{Index: i, Reason: "non-finite measurement"}
		}
	}
	return nil
}

func validationReason(s Shot, err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	switch errs[0].Field() {
	case "FromStation", "ToStation":
		return "station name must be non-empty"
	case "SlopeDistance":
		return fmt.Sprintf("slope_distance must be > 0, got %g", s.SlopeDistance)
	}
	return errs[0].Error()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeShot wraps the azimuth into [0, 360) and clamps the inclination
// to [-90, 90]. Callers apply this before reduction; the reducer itself
// never re-normalizes.
func NormalizeShot(s Shot) Shot {
	s.AzimuthDeg = WrapAzimuth(s.AzimuthDeg)
	s.InclinationDeg = ClampInclination(s.InclinationDeg)
	return s
}

// NormalizeShots normalizes a batch in place-order, returning a new slice.
func NormalizeShots(shots []Shot) []Shot {
	out := make([]Shot, len(shots))
	for i, s := range shots {
		out[i] = NormalizeShot(s)
	}
	return out
}

// WrapAzimuth maps any finite bearing onto [0, 360).
func WrapAzimuth(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	return w
}

// ClampInclination limits an inclination to [-90, 90].
func ClampInclination(deg float64) float64 {
	if deg > 90 {
		return 90
	}
	if deg < -90 {
		return -90
	}
	return deg
}
