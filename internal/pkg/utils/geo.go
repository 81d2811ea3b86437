package utils

import (
	"github.com/golang/geo/s2"

	"github.com/collisions-monitor/internal/domain"
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Bounds returns the smallest lat/lon box containing every valid point.
// ok is false when no point is valid.
func Bounds(points []domain.Point) (domain.BoundingBox, bool) {
	rect := s2.EmptyRect()
	for _, p := range points {
		if !ValidateCoordinates(p.Lat, p.Lon) {
			continue
		}
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
	}
	if rect.IsEmpty() {
		return domain.BoundingBox{}, false
	}

	lo, hi := rect.Lo(), rect.Hi()
	return domain.BoundingBox{
		MinLat: lo.Lat.Degrees(),
		MinLon: lo.Lng.Degrees(),
		MaxLat: hi.Lat.Degrees(),
		MaxLon: hi.Lng.Degrees(),
	}, true
}
