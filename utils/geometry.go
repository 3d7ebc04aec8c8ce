package utils

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// BoundaryAreaHectares parses a GeoJSON geometry or feature and returns
// the enclosed geodesic area in hectares. Only Polygon and MultiPolygon
// geometries are accepted.
func BoundaryAreaHectares(raw []byte) (float64, error) {
	geom, err := parseBoundary(raw)
	if err != nil {
		return 0, err
	}

	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return math.Abs(geo.Area(geom)) / 10000, nil
	default:
		return 0, fmt.Errorf("boundary must be a Polygon or MultiPolygon, got %s", geom.GeoJSONType())
	}
}

func parseBoundary(raw []byte) (orb.Geometry, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty boundary")
	}
	if g, err := geojson.UnmarshalGeometry(raw); err == nil {
		return g.Geometry(), nil
	}
	if f, err := geojson.UnmarshalFeature(raw); err == nil {
		return f.Geometry, nil
	}
	return nil, errors.New("boundary is not valid GeoJSON")
}
