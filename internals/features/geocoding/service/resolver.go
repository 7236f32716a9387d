package service

import (
	"context"
	"strconv"
)

// Resolver turns a coordinate into a human-readable place name.
//
// Implementations never fail and never return an empty string: any lookup
// problem degrades to FallbackLocationName. Injected into the post
// publication pipeline so tests can swap in a stub.
type Resolver interface {
	ResolveLocationName(ctx context.Context, lat, lon float64) string
}

// FallbackLocationName formats the raw coordinate, e.g. "55.86, -4.25".
// Used whenever the external lookup cannot produce a display name.
func FallbackLocationName(lat, lon float64) string {
	return formatCoord(lat) + ", " + formatCoord(lon)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
