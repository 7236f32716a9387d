package service

import (
	"context"
	"time"

	"resty.dev/v3"
)

// One attempt per call and a timeout well under the request budget; retries
// would stretch user-facing latency, so they stay with the caller.
const resolveTimeout = 3 * time.Second

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// NominatimResolver resolves coordinates against an OpenStreetMap Nominatim
// endpoint.
type NominatimResolver struct {
	client *resty.Client
}

func NewNominatimResolver(baseURL, userAgent string) *NominatimResolver {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(resolveTimeout).
		// Required by the Nominatim usage policy; anonymous clients get blocked.
		SetHeader("User-Agent", userAgent)

	return &NominatimResolver{client: client}
}

func (r *NominatimResolver) Close() error {
	return r.client.Close()
}

// ResolveLocationName performs a single reverse lookup. The lookup carries
// its own deadline, detached from the caller's cancellation, so a client that
// disconnects mid-request does not abandon the enrichment half way.
func (r *NominatimResolver) ResolveLocationName(ctx context.Context, lat, lon float64) string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resolveTimeout)
	defer cancel()

	res, err := r.client.R().
		WithContext(ctx).
		SetQueryParams(map[string]string{
			"lat":    formatCoord(lat),
			"lon":    formatCoord(lon),
			"format": "json",
		}).
		SetResult(&reverseGeocodeResponse{}).
		Get("/reverse")

	if err != nil || !res.IsSuccess() {
		return FallbackLocationName(lat, lon)
	}
	out, ok := res.Result().(*reverseGeocodeResponse)
	if !ok || out.DisplayName == "" {
		return FallbackLocationName(lat, lon)
	}
	return out.DisplayName
}
