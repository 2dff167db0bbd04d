package geo

// Fence is a fixed rectangular lat/lng region.
type Fence struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// SanDiego covers San Diego county, the only region this deployment serves.
var SanDiego = Fence{
	MinLat: 32.534156,
	MaxLat: 33.114249,
	MinLng: -117.608643,
	MaxLng: -116.908707,
}

// Contains reports whether the coordinate falls inside the fence bounds.
func (f Fence) Contains(lat, lng float64) bool {
	return lat >= f.MinLat && lat <= f.MaxLat &&
		lng >= f.MinLng && lng <= f.MaxLng
}
