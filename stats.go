package probemap

// Stats is a point-in-time view of a map.
type Stats struct {
	Size                int     `json:"size"`
	Capacity            int     `json:"capacity"`
	LoadFactor          float64 `json:"loadFactor"`
	LoadFactorThreshold float64 `json:"loadFactorThreshold"`
}
