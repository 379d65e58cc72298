package merge

import "encoding/json"

// FeatureCollection is the subset of GeoJSON the merge step reads.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

// Feature is one GeoJSON feature with loosely-typed properties; the city's
// feature services mix strings and numbers freely.
type Feature struct {
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry holds point coordinates as [lng, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Lat returns the feature's latitude, or 0 when coordinates are absent.
func (f Feature) Lat() float64 {
	if len(f.Geometry.Coordinates) >= 2 {
		return f.Geometry.Coordinates[1]
	}
	return 0
}

// Lng returns the feature's longitude, or 0 when coordinates are absent.
func (f Feature) Lng() float64 {
	if len(f.Geometry.Coordinates) >= 1 {
		return f.Geometry.Coordinates[0]
	}
	return 0
}

// propString reads a string property, tolerating absence and non-strings.
func (f Feature) propString(key string) string {
	v, ok := f.Properties[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// propInt reads a numeric property. JSON numbers decode as float64.
func (f Feature) propInt(key string) int {
	v, ok := f.Properties[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

// ParseFeatureCollection decodes a GeoJSON body.
func ParseFeatureCollection(body []byte) (FeatureCollection, error) {
	var fc FeatureCollection
	err := json.Unmarshal(body, &fc)
	return fc, err
}
