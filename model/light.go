package model

// LightSource is the light child of a lighting primitive: one of
// *DistantLight, *PointLight or *SpotLight.
type LightSource interface {
	lightSource()
}

// DistantLight is feDistantLight. Angles are in degrees.
type DistantLight struct {
	Azimuth, Elevation float64
}

// PointLight is fePointLight.
type PointLight struct {
	X, Y, Z float64
}

// SpotLight is feSpotLight.
type SpotLight struct {
	X, Y, Z                         float64
	PointsAtX, PointsAtY, PointsAtZ float64

	SpecularExponent float64 // default 1

	// LimitingConeAngle is nil when there is no cone restriction.
	LimitingConeAngle *float64
}

// NewSpotLight returns a feSpotLight with SVG defaults.
func NewSpotLight() *SpotLight {
	return &SpotLight{SpecularExponent: 1}
}

func (*DistantLight) lightSource() {}
func (*PointLight) lightSource()   {}
func (*SpotLight) lightSource()    {}
