package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"fan-scene/internal/scene"
)

// LightConfig holds the scene's lights converted to linear space.
type LightConfig struct {
	Ambient   [3]float64 // color × intensity
	Lights    []DirLight
	SRGBGamma float64
	InvGamma  float64
}

// DirLight is a directional light in linear space.
type DirLight struct {
	Dir      mgl64.Vec3 // unit vector toward the light
	Radiance [3]float64 // color × intensity
}

// NewLightConfig converts a scene's lights.
func NewLightConfig(s *scene.Scene) LightConfig {
	lc := LightConfig{
		Ambient:   scaled(s.Ambient.Color, s.Ambient.Intensity),
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
	for _, l := range s.Directional {
		lc.Lights = append(lc.Lights, DirLight{
			Dir:      l.Direction(),
			Radiance: scaled(l.Color, l.Intensity),
		})
	}
	return lc
}

// Surface is a material decoded to linear space.
type Surface struct {
	Diffuse   [3]float64
	Specular  [3]float64
	Shininess float64
}

// NewSurface decodes a material.
func NewSurface(m scene.Material) Surface {
	return Surface{
		Diffuse:   linearRGB(m.Color),
		Specular:  linearRGB(m.Specular),
		Shininess: m.Shininess,
	}
}

// Shade returns the lit sRGB color of a flat face with unit normal n,
// seen from direction view (unit, surface toward eye).
// Faces are double-sided: the normal is flipped to face the viewer.
func (lc *LightConfig) Shade(sf *Surface, n, view mgl64.Vec3) (uint8, uint8, uint8) {
	if n.Dot(view) < 0 {
		n = n.Mul(-1)
	}

	var out [3]float64
	for k := 0; k < 3; k++ {
		out[k] = sf.Diffuse[k] * lc.Ambient[k]
	}

	for _, l := range lc.Lights {
		ndl := n.Dot(l.Dir)
		if ndl <= 0 {
			continue
		}

		// Blinn-Phong
		half := l.Dir.Add(view).Normalize()
		ndh := n.Dot(half)
		if ndh < 0 {
			ndh = 0
		}
		spec := math.Pow(ndh, sf.Shininess)

		for k := 0; k < 3; k++ {
			out[k] += l.Radiance[k] * (sf.Diffuse[k]*ndl + sf.Specular[k]*spec)
		}
	}

	return clamp255(math.Pow(out[0], lc.InvGamma) * 255),
		clamp255(math.Pow(out[1], lc.InvGamma) * 255),
		clamp255(math.Pow(out[2], lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

func linearRGB(rgb uint32) [3]float64 {
	return [3]float64{
		srgbToLinear[uint8(rgb>>16)],
		srgbToLinear[uint8(rgb>>8)],
		srgbToLinear[uint8(rgb)],
	}
}

func scaled(rgb uint32, intensity float64) [3]float64 {
	c := linearRGB(rgb)
	return [3]float64{c[0] * intensity, c[1] * intensity, c[2] * intensity}
}
