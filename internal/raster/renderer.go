package raster

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"fan-scene/internal/camera"
	"fan-scene/internal/postprocess"
	"fan-scene/internal/scene"
)

// Renderer draws a scene into an image on the CPU.
// It keeps its framebuffer between frames; it is not safe for concurrent use.
type Renderer struct {
	// Supersample renders at N× resolution and downsamples. Values < 1 mean 1.
	Supersample int

	fb     *FrameBuffer
	world  []mgl64.Vec3
	screen []ScreenVertex
	valid  []bool
}

// NewRenderer returns a renderer with the given supersampling factor.
func NewRenderer(supersample int) *Renderer {
	return &Renderer{Supersample: supersample}
}

// Render draws s as seen by cam into a width×height NRGBA image.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	rw, rh := width*ss, height*ss

	if r.fb == nil || r.fb.Width != rw || r.fb.Height != rh {
		r.fb = NewFrameBuffer(rw, rh)
	}
	fb := r.fb
	fb.Clear(s.Background)

	lc := NewLightConfig(s)
	vp := cam.ViewProjection()

	s.Walk(func(n *scene.Node, world mgl64.Mat4) {
		if n.Mesh == nil || n.Mesh.Geometry == nil {
			return
		}
		r.drawMesh(fb, n.Mesh, world, vp, cam, &lc)
	})

	img := image.NewNRGBA(image.Rect(0, 0, rw, rh))
	copy(img.Pix, fb.Color)

	if ss > 1 {
		img = postprocess.Downsample(img, width, height)
	}
	return img
}

func (r *Renderer) drawMesh(fb *FrameBuffer, m *scene.Mesh, world, vp mgl64.Mat4, cam *camera.Perspective, lc *LightConfig) {
	g := m.Geometry
	nv := len(g.Positions)
	if cap(r.world) < nv {
		r.world = make([]mgl64.Vec3, nv)
		r.screen = make([]ScreenVertex, nv)
		r.valid = make([]bool, nv)
	}
	ws := r.world[:nv]
	ss := r.screen[:nv]
	ok := r.valid[:nv]

	w, h := float64(fb.Width), float64(fb.Height)

	// Transform and project every vertex once
	for i, p := range g.Positions {
		wp := world.Mul4x1(p.Vec4(1)).Vec3()
		ws[i] = wp
		clip := vp.Mul4x1(wp.Vec4(1))
		cw := clip[3]
		// Behind the eye, in front of the near plane or past the far plane
		if cw < cam.Near*0.5 || clip[2] < -cw || clip[2] > cw {
			ok[i] = false
			continue
		}
		ok[i] = true
		ndcX, ndcY, ndcZ := clip[0]/cw, clip[1]/cw, clip[2]/cw
		ss[i] = ScreenVertex{
			(ndcX + 1) * 0.5 * w,
			(1 - ndcY) * 0.5 * h,
			-ndcZ,
		}
	}

	sf := NewSurface(m.Material)

	for _, tri := range g.Triangles {
		a, b, c := tri[0], tri[1], tri[2]
		if a < 0 || a >= nv || b < 0 || b >= nv || c < 0 || c >= nv {
			continue
		}
		if !ok[a] || !ok[b] || !ok[c] {
			continue
		}

		// Face normal for flat shading
		n := ws[b].Sub(ws[a]).Cross(ws[c].Sub(ws[a]))
		if n.Len() < 1e-12 {
			continue
		}
		n = n.Normalize()

		centroid := ws[a].Add(ws[b]).Add(ws[c]).Mul(1.0 / 3)
		view := cam.Eye.Sub(centroid)
		if view.Len() < 1e-12 {
			continue
		}
		view = view.Normalize()

		cr, cg, cb := lc.Shade(&sf, n, view)
		RasterizeTriangle(fb, ss[a], ss[b], ss[c], cr, cg, cb)
	}
}
