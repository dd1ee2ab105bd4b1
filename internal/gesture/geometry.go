package gesture

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position in viewport-local pixels.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

func (p Point) finite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Viewport is the size of the box the zoomed image is rendered in.
type Viewport struct {
	Width, Height float64
}

// Center returns the middle of the viewport, the transform origin.
func (v Viewport) Center() Point {
	return Point{v.Width / 2, v.Height / 2}
}

// Transform is the 2D view transform applied to the zoomed image.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Identity returns the unzoomed transform.
func Identity() Transform {
	return Transform{Scale: MinScale}
}

// Translate returns the translation as a point.
func (t Transform) Translate() Point {
	return Point{t.TranslateX, t.TranslateY}
}

// IsIdentity reports whether t is unzoomed and centered.
func (t Transform) IsIdentity() bool {
	return t.Scale == MinScale && t.TranslateX == 0 && t.TranslateY == 0
}

// CSS renders t as a CSS transform value.
func (t Transform) CSS() string {
	return fmt.Sprintf("scale(%s) translate(%spx, %spx)", formatFloat(t.Scale), formatFloat(t.TranslateX), formatFloat(t.TranslateY))
}

// Project maps a point in image space to viewport space for a viewport centered on c.
func (t Transform) Project(p, c Point) Point {
	return c.Add(p.Sub(c).Add(t.Translate()).Mul(t.Scale))
}

// Unproject is the inverse of [Transform.Project].
func (t Transform) Unproject(p, c Point) Point {
	return c.Add(p.Sub(c).Mul(1 / t.Scale)).Sub(t.Translate())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
