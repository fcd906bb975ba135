package widget

import (
	"image"

	"golang.org/x/image/math/f32"
)

// Ortho returns the row-major orthographic projection of the box bounded by
// left, right, bottom, top, near and far onto normalized device coordinates.
func Ortho(l, r, b, t, n, f float32) f32.Mat4 {
	return f32.Mat4{
		2 / (r - l), 0, 0, -(r + l) / (r - l),
		0, 2 / (t - b), 0, -(t + b) / (t - b),
		0, 0, -2 / (f - n), -(f + n) / (f - n),
		0, 0, 0, 1,
	}
}

// Project transforms the point x,y by m and returns normalized device coordinates.
func Project(m f32.Mat4, x, y float32) (nx, ny float32) {
	w := m[12]*x + m[13]*y + m[15]
	nx = (m[0]*x + m[1]*y + m[3]) / w
	ny = (m[4]*x + m[5]*y + m[7]) / w
	return nx, ny
}

// Inset returns the rectangle of a width×height surface shrunk by margin on
// every side.
func Inset(width, height, margin int) image.Rectangle {
	return image.Rect(0, 0, width, height).Inset(margin)
}

// QuadVertices returns the pulsing quad for a width×height surface. The right
// edge is red scaled by brightness and the left edge is green scaled by
// brightness.
func QuadVertices(width, height, margin int, brightness float32) [4]Vertex {
	r := Inset(width, height, margin)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	x2, y2 := float32(r.Min.X), float32(r.Min.Y)

	a := f32.Vec3{1 * brightness, 0.2 * brightness, 0}
	b := f32.Vec3{0, 1 * brightness, 0}

	return [4]Vertex{
		{f32.Vec2{x1, y1}, a},
		{f32.Vec2{x1, y2}, a},
		{f32.Vec2{x2, y2}, b},
		{f32.Vec2{x2, y1}, b},
	}
}
