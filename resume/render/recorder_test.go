package render

import "strings"

type drawnText struct {
	X, Y   float64
	Text   string
	Family string
	Style  string
	Size   float64
	Color  Color
}

// recorder is a Surface that remembers what was drawn.
type recorder struct {
	family string
	style  string
	size   float64
	color  Color

	texts  []drawnText
	rects  int
	lines  int
	images []*Photo
}

func (r *recorder) SetFont(family, style string, size float64) {
	r.family, r.style, r.size = family, style, size
}

func (r *recorder) SetTextColor(c Color) { r.color = c }
func (r *recorder) SetFillColor(Color)   {}
func (r *recorder) SetDrawColor(Color)   {}

func (r *recorder) Text(x, y float64, s string) {
	r.texts = append(r.texts, drawnText{X: x, Y: y, Text: s, Family: r.family, Style: r.style, Size: r.size, Color: r.color})
}

func (r *recorder) StringWidth(s string) float64 {
	return float64(len(s)) * r.size * 0.5
}

func (r *recorder) Rect(x, y, w, h float64)     { r.rects++ }
func (r *recorder) Line(x1, y1, x2, y2 float64) { r.lines++ }

func (r *recorder) Image(photo *Photo, x, y, w, h float64) {
	r.images = append(r.images, photo)
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

func (r *recorder) anyContains(sub string) bool {
	for _, t := range r.texts {
		if strings.Contains(t.Text, sub) {
			return true
		}
	}
	return false
}

func (r *recorder) maxY() float64 {
	var max float64
	for _, t := range r.texts {
		if t.Y > max {
			max = t.Y
		}
	}
	return max
}
