// Package chart renders small PNG charts for embedding in API responses.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultSize       = 600
	defaultStartAngle = 140.0
	shadowOffset      = 5.0
	labelFontSize     = 16.0
	labelDistance     = 1.15
	labelMargin       = 4.0
)

var (
	shadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 70}
	emptyColor  = color.RGBA{R: 211, G: 211, B: 211, A: 255} // lightgray
	textColor   = color.Black
)

// NoDataLabel captions the chart drawn when every slice is zero.
const NoDataLabel = "No reviews"

// Slice is one wedge of a pie chart. Explode offsets the wedge outwards by
// that fraction of the radius.
type Slice struct {
	Label   string
	Value   int
	Color   color.Color
	Explode float64
}

// PieRenderer draws pie charts counter-clockwise from StartAngle (degrees),
// with a drop shadow and a percentage label inside each wedge.
type PieRenderer struct {
	Size       int
	StartAngle float64
	face       font.Face
}

// NewPieRenderer returns a renderer producing Size x Size PNGs labelled in Go Regular.
func NewPieRenderer() (*PieRenderer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &PieRenderer{
		Size:       defaultSize,
		StartAngle: defaultStartAngle,
		face:       truetype.NewFace(f, &truetype.Options{Size: labelFontSize}),
	}, nil
}

// Render draws the slices and returns the PNG bytes. When the values sum to
// zero it draws a single light-gray circle captioned NoDataLabel.
func (p *PieRenderer) Render(slices []Slice) ([]byte, error) {
	for _, s := range slices {
		if s.Value < 0 {
			return nil, fmt.Errorf("slice %q has negative value %d", s.Label, s.Value)
		}
	}

	size := float64(p.Size)
	cx, cy := size/2, size/2
	// leave room for the exploded wedge and the outer labels
	radius := size * 0.36

	dc := gg.NewContext(p.Size, p.Size)
	dc.SetColor(color.White)
	dc.Clear()
	if p.face != nil {
		dc.SetFontFace(p.face)
	}

	total := 0
	for _, s := range slices {
		total += s.Value
	}

	if total == 0 {
		p.drawEmpty(dc, cx, cy, radius)
	} else {
		p.drawWedges(dc, slices, total, cx, cy, radius)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PieRenderer) drawEmpty(dc *gg.Context, cx, cy, radius float64) {
	dc.SetColor(shadowColor)
	dc.DrawCircle(cx+shadowOffset, cy+shadowOffset, radius)
	dc.Fill()

	dc.SetColor(emptyColor)
	dc.DrawCircle(cx, cy, radius)
	dc.Fill()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(NoDataLabel, cx, cy, 0.5, 0.5)
}

type wedge struct {
	slice    Slice
	from, to float64 // radians, counter-clockwise in chart space
	cx, cy   float64
	fraction float64
	midCos   float64
	midSin   float64
}

func (p *PieRenderer) layout(slices []Slice, total int, cx, cy, radius float64) []wedge {
	wedges := make([]wedge, 0, len(slices))
	angle := gg.Radians(p.StartAngle)
	for _, s := range slices {
		if s.Value == 0 {
			continue
		}
		fraction := float64(s.Value) / float64(total)
		sweep := fraction * 2 * math.Pi
		mid := angle + sweep/2
		w := wedge{
			slice:    s,
			from:     angle,
			to:       angle + sweep,
			fraction: fraction,
			midCos:   math.Cos(mid),
			midSin:   math.Sin(mid),
		}
		// image y grows downwards, so chart-space angles are negated
		w.cx = cx + s.Explode*radius*w.midCos
		w.cy = cy - s.Explode*radius*w.midSin
		wedges = append(wedges, w)
		angle += sweep
	}
	return wedges
}

func (p *PieRenderer) drawWedges(dc *gg.Context, slices []Slice, total int, cx, cy, radius float64) {
	wedges := p.layout(slices, total, cx, cy, radius)

	dc.SetColor(shadowColor)
	for _, w := range wedges {
		wedgePath(dc, w.cx+shadowOffset, w.cy+shadowOffset, radius, w.from, w.to)
		dc.Fill()
	}

	for _, w := range wedges {
		fill := w.slice.Color
		if fill == nil {
			fill = emptyColor
		}
		dc.SetColor(fill)
		wedgePath(dc, w.cx, w.cy, radius, w.from, w.to)
		dc.Fill()
	}

	dc.SetColor(textColor)
	for i, b := range p.labelBoxes(wedges, radius) {
		dc.DrawStringAnchored(b.text, b.x, b.y+b.h/2, 0, 0.5)

		w := wedges[i]
		px := w.cx + 0.6*radius*w.midCos
		py := w.cy - 0.6*radius*w.midSin
		dc.DrawStringAnchored(fmt.Sprintf("%.1f%%", w.fraction*100), px, py, 0.5, 0.5)
	}
}

// labelBox is the measured extent of an outer label; x, y is the top-left corner.
type labelBox struct {
	text       string
	x, y, w, h float64
}

// labelBoxes places each wedge label outside its wedge, pulled back inside
// the canvas when it would overflow an edge.
func (p *PieRenderer) labelBoxes(wedges []wedge, radius float64) []labelBox {
	size := float64(p.Size)
	boxes := make([]labelBox, 0, len(wedges))
	for _, w := range wedges {
		b := labelBox{text: w.slice.Label}
		b.w, b.h = p.measure(b.text)

		lx := w.cx + labelDistance*radius*w.midCos
		ly := w.cy - labelDistance*radius*w.midSin
		b.x = lx
		if w.midCos < 0 {
			b.x = lx - b.w
		}
		b.y = ly - b.h/2

		b.x = clamp(b.x, labelMargin, size-labelMargin-b.w)
		b.y = clamp(b.y, labelMargin, size-labelMargin-b.h)
		boxes = append(boxes, b)
	}
	return boxes
}

// measure matches gg's own string metrics for the renderer's face.
func (p *PieRenderer) measure(s string) (w, h float64) {
	if p.face == nil {
		return 0, 0
	}
	w = float64(font.MeasureString(p.face, s)) / 64
	h = float64(p.face.Metrics().Height) / 64
	return w, h
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func wedgePath(dc *gg.Context, cx, cy, radius, from, to float64) {
	dc.NewSubPath()
	dc.MoveTo(cx, cy)
	dc.DrawArc(cx, cy, radius, -from, -to)
	dc.ClosePath()
}

// EncodeBase64 returns the PNG as standard base64, ready for a
// data:image/png;base64, URI.
func EncodeBase64(png []byte) string {
	return base64.StdEncoding.EncodeToString(png)
}
