// 19 Oct 2026

package spectrum

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Sizes for the plot, in pixels.
const (
	barWidth  = 3
	minPlotW  = 300
	maxBars   = 1000 // more positions than this are binned
	plotH     = 240
	marginL   = 60
	marginR   = 20
	marginTop = 40
	marginBot = 45
	fontSize  = 12
	dpi       = 72
)

var (
	barColour  = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
	axisColour = color.Black
)

var loadFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// fillRect paints the rectangle [x0,x1) x [y0,y1).
func fillRect(img draw.Image, x0, y0, x1, y1 int, c color.Color) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

// bins sums ByPos into at most maxBars bins of binSize positions each.
func (s *Spectrum) bins() (bins []int, binSize int) {
	n := len(s.ByPos)
	if n <= maxBars {
		return s.ByPos, 1
	}
	binSize = (n + maxBars - 1) / maxBars
	bins = make([]int, (n+binSize-1)/binSize)
	for i, c := range s.ByPos {
		bins[i/binSize] += c
	}
	return bins, binSize
}

// Plot draws ByPos as a bar chart and writes it as PNG. Long reads
// are binned, so the image is never much wider than maxBars bars.
func (s *Spectrum) Plot(w io.Writer) error {
	fnt, err := loadFont()
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	bins, binSize := s.bins()
	plotW := len(bins) * barWidth
	if plotW < minPlotW {
		plotW = minPlotW
	}
	width := marginL + plotW + marginR
	height := marginTop + plotH + marginBot
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, width, height, color.White)

	x0, y0 := marginL, marginTop+plotH // origin of the axes
	fillRect(img, x0-1, marginTop, x0, y0+1, axisColour)
	fillRect(img, x0-1, y0, x0+plotW, y0+1, axisColour)

	mx := 0
	for _, n := range bins {
		mx = max(mx, n)
	}
	if mx > 0 {
		for i, n := range bins {
			h := n * plotH / mx
			if h == 0 && n > 0 {
				h = 1
			}
			x := x0 + i*barWidth
			fillRect(img, x, y0-h, x+barWidth-1, y0, barColour)
		}
	}

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(fnt)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	type label struct {
		x, y int
		txt  string
	}
	title := fmt.Sprintf("%s: %d mutations in %d reads", s.Name, s.NMut, s.NRec)
	if binSize > 1 {
		title += fmt.Sprintf(", %d positions per bar", binSize)
	}
	labels := []label{
		{marginL, marginTop - 15, title},
		{5, marginTop + fontSize, strconv.Itoa(mx)},
		{5, y0, "0"},
		{x0, y0 + 18, "1"},
		{x0 + plotW/2 - 25, y0 + 36, "position"},
	}
	if n := len(s.ByPos); n > 1 {
		labels = append(labels, label{x0 + (len(bins)-1)*barWidth, y0 + 18, strconv.Itoa(n)})
	}
	for _, l := range labels {
		if _, err := c.DrawString(l.txt, freetype.Pt(l.x, l.y)); err != nil {
			return fmt.Errorf("drawing %q: %w", l.txt, err)
		}
	}
	return png.Encode(w, img)
}
