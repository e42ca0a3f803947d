package deck

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Page size of a slide (4:3).
const (
	PageWidth  = 10 * vg.Inch
	PageHeight = 7.5 * vg.Inch
)

const (
	margin        = vg.Inch / 2
	contentTop    = 1.6 * vg.Inch // distance of content from the top edge
	bulletSpacing = 1.5           // line height relative to font size
	bulletIndent  = vg.Inch / 3
)

var (
	textColor   = color.Gray{0x20}
	accentColor = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	headerFill  = color.Gray{0xdd}
	gridColor   = color.Gray{0x88}
)

// fonts used on a slide.
type fonts struct {
	title, subtitle, cover, body, cell, cellBold vg.Font
}

func loadFonts() (fonts, error) {
	var f fonts
	var err error
	for _, fd := range []struct {
		dst  *vg.Font
		name string
		size float64
	}{
		{&f.cover, "Helvetica-Bold", 36},
		{&f.subtitle, "Helvetica", 22},
		{&f.title, "Helvetica-Bold", 28},
		{&f.body, "Helvetica", 20},
		{&f.cell, "Helvetica", 11},
		{&f.cellBold, "Helvetica-Bold", 11},
	} {
		*fd.dst, err = vg.MakeFont(fd.name, vg.Points(fd.size))
		if err != nil {
			return fonts{}, fmt.Errorf("cannot load font %s: %w", fd.name, err)
		}
	}
	return f, nil
}

// Render draws d as a PDF document to w. Images referenced by slides are
// read from disk; a missing image is an error.
func Render(w io.Writer, d Deck) error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("deck %q has no slides", d.Title)
	}
	f, err := loadFonts()
	if err != nil {
		return err
	}

	c := vgpdf.New(PageWidth, PageHeight)
	for i, s := range d.Slides {
		if i > 0 {
			c.NextPage()
		}
		dc := draw.New(c)
		if err := renderSlide(dc, s, f); err != nil {
			return fmt.Errorf("slide %d (%s): %w", i+1, s.Title, err)
		}
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write pdf: %w", err)
	}
	return nil
}

func renderSlide(dc draw.Canvas, s Slide, f fonts) error {
	top := dc.Max.Y

	if s.Layout == TitleLayout {
		mid := dc.Center()
		dc.FillText(textStyle(f.cover, draw.XCenter, draw.YBottom),
			vg.Point{X: mid.X, Y: mid.Y + vg.Inch/4}, s.Title)
		dc.FillText(textStyle(f.subtitle, draw.XCenter, draw.YTop),
			vg.Point{X: mid.X, Y: mid.Y - vg.Inch/4}, s.Subtitle)
		return nil
	}

	dc.FillText(textStyle(f.title, draw.XLeft, draw.YTop),
		vg.Point{X: dc.Min.X + margin, Y: top - margin}, s.Title)
	rule := draw.LineStyle{Color: accentColor, Width: vg.Points(2)}
	ruleY := top - margin - f.title.Extents().Height - vg.Points(8)
	dc.StrokeLine2(rule, dc.Min.X+margin, ruleY, dc.Max.X-margin, ruleY)

	area := vg.Rectangle{
		Min: vg.Point{X: dc.Min.X + margin, Y: dc.Min.Y + margin},
		Max: vg.Point{X: dc.Max.X - margin, Y: top - contentTop},
	}

	switch {
	case s.Image != "":
		return drawImage(dc, area, s.Image)
	case s.Table != nil:
		drawTable(dc, area, s.Table, f)
	default:
		drawBullets(dc, area, s.Bullets, f.body)
	}
	return nil
}

func textStyle(font vg.Font, xalign draw.XAlignment, yalign draw.YAlignment) draw.TextStyle {
	return draw.TextStyle{
		Color:  textColor,
		Font:   font,
		XAlign: xalign,
		YAlign: yalign,
	}
}

// drawBullets writes one bullet per entry, wrapping long lines at the
// right edge of area.
func drawBullets(dc draw.Canvas, area vg.Rectangle, bullets []string, font vg.Font) {
	sty := textStyle(font, draw.XLeft, draw.YTop)
	lineHeight := font.Size * bulletSpacing
	y := area.Max.Y
	for _, b := range bullets {
		lines := wrap(b, font, area.Size().X-bulletIndent)
		dc.FillText(sty, vg.Point{X: area.Min.X, Y: y}, "•")
		for _, line := range lines {
			dc.FillText(sty, vg.Point{X: area.Min.X + bulletIndent, Y: y}, line)
			y -= lineHeight
		}
		y -= lineHeight / 3
	}
}

// wrap breaks s into lines no wider than width. Single words wider than
// width are not broken.
func wrap(s string, font vg.Font, width vg.Length) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if font.Width(line+" "+w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// drawTable draws t as a grid filling the width of area. Rows are at
// most 0.35 inch high and shrink to fit all rows into area.
func drawTable(dc draw.Canvas, area vg.Rectangle, t *Table, f fonts) {
	cols := len(t.Header)
	if cols == 0 {
		return
	}
	n := len(t.Rows) + 1
	rowHeight := area.Size().Y / vg.Length(n)
	if maxRow := 0.35 * vg.Inch; rowHeight > maxRow {
		rowHeight = maxRow
	}
	colWidth := area.Size().X / vg.Length(cols)
	grid := draw.LineStyle{Color: gridColor, Width: vg.Points(0.5)}

	cellFont := func(font vg.Font) vg.Font {
		// Shrink text if rows are very narrow.
		if limit := rowHeight * 0.7; font.Size > limit {
			font.Size = limit
		}
		return font
	}
	head, body := cellFont(f.cellBold), cellFont(f.cell)

	top := area.Max.Y
	bottom := top - rowHeight*vg.Length(n)
	right := area.Min.X + colWidth*vg.Length(cols)

	dc.FillPolygon(headerFill, []vg.Point{
		{X: area.Min.X, Y: top}, {X: right, Y: top},
		{X: right, Y: top - rowHeight}, {X: area.Min.X, Y: top - rowHeight},
	})

	for r := 0; r < n; r++ {
		cells, font := t.Header, head
		if r > 0 {
			cells, font = t.Rows[r-1], body
		}
		y := top - rowHeight*vg.Length(r) - rowHeight/2
		for c := 0; c < cols && c < len(cells); c++ {
			x := area.Min.X + colWidth*vg.Length(c) + vg.Points(6)
			dc.FillText(textStyle(font, draw.XLeft, draw.YCenter), vg.Point{X: x, Y: y}, cells[c])
		}
	}

	for r := 0; r <= n; r++ {
		y := top - rowHeight*vg.Length(r)
		dc.StrokeLine2(grid, area.Min.X, y, right, y)
	}
	for c := 0; c <= cols; c++ {
		x := area.Min.X + colWidth*vg.Length(c)
		dc.StrokeLine2(grid, x, top, x, bottom)
	}
}

// drawImage draws the image file at path scaled to fit the width of
// area, keeping its aspect ratio, anchored at the top.
func drawImage(dc draw.Canvas, area vg.Rectangle, path string) error {
	img, err := loadImage(path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("image %s is empty", path)
	}

	w := area.Size().X
	h := w * vg.Length(b.Dy()) / vg.Length(b.Dx())
	if h > area.Size().Y {
		h = area.Size().Y
		w = h * vg.Length(b.Dx()) / vg.Length(b.Dy())
	}
	x := area.Min.X + (area.Size().X-w)/2
	rect := vg.Rectangle{
		Min: vg.Point{X: x, Y: area.Max.Y - h},
		Max: vg.Point{X: x + w, Y: area.Max.Y},
	}
	dc.DrawImage(rect, img)
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode image %s: %w", path, err)
	}
	return img, nil
}
