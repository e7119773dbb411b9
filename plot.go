package shipdash

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is one chart ready to be rendered: a plot together with the
// size and resolution of the image it becomes.
//
// Figures share no drawing state; each render acquires its own canvas
// and releases it when done.
type Figure struct {
	Plot *plot.Plot

	Width, Height vg.Length
	DPI           int
}

// NewFigure returns an empty figure sized and styled by theme.
func NewFigure(title string, theme Theme) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = theme.TitleSize
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Label.TextStyle.Font.Size = theme.LabelSize
		a.Tick.Label.Font.Size = theme.TickSize
	}
	return &Figure{
		Plot:   p,
		Width:  theme.Width,
		Height: theme.Height,
		DPI:    theme.DPI,
	}
}

// WriteTo renders f as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Plot.Draw(draw.New(img))
	return vgimg.PngCanvas{Canvas: img}.WriteTo(w)
}

// Save renders f as PNG into the file path, replacing its content.
func (f *Figure) Save(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrWrite, cerr)
		}
	}()
	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}
