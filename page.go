package shipdash

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
)

// PageFile is the name of the dashboard page in the output directory.
const PageFile = "index.html"

// DefaultTitle heads the dashboard page.
const DefaultTitle = "Shipping Dashboard Example"

// Image is one figure on the page.
type Image struct {
	Src string
	Alt string
}

// Page is the dashboard layout: a title over two columns of images.
type Page struct {
	Title string
	Left  []Image
	Right []Image
}

// DashboardPage returns the standard layout with the warehouse and mode
// charts on the left and the rating and weight charts on the right.
func DashboardPage(title string) Page {
	if title == "" {
		title = DefaultTitle
	}
	return Page{
		Title: title,
		Left: []Image{
			{Src: WarehouseFile, Alt: "Fig 1"},
			{Src: ModeFile, Alt: "Fig 2"},
		},
		Right: []Image{
			{Src: RatingFile, Alt: "Fig 3"},
			{Src: WeightFile, Alt: "Fig 4"},
		},
	}
}

const pageTemplate = `<!DOCTYPE html>
<html>
    <body>
        <h1>{{.Title}}</h1>
        <div style="width:45%; float:left">
{{- range .Left}}
            <img src="{{.Src}}" alt="{{.Alt}}">
{{- end}}
        </div>
        <div style="width:45%; float:right">
{{- range .Right}}
            <img src="{{.Src}}" alt="{{.Alt}}">
{{- end}}
        </div>
    </body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Render writes the HTML of p to w.
func (p Page) Render(w io.Writer) error {
	return pageTmpl.Execute(w, p)
}

// WritePage writes page as index.html into dir, replacing an existing
// file.
func WritePage(dir string, page Page) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("%w: render page: %v", ErrWrite, err)
	}
	path := filepath.Join(dir, PageFile)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
