// renderer/renderer.go
package renderer

import (
	"html/template"

	"github.com/Rakhulsr/go-shipping/app/utils/format"
	"github.com/unrolled/render"
)

func New(directory string, development bool) *render.Render {
	return render.New(render.Options{
		Directory:     directory,
		Layout:        "layout",
		Extensions:    []string{".html"},
		IsDevelopment: development,
		Funcs: []template.FuncMap{
			{
				"peso": format.Peso,
				"add":  func(a, b int) int { return a + b },
			},
		},
	})
}
