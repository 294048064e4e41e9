package render_test

import (
	"fmt"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/layout"
	"github.com/matzehuels/wireframe/pkg/core/render"
	"github.com/matzehuels/wireframe/pkg/core/render/sink"
)

func ExampleRender() {
	doc, _ := dsl.Parse("wireframe\nnav-menu \"Home|Docs\"\n")
	l := layout.Build(doc, layout.ViewportBox(doc))

	rec := sink.NewRecorder()
	render.Render(doc, l, rec)
	for _, c := range rec.ByClass("nav-item") {
		fmt.Printf("%s at x=%.0f\n", c.Text, c.Points[0].X)
	}
	// Output:
	// Home at x=200
	// Docs at x=600
}
