package nodelink_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/wireframe/pkg/core/dsl"
	"github.com/matzehuels/wireframe/pkg/core/render/nodelink"
)

func ExampleToDOT() {
	doc, _ := dsl.Parse("wireframe TD\ncol\n  text \"Hello\"\n")

	fmt.Print(nodelink.ToDOT(doc, nodelink.Options{}))
	// Output:
	// digraph G {
	//   rankdir=TB;
	//   bgcolor="transparent";
	//   node [shape=box, style="rounded,filled", fillcolor=white, fontsize=14, margin="0.2,0.1"];
	//   ranksep=0.4;
	//   nodesep=0.25;
	//
	//   n0 [label="col", style="rounded,filled,dashed", fillcolor=lightgrey, fontcolor=black];
	//   n1 [label="text \"Hello\""];
	//
	//   n0 -> n1;
	// }
}

func ExampleRenderSVG() {
	doc, _ := dsl.Parse("wireframe\nscreen \"Home\"\n  app-bar \"Inbox\"\n  list\n")

	svg, err := nodelink.RenderSVG(context.Background(), nodelink.ToDOT(doc, nodelink.Options{Detailed: true}))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Generated SVG (%d bytes)\n", len(svg))
	// Output varies based on Graphviz version
}
