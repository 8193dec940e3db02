package visual

import "github.com/lixenwraith/blueprint/render"

// NodeStyle is the default look of one pipeline node
type NodeStyle struct {
	Label string
	X, Y  float64
	Color render.RGB
}

// DefaultNodes is the three-stage pipeline: repository, workflow, live site
var DefaultNodes = [3]NodeStyle{
	{Label: "GITHUB REPO", X: 0.2, Y: 0.45, Color: RgbNodeGray},
	{Label: "n8n WORKFLOW", X: 0.5, Y: 0.45, Color: RgbOrange},
	{Label: "LIVE PORTFOLIO", X: 0.8, Y: 0.45, Color: RgbCyan},
}
