// Package export writes rendered showers out as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SegmentsToSVG projects shower segments through the camera and draws them
// as SVG lines, so the export matches what the terminal viewer shows but at
// arbitrary resolution.
func SegmentsToSVG(segs []shower.Segment, cam *viz.Camera, width, height int, strokeColor string) string {
	if len(segs) == 0 || cam == nil {
		return ""
	}

	frame := viz.ShowerWireframe(segs)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g stroke="%s" stroke-width="1.5" stroke-linecap="round">
`, width, height, width, height, strokeColor))

	for _, e := range frame.Edges {
		x1, y1, _, v1 := cam.Project(e.Start, width, height)
		x2, y2, _, v2 := cam.Project(e.End, width, height)
		if !v1 && !v2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>
`, x1, y1, x2, y2))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
