// Package render draws engine snapshots as an isometric terminal view.
//
// The camera sits along (1,1,1), so the top, front and right faces are
// visible, including cubies mid-rotation. Each rendered frame also keeps a
// hit map from screen cells back to the cubie and outward face normal drawn
// there, which is what mouse gestures grab.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twistylab/twisty"
)

// Approximate pixel size of one terminal cell, used to convert cell-based
// mouse coordinates into the pixel space the gesture threshold is tuned for.
const (
	PxPerCellX = 9.0
	PxPerCellY = 18.0
)

// Sticker colors keyed by home face direction:
// white up, yellow down, green front, blue back, red right, orange left.
var faceColors = map[twisty.Vec3]lipgloss.Color{
	{Y: 1}:  lipgloss.Color("255"),
	{Y: -1}: lipgloss.Color("226"),
	{Z: 1}:  lipgloss.Color("40"),
	{Z: -1}: lipgloss.Color("27"),
	{X: 1}:  lipgloss.Color("196"),
	{X: -1}: lipgloss.Color("208"),
}

// Hit identifies what was drawn at a screen cell.
type Hit struct {
	CubieID int
	Normal  twisty.Vec3 // outward world-space face normal, rounded to a unit axis
}

type cell struct {
	set    bool
	depth  float64
	color  lipgloss.Color
	hit    Hit
	hasHit bool
}

// Frame is one rendered view of the cube plus its hit map.
type Frame struct {
	width  int
	height int
	cells  [][]cell
}

// Render projects the cubies isometrically into a width x height cell grid.
func Render(cubies []twisty.Cubie, width, height int) *Frame {
	if width < 16 {
		width = 16
	}
	if height < 10 {
		height = 10
	}

	f := &Frame{width: width, height: height, cells: make([][]cell, height)}
	for i := range f.cells {
		f.cells[i] = make([]cell, width)
	}

	for i := range cubies {
		c := &cubies[i]
		for _, dir := range stickerDirs(c.Home) {
			f.paintSticker(c, dir)
		}
	}
	return f
}

// stickerDirs lists the home-frame face directions that carry stickers:
// one per home coordinate sitting on the surface of the cube.
func stickerDirs(home twisty.Vec3) []twisty.Vec3 {
	dirs := make([]twisty.Vec3, 0, 3)
	if home.X != 0 {
		dirs = append(dirs, twisty.Vec3{X: home.X})
	}
	if home.Y != 0 {
		dirs = append(dirs, twisty.Vec3{Y: home.Y})
	}
	if home.Z != 0 {
		dirs = append(dirs, twisty.Vec3{Z: home.Z})
	}
	return dirs
}

func (f *Frame) paintSticker(c *twisty.Cubie, homeDir twisty.Vec3) {
	normal := c.Orientation.MulVec(homeDir)

	// Back-face cull against the (1,1,1) camera.
	if normal.X+normal.Y+normal.Z <= 0.2 {
		return
	}

	color, ok := faceColors[homeDir]
	if !ok {
		return
	}

	hit := Hit{CubieID: c.ID, Normal: roundedNormal(normal)}
	center := c.Position.Add(normal.Scale(0.5))
	u, v := tangents(homeDir)
	uw := c.Orientation.MulVec(u)
	vw := c.Orientation.MulVec(v)

	// Sample the sticker quad densely enough that adjacent samples land on
	// adjacent cells at this projection scale.
	const n = 5
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t1 := (float64(i)/(n-1) - 0.5) * 0.8
			t2 := (float64(j)/(n-1) - 0.5) * 0.8
			p := center.Add(uw.Scale(t1)).Add(vw.Scale(t2))
			f.plot(p, color, hit)
		}
	}
}

// tangents returns two home-frame unit vectors spanning the sticker plane.
func tangents(dir twisty.Vec3) (twisty.Vec3, twisty.Vec3) {
	switch {
	case dir.X != 0:
		return twisty.Vec3{Y: 1}, twisty.Vec3{Z: 1}
	case dir.Y != 0:
		return twisty.Vec3{X: 1}, twisty.Vec3{Z: 1}
	default:
		return twisty.Vec3{X: 1}, twisty.Vec3{Y: 1}
	}
}

func roundedNormal(n twisty.Vec3) twisty.Vec3 {
	return twisty.Vec3{X: math.Round(n.X), Y: math.Round(n.Y), Z: math.Round(n.Z)}
}

// plot projects one world point and writes it with a depth test.
func (f *Frame) plot(p twisty.Vec3, color lipgloss.Color, hit Hit) {
	scale := float64(f.height) / 8.0
	cx := f.width / 2
	cy := f.height / 2

	col := cx + int(math.Round((p.X-p.Z)*scale*1.8))
	row := cy + int(math.Round(((p.X+p.Z)*0.5-p.Y)*scale))
	if col < 0 || col >= f.width || row < 0 || row >= f.height {
		return
	}

	depth := p.X + p.Y + p.Z // larger = closer to the camera
	c := &f.cells[row][col]
	if c.set && c.depth >= depth {
		return
	}
	c.set = true
	c.depth = depth
	c.color = color
	c.hit = hit
	c.hasHit = true
}

// HitAt returns what was drawn at a screen cell, if anything.
func (f *Frame) HitAt(col, row int) (Hit, bool) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return Hit{}, false
	}
	c := f.cells[row][col]
	return c.hit, c.hasHit
}

// View renders the frame as styled text.
func (f *Frame) View() string {
	var b strings.Builder
	for row := 0; row < f.height; row++ {
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().Foreground(runColor).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < f.width; col++ {
			c := f.cells[row][col]
			if !c.set {
				flush()
				b.WriteByte(' ')
				continue
			}
			if run.Len() > 0 && c.color != runColor {
				flush()
			}
			runColor = c.color
			run.WriteRune('█')
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}
