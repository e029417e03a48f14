package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// LineLength is the number of markers that form a line.
const LineLength = 5

// Line is a run of exactly LineLength same-colored markers along one axis,
// ordered in the axis direction.
type Line struct {
	Color Color
	Cells [LineLength]Position
}

func (l Line) Contains(p Position) bool {
	return slices.Contains(l.Cells[:], p)
}

// Overlaps reports whether two lines share at least one marker.
func (l Line) Overlaps(o Line) bool {
	for _, c := range o.Cells {
		if l.Contains(c) {
			return true
		}
	}
	return false
}

func (l Line) String() string {
	cells := make([]string, len(l.Cells))
	for i, c := range l.Cells {
		cells[i] = c.String()
	}
	return fmt.Sprintf("%s[%s]", l.Color, strings.Join(cells, " "))
}

// markerRun returns the maximal run of markers of the same color as the one
// at p along axis, ordered in the axis direction.
func (b *Board) markerRun(p Position, axis Direction) []Position {
	color, ok := b.MarkerAt(p)
	if !ok {
		panic(fmt.Sprintf("markerRun: no marker at %v", p))
	}

	var back []Position
	for _, c := range b.topo.Ray(p, axis.Opposite()) {
		if !b.hasMarker(c, color) {
			break
		}
		back = append(back, c)
	}

	run := make([]Position, 0, len(back)+1)
	for i := len(back) - 1; i >= 0; i-- {
		run = append(run, back[i])
	}
	run = append(run, p)
	for _, c := range b.topo.Ray(p, axis) {
		if !b.hasMarker(c, color) {
			break
		}
		run = append(run, c)
	}
	return run
}

// findLines collects every line running through the markers at the given
// positions. Runs longer than LineLength yield one line per window. Each
// line is reported once, in discovery order.
func (b *Board) findLines(from []Position) []Line {
	seen := make(map[Line]bool)
	var lines []Line
	for _, p := range from {
		color, ok := b.MarkerAt(p)
		if !ok {
			continue
		}
		for _, axis := range LineAxes {
			run := b.markerRun(p, axis)
			for i := 0; i+LineLength <= len(run); i++ {
				line := Line{Color: color}
				copy(line.Cells[:], run[i:i+LineLength])
				if !seen[line] {
					seen[line] = true
					lines = append(lines, line)
				}
			}
		}
	}
	return lines
}

// Lines scans the whole board for color's lines.
func (b *Board) Lines(color Color) []Line {
	return b.findLines(b.Markers(color))
}

// isLine reports whether every cell of l still holds a marker of l's color.
func (b *Board) isLine(l Line) bool {
	for _, p := range l.Cells {
		if !b.topo.Contains(p) || !b.hasMarker(p, l.Color) {
			return false
		}
	}
	return true
}
