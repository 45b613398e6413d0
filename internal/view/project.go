package view

// Project paints content through the camera transform into a w-by-h cell
// grid. Each output cell is mapped through the inverse transform into
// content space and sampled from the content's rune grid; cells that land
// outside the content come back as spaces. The content itself is never
// mutated, so the clipping bounds of the pane stay fixed regardless of the
// transform.
func Project(content []string, m Matrix, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	grid := make([][]rune, len(content))
	for i, line := range content {
		grid[i] = []rune(line)
	}

	inv := m.Invert()
	out := make([]string, h)
	row := make([]rune, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Sample at the cell center.
			sx, sy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
			cy := int(sy)
			cx := int(sx)
			if sy < 0 || sx < 0 || cy >= len(grid) || cx >= len(grid[cy]) {
				row[x] = ' '
				continue
			}
			row[x] = grid[cy][cx]
		}
		out[y] = string(row)
	}
	return out
}
