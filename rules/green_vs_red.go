package rules

/*
ApplyGreenVsRedRules applies the Green vs. Red rules to determine whether a cell is green in the next generation.

A red cell turns green with exactly 3 or 6 green neighbors.
A green cell stays green with exactly 2, 3 or 6 green neighbors.
*/
func ApplyGreenVsRedRules(neighbors int, green bool) bool {
	if green {
		return neighbors == 2 || neighbors == 3 || neighbors == 6
	}
	return neighbors == 3 || neighbors == 6
}
