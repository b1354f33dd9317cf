package mahjong

// DoraTally is the breakdown of bonus-tile han in a ScoreResult.
type DoraTally struct {
	Dora    int
	AkaDora int
	UraDora int
}

// allHandTiles returns every physical tile occurrence in the hand,
// closed and melded, including the (already-counted) winning tile.
func allHandTiles(h HandInput) []HandTile {
	out := make([]HandTile, 0, 18)
	out = append(out, h.ClosedTiles...)
	for _, m := range h.Melds {
		out = append(out, m.Tiles...)
	}
	return out
}

// countDora counts occurrences, among the hand's tiles, of the dora tile
// derived from each indicator via Tile.Next, per spec.md §4.3/§9.
func countDora(h HandInput, indicators []HandTile) int {
	tiles := allHandTiles(h)
	total := 0
	for _, ind := range indicators {
		target := ind.Base.Next()
		for _, t := range tiles {
			if t.Base == target {
				total++
			}
		}
	}
	return total
}

// countAka returns the number of physical red-five tiles present in the
// hand (closed + melded).
func countAka(h HandInput) int {
	n := 0
	for _, t := range allHandTiles(h) {
		if t.Red {
			n++
		}
	}
	return n
}
