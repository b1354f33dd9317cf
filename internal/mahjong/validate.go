package mahjong

import "fmt"

// ValidateContext checks the ContextInput invariants from spec.md §3,
// independent of the hand shape. It is run before shape validation so
// that a malformed context is reported with its own taxonomy entry
// (spec.md §7) rather than masked by a shape error.
func ValidateContext(ctx ContextInput) *ScoringError {
	if ctx.Riichi && ctx.DoubleRiichi {
		return newErr(KindRiichiDoubleRiichiBoth, "riichi and double_riichi both set")
	}
	if ctx.Ippatsu && !ctx.Riichi && !ctx.DoubleRiichi {
		return newErr(KindIppatsuWithoutRiichi, "ippatsu without riichi or double_riichi")
	}
	if ctx.Haitei && ctx.WinType != Tsumo {
		return newErr(KindHaiteiOnRon, "haitei requires tsumo")
	}
	if ctx.Houtei && ctx.WinType != Ron {
		return newErr(KindHouteiOnTsumo, "houtei requires ron")
	}
	if ctx.Tenhou && ctx.Chiihou {
		return newErr(KindTenhouChiihouBoth, "tenhou and chiihou both set")
	}
	if ctx.Tenhou && !(ctx.dealer() && ctx.WinType == Tsumo) {
		return newErr(KindTenhouRequiresDealerTsumo, "tenhou requires dealer tsumo")
	}
	if ctx.Chiihou && !(!ctx.dealer() && ctx.WinType == Tsumo) {
		return newErr(KindChiihouRequiresNondealerTsumo, "chiihou requires non-dealer tsumo")
	}
	return nil
}

// HandShape classifies which winning pattern a hand matches.
type HandShape int

const (
	ShapeStandard HandShape = iota
	ShapeSevenPairs
	ShapeThirteenOrphans
)

// ValidateHand enforces the structural invariants of spec.md §3/§4.1 and
// classifies the winning shape. It does not pick a scoring partition;
// that is Enumerate's job.
func ValidateHand(h HandInput) (HandShape, *ScoringError) {
	for _, m := range h.Melds {
		if err := m.validate(); err != nil {
			return 0, err
		}
	}

	counts, total := counts34(h)
	for _, c := range counts {
		if c > 4 {
			return 0, newErr(KindBadTileMultiplicity, "a tile kind appears %d times", c)
		}
	}

	kans := numKanMelds(h)
	want := 14 + kans
	if total != want {
		return 0, newErr(KindWrongTotalTiles, "have %d tiles, want %d (14 + %d kan)", total, want, kans)
	}

	if !winTileInHand(h) {
		return 0, newErr(KindInvalidTile, "win_tile %s not present in hand", h.WinTile)
	}

	openMelds := numOpenMelds(h)

	if len(h.Melds) == 0 {
		if isSevenPairs(counts) {
			return ShapeSevenPairs, nil
		}
		if isThirteenOrphans(counts) {
			return ShapeThirteenOrphans, nil
		}
	}

	if canDecomposeStandard(closedCounts(h, counts), 4-openMelds) {
		return ShapeStandard, nil
	}

	return 0, newErr(KindNotAWinningShape, "hand matches no known shape")
}

// closedCounts returns the count vector restricted to the closed portion
// of the hand (melds excluded), which is what the standard-shape
// decomposition recurses over.
func closedCounts(h HandInput, full [NumKinds]int) [NumKinds]int {
	var out [NumKinds]int
	for _, t := range h.ClosedTiles {
		out[t.Base]++
	}
	return out
}

func isSevenPairs(counts [NumKinds]int) bool {
	distinct := 0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		if c != 2 {
			return false
		}
		distinct++
	}
	return distinct == 7
}

var thirteenOrphanKinds = [13]Tile{Man1, Man9, Pin1, Pin9, Sou1, Sou9, East, South, West, North, White, Green, Red}

func isThirteenOrphans(counts [NumKinds]int) bool {
	pairs := 0
	for _, k := range thirteenOrphanKinds {
		switch counts[k] {
		case 1:
		case 2:
			pairs++
		default:
			return false
		}
	}
	for t, c := range counts {
		if c == 0 {
			continue
		}
		found := false
		for _, k := range thirteenOrphanKinds {
			if Tile(t) == k {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return pairs == 1
}

// canDecomposeStandard reports whether the closed multiset decomposes as
// one pair plus `need` groups (triplet or run), per spec.md §4.1's
// deterministic lowest-slot recursion. Memoised on the count-vector key.
func canDecomposeStandard(counts [NumKinds]int, need int) bool {
	if need < 0 || need > 4 {
		return false
	}
	memo := make(map[string]bool)
	for pairTile := 0; pairTile < NumKinds; pairTile++ {
		if counts[pairTile] < 2 {
			continue
		}
		work := counts
		work[pairTile] -= 2
		if canFormGroups(work, need, memo) {
			return true
		}
	}
	return false
}

func groupKey(c [NumKinds]int) string {
	b := make([]byte, NumKinds)
	for i, v := range c {
		b[i] = byte(v)
	}
	return string(b)
}

// canFormGroups recurses on the lowest non-zero slot, trying a triplet
// first and then a sequence, per spec.md §4.1.
func canFormGroups(counts [NumKinds]int, need int, memo map[string]bool) bool {
	if need == 0 {
		for _, c := range counts {
			if c != 0 {
				return false
			}
		}
		return true
	}

	key := fmt.Sprintf("%d|%s", need, groupKey(counts))
	if v, ok := memo[key]; ok {
		return v
	}

	lo := -1
	for i, c := range counts {
		if c > 0 {
			lo = i
			break
		}
	}
	if lo == -1 {
		memo[key] = false
		return false
	}

	ok := false
	if counts[lo] >= 3 {
		work := counts
		work[lo] -= 3
		if canFormGroups(work, need-1, memo) {
			ok = true
		}
	}
	if !ok && lo < 27 && lo%9 <= 6 && counts[lo+1] > 0 && counts[lo+2] > 0 {
		work := counts
		work[lo]--
		work[lo+1]--
		work[lo+2]--
		if canFormGroups(work, need-1, memo) {
			ok = true
		}
	}

	memo[key] = ok
	return ok
}
