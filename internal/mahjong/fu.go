package mahjong

// FuBreakdown documents how a fu total was assembled, for ScoreResult's
// fu_breakdown field.
type FuBreakdown struct {
	Base      int
	WinMethod int // +2 tsumo (non-pinfu), +10 concealed ron
	Pair      int
	Wait      int
	Groups    int
	Total     int // before rounding
	Rounded   int
}

func roundUp10(x int) int {
	if x%10 == 0 {
		return x
	}
	return x + (10 - x%10)
}

func baseGroupFu(g Group) int {
	switch g.Kind {
	case GroupSequence:
		return 0
	case GroupTriplet:
		v := 4
		if g.Tile.IsTerminalOrHonor() {
			v = 8
		}
		if g.Open {
			v /= 2
		}
		return v
	case GroupKan:
		v := 8
		if g.Tile.IsTerminalOrHonor() {
			v = 16
		}
		if g.Ankan {
			v *= 2
		}
		return v
	default:
		return 0
	}
}

func pairFu(pair Tile, ctx ContextInput, rules RuleSet) int {
	isRound := pair == ctx.RoundWind
	isSeat := pair == ctx.SeatWind
	switch {
	case isRound && isSeat:
		return rules.RenpuFu
	case pair.IsDragon():
		return 2
	case isRound || isSeat:
		return 2
	default:
		return 0
	}
}

func waitFu(a Attach) int {
	switch a.Wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		return 2
	default:
		return 0
	}
}

// groupsFu sums every group's fu, halving the one triplet the winning
// tile completes via ron (shanpon), per spec.md §4.4's ron-is-open rule.
func groupsFu(p Partition, a Attach, winType WinType) int {
	adjustIdx := -1
	if ronCompletesGroup(p, a, winType) {
		adjustIdx = a.GroupIdx
	}
	sum := 0
	for i, g := range p.Groups {
		v := baseGroupFu(g)
		if i == adjustIdx {
			v /= 2
		}
		sum += v
	}
	return sum
}

// computeFu implements spec.md §4.4: pinfu-tsumo and chiitoitsu are flat,
// otherwise every feasible attachment of the winning tile is tried and
// the maximum rounded fu is returned.
func computeFu(shape HandShape, p Partition, h HandInput, ctx ContextInput, rules RuleSet, hasPinfu bool) (int, FuBreakdown) {
	if shape == ShapeSevenPairs {
		return 25, FuBreakdown{Base: 25, Total: 25, Rounded: 25}
	}
	if hasPinfu && ctx.WinType == Tsumo {
		return 20, FuBreakdown{Base: 20, Total: 20, Rounded: 20}
	}

	attaches := attachPoints(p, h.WinTile.Base)
	if len(attaches) == 0 {
		attaches = []Attach{{GroupIdx: -2}}
	}

	base := 20
	winMethod := 0
	switch {
	case ctx.WinType == Tsumo:
		winMethod = 2
	case ctx.WinType == Ron && allMeldsConcealed(h):
		winMethod = 10
	}
	pf := pairFu(p.Pair, ctx, rules)

	best := -1
	var bestBD FuBreakdown
	for _, a := range attaches {
		wf := waitFu(a)
		gf := groupsFu(p, a, ctx.WinType)
		total := base + winMethod + pf + wf + gf
		rounded := roundUp10(total)
		if rounded > best {
			best = rounded
			bestBD = FuBreakdown{Base: base, WinMethod: winMethod, Pair: pf, Wait: wf, Groups: gf, Total: total, Rounded: rounded}
		}
	}
	return best, bestBD
}
