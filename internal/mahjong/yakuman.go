package mahjong

// YakumanHit is one yakuman-tier element: a Japanese name and its
// multiplier in yakuman units (1 = single, 2 = double).
type YakumanHit struct {
	Name       string
	Multiplier int
}

// evaluateYakuman checks every yakuman in spec.md §6's yakuman tier. It
// is tried before the ordinary tier; when it returns a non-empty slice,
// the engine facade suppresses every ordinary yaku for this hand.
func evaluateYakuman(h HandInput, ctx ContextInput, rules RuleSet, shape HandShape, partitions []Partition) []YakumanHit {
	var hits []YakumanHit
	counts, _ := counts34(h)

	double := func(mult int) int {
		if mult > 1 && !rules.DoubleYakumanAri {
			return 1
		}
		return mult
	}

	if ctx.Tenhou {
		hits = append(hits, YakumanHit{"天和", 1})
	}
	if ctx.Chiihou {
		hits = append(hits, YakumanHit{"地和", 1})
	}

	if shape == ShapeThirteenOrphans {
		if kokushiThirteenWait(counts, h.WinTile.Base) {
			hits = append(hits, YakumanHit{"国士無双十三面待ち", double(2)})
		} else {
			hits = append(hits, YakumanHit{"国士無双", 1})
		}
	}

	if chuuren, junsei := chuurenShape(h, counts); chuuren {
		if junsei {
			hits = append(hits, YakumanHit{"純正九蓮宝燈", double(2)})
		} else {
			hits = append(hits, YakumanHit{"九蓮宝燈", 1})
		}
	}

	if isTsuuiisou(counts) {
		hits = append(hits, YakumanHit{"字一色", 1})
	}
	if isRyuuiisou(counts) {
		hits = append(hits, YakumanHit{"緑一色", 1})
	}
	if isChinroutou(counts) {
		hits = append(hits, YakumanHit{"清老頭", 1})
	}

	if numKanMelds(h) == 4 {
		hits = append(hits, YakumanHit{"四槓子", 1})
	}

	for _, p := range partitions {
		hits = append(hits, standardPartitionYakuman(h, ctx, rules, p, double)...)
	}

	return dedupeYakuman(hits)
}

// kokushiThirteenWait reports whether a thirteen-orphans win was on the
// 13-sided wait: before the winning tile, every one of the 13 kinds was
// held exactly once.
func kokushiThirteenWait(counts [NumKinds]int, win Tile) bool {
	pre := counts
	pre[win]--
	for _, k := range thirteenOrphanKinds {
		if pre[k] != 1 {
			return false
		}
	}
	return true
}

// chuurenShape reports whether h is nine-gates (single suit, closed,
// 1112345678999 plus one extra of the same suit) and whether it is the
// pure form (the pre-win 13 tiles were exactly that canonical shape).
func chuurenShape(h HandInput, counts [NumKinds]int) (chuuren, junsei bool) {
	if len(h.Melds) != 0 {
		return false, false
	}
	if h.WinTile.Base.IsHonor() {
		return false, false
	}
	suit := h.WinTile.Base.Suit()
	var c9 [9]int
	for t, c := range counts {
		if c == 0 {
			continue
		}
		tt := Tile(t)
		if tt.IsHonor() || tt.Suit() != suit {
			return false, false
		}
		c9[tt.Number()-1] = c
	}
	if c9[0] < 3 || c9[8] < 3 {
		return false, false
	}
	for i := 1; i < 8; i++ {
		if c9[i] < 1 {
			return false, false
		}
	}
	base := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := 0
	for i := 0; i < 9; i++ {
		d := c9[i] - base[i]
		if d < 0 {
			return false, false
		}
		extra += d
	}
	if extra != 1 {
		return false, false
	}

	idx := h.WinTile.Base.Number() - 1
	work := c9
	work[idx]--
	pure := true
	for i := 0; i < 9; i++ {
		if work[i] != base[i] {
			pure = false
			break
		}
	}
	return true, pure
}

func isTsuuiisou(counts [NumKinds]int) bool {
	for t, c := range counts {
		if c > 0 && !Tile(t).IsHonor() {
			return false
		}
	}
	return true
}

func isRyuuiisou(counts [NumKinds]int) bool {
	for t, c := range counts {
		if c > 0 && !Tile(t).IsGreen() {
			return false
		}
	}
	return true
}

func isChinroutou(counts [NumKinds]int) bool {
	for t, c := range counts {
		if c > 0 && !Tile(t).IsTerminal() {
			return false
		}
	}
	return true
}

// standardPartitionYakuman checks the yakuman that depend on a specific
// standard-shape group decomposition: daisangen, shousuushii, daisuushii
// and suuankou / suuankou tanki.
func standardPartitionYakuman(h HandInput, ctx ContextInput, rules RuleSet, p Partition, double func(int) int) []YakumanHit {
	var hits []YakumanHit

	dragonTrips, windTrips := 0, 0
	for _, g := range p.Groups {
		if g.Kind != GroupTriplet && g.Kind != GroupKan {
			continue
		}
		if g.Tile.IsDragon() {
			dragonTrips++
		}
		if g.Tile.IsWind() {
			windTrips++
		}
	}
	if dragonTrips == 3 {
		hits = append(hits, YakumanHit{"大三元", 1})
	}
	if windTrips == 4 {
		hits = append(hits, YakumanHit{"大四喜", double(2)})
	} else if windTrips == 3 && p.Pair.IsWind() {
		hits = append(hits, YakumanHit{"小四喜", 1})
	}

	if single, tanki := suuankouShape(h, ctx, p); tanki {
		hits = append(hits, YakumanHit{"四暗刻単騎", double(2)})
	} else if single {
		hits = append(hits, YakumanHit{"四暗刻", 1})
	}

	return hits
}

// suuankouShape reports whether partition p is four concealed triplets
// and, if so, whether it is reported as tanki (scored double) or single.
// Only a ron on the pair is reported as tanki; a tsumo win is always
// reported single, and a ron that completes a triplet (shanpon) is not
// suuankou at all.
func suuankouShape(h HandInput, ctx ContextInput, p Partition) (single, tanki bool) {
	trips := 0
	for _, g := range p.Groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupKan) && !g.Open {
			trips++
		}
	}
	if trips != 4 {
		return false, false
	}

	attaches := attachPoints(p, h.WinTile.Base)
	isTanki, shanponBreak := false, false
	for _, a := range attaches {
		if a.PairWait {
			isTanki = true
		}
		if ronCompletesGroup(p, a, ctx.WinType) {
			shanponBreak = true
		}
	}

	if ctx.WinType == Tsumo {
		return true, false
	}
	if shanponBreak {
		return false, false
	}
	if isTanki {
		return false, true
	}
	return true, false
}

func dedupeYakuman(hits []YakumanHit) []YakumanHit {
	seen := map[string]bool{}
	out := hits[:0]
	for _, h := range hits {
		if seen[h.Name] {
			continue
		}
		seen[h.Name] = true
		out = append(out, h)
	}
	return out
}
