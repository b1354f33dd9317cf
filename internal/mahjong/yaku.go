package mahjong

// YakuHit is one scoring element in the result: a Japanese yaku name and
// its han value for this hand (closed/open values already resolved).
type YakuHit struct {
	Name string
	Han  int
}

// yakuCtx bundles everything an ordinary-tier predicate needs, mirroring
// the teacher's YakuContext in
// runtime/game/engines/mahjong/yaku.go.
type yakuCtx struct {
	hand      HandInput
	ctx       ContextInput
	rules     RuleSet
	shape     HandShape
	partition Partition
	counts    [NumKinds]int
	closed    bool
	hasOpen   bool
}

func newYakuCtx(h HandInput, ctx ContextInput, rules RuleSet, shape HandShape, p Partition) *yakuCtx {
	counts, _ := counts34(h)
	closed := allMeldsConcealed(h)
	return &yakuCtx{
		hand: h, ctx: ctx, rules: rules, shape: shape, partition: p,
		counts: counts, closed: closed, hasOpen: !closed,
	}
}

// evaluateOrdinary returns every ordinary-tier yaku that fires for this
// partition, per spec.md §4.3, with junchan/chanta and chinitsu/honitsu
// suppression already applied.
func evaluateOrdinary(yc *yakuCtx) []YakuHit {
	var hits []YakuHit
	for _, check := range ordinaryCheckers {
		if hit, ok := check(yc); ok {
			hits = append(hits, hit)
		}
	}

	hasJunchan, hasChanta := false, false
	hasChinitsu, hasHonitsu := false, false
	for _, h := range hits {
		switch h.Name {
		case "純全帯么九":
			hasJunchan = true
		case "混全帯么九":
			hasChanta = true
		case "清一色":
			hasChinitsu = true
		case "混一色":
			hasHonitsu = true
		}
	}
	if hasJunchan && hasChanta {
		hits = removeYaku(hits, "混全帯么九")
	}
	if hasChinitsu && hasHonitsu {
		hits = removeYaku(hits, "混一色")
	}
	return hits
}

func removeYaku(hits []YakuHit, name string) []YakuHit {
	out := hits[:0]
	for _, h := range hits {
		if h.Name != name {
			out = append(out, h)
		}
	}
	return out
}

type yakuChecker func(yc *yakuCtx) (YakuHit, bool)

var ordinaryCheckers = []yakuChecker{
	checkRiichi,
	checkIppatsu,
	checkHaitei,
	checkHoutei,
	checkRinshan,
	checkChankan,
	checkMenzenTsumo,
	checkYakuhaiRound,
	checkYakuhaiSeat,
	checkYakuhaiDragon(White, "役牌 白"),
	checkYakuhaiDragon(Green, "役牌 發"),
	checkYakuhaiDragon(Red, "役牌 中"),
	checkTanyao,
	checkPinfu,
	checkIipeikou,
	checkSanshokuDoujun,
	checkIttsu,
	checkChanta,
	checkJunchan,
	checkToitoi,
	checkSanshokuDoukou,
	checkSanankou,
	checkShousangen,
	checkSankantsu,
	checkChiitoitsu,
	checkHonroutou,
	checkHonitsu,
	checkChinitsu,
}

func checkRiichi(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.DoubleRiichi {
		return YakuHit{"ダブル立直", 2}, true
	}
	if yc.ctx.Riichi {
		return YakuHit{"立直", 1}, true
	}
	return YakuHit{}, false
}

func checkIppatsu(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.Ippatsu {
		return YakuHit{"一発", 1}, true
	}
	return YakuHit{}, false
}

func checkHaitei(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.Haitei {
		return YakuHit{"海底摸月", 1}, true
	}
	return YakuHit{}, false
}

func checkHoutei(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.Houtei {
		return YakuHit{"河底撈魚", 1}, true
	}
	return YakuHit{}, false
}

func checkRinshan(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.Rinshan {
		return YakuHit{"嶺上開花", 1}, true
	}
	return YakuHit{}, false
}

func checkChankan(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.Chankan {
		return YakuHit{"槍槓", 1}, true
	}
	return YakuHit{}, false
}

func checkMenzenTsumo(yc *yakuCtx) (YakuHit, bool) {
	if yc.ctx.WinType == Tsumo && yc.closed {
		return YakuHit{"門前清自摸和", 1}, true
	}
	return YakuHit{}, false
}

func windHan(yc *yakuCtx, name string, wind Tile) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	for _, g := range yc.partition.Groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupKan) && g.Tile == wind {
			return YakuHit{name, 1}, true
		}
	}
	return YakuHit{}, false
}

func checkYakuhaiRound(yc *yakuCtx) (YakuHit, bool) {
	name := map[Tile]string{East: "場風 東", South: "場風 南", West: "場風 西", North: "場風 北"}[yc.ctx.RoundWind]
	return windHan(yc, name, yc.ctx.RoundWind)
}

func checkYakuhaiSeat(yc *yakuCtx) (YakuHit, bool) {
	name := map[Tile]string{East: "自風 東", South: "自風 南", West: "自風 西", North: "自風 北"}[yc.ctx.SeatWind]
	return windHan(yc, name, yc.ctx.SeatWind)
}

// checkYakuhaiDragon returns the checker for one dragon kind, so each
// dragon triplet or kan in the partition is reported as its own one-han
// yakuhai.
func checkYakuhaiDragon(dragon Tile, name string) yakuChecker {
	return func(yc *yakuCtx) (YakuHit, bool) {
		if yc.shape != ShapeStandard {
			return YakuHit{}, false
		}
		for _, g := range yc.partition.Groups {
			if (g.Kind == GroupTriplet || g.Kind == GroupKan) && g.Tile == dragon {
				return YakuHit{name, 1}, true
			}
		}
		return YakuHit{}, false
	}
}

func checkTanyao(yc *yakuCtx) (YakuHit, bool) {
	if yc.hasOpen && !yc.rules.KuitanAri {
		return YakuHit{}, false
	}
	for t, c := range yc.counts {
		if c > 0 && Tile(t).IsTerminalOrHonor() {
			return YakuHit{}, false
		}
	}
	return YakuHit{"断么九", 1}, true
}

func checkPinfu(yc *yakuCtx) (YakuHit, bool) {
	if ok, _ := hasPinfuShape(yc); ok {
		return YakuHit{"平和", 1}, true
	}
	return YakuHit{}, false
}

// hasPinfuShape reports whether the partition structurally qualifies for
// pinfu (closed, all sequences, non-yakuhai pair) and the winning tile
// has a ryanmen attachment, per spec.md §4.3.
func hasPinfuShape(yc *yakuCtx) (bool, []Attach) {
	if yc.shape != ShapeStandard || !yc.closed {
		return false, nil
	}
	for _, g := range yc.partition.Groups {
		if g.Kind != GroupSequence {
			return false, nil
		}
	}
	pair := yc.partition.Pair
	if pair.IsDragon() || pair == yc.ctx.RoundWind || pair == yc.ctx.SeatWind {
		return false, nil
	}
	attaches := attachPoints(yc.partition, yc.hand.WinTile.Base)
	var ryanmen []Attach
	for _, a := range attaches {
		if a.Wait == WaitRyanmen {
			ryanmen = append(ryanmen, a)
		}
	}
	return len(ryanmen) > 0, ryanmen
}

func checkIipeikou(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard || !yc.closed {
		return YakuHit{}, false
	}
	seen := map[Tile]int{}
	for _, g := range yc.partition.Groups {
		if g.Kind == GroupSequence {
			seen[g.Tile]++
		}
	}
	for _, n := range seen {
		if n >= 2 {
			return YakuHit{"一盃口", 1}, true
		}
	}
	return YakuHit{}, false
}

func checkSanshokuDoujun(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	bySuit := [3]map[int]bool{{}, {}, {}}
	for _, g := range yc.partition.Groups {
		if g.Kind != GroupSequence {
			continue
		}
		s := g.Tile.Suit()
		if s < 0 {
			continue
		}
		bySuit[s][g.Tile.Number()] = true
	}
	for n := 1; n <= 7; n++ {
		if bySuit[0][n] && bySuit[1][n] && bySuit[2][n] {
			if yc.hasOpen {
				return YakuHit{"三色同順", 1}, true
			}
			return YakuHit{"三色同順", 2}, true
		}
	}
	return YakuHit{}, false
}

func checkIttsu(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	bySuit := [3]map[int]bool{{}, {}, {}}
	for _, g := range yc.partition.Groups {
		if g.Kind != GroupSequence {
			continue
		}
		s := g.Tile.Suit()
		if s < 0 {
			continue
		}
		bySuit[s][g.Tile.Number()] = true
	}
	for s := 0; s < 3; s++ {
		if bySuit[s][1] && bySuit[s][4] && bySuit[s][7] {
			if yc.hasOpen {
				return YakuHit{"一気通貫", 1}, true
			}
			return YakuHit{"一気通貫", 2}, true
		}
	}
	return YakuHit{}, false
}

func checkChanta(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	hasHonor := false
	for _, g := range yc.partition.Groups {
		if !g.IsTerminalOrHonor() {
			return YakuHit{}, false
		}
		if g.Kind != GroupSequence && g.Tile.IsHonor() {
			hasHonor = true
		}
	}
	if !yc.partition.Pair.IsTerminalOrHonor() {
		return YakuHit{}, false
	}
	if yc.partition.Pair.IsHonor() {
		hasHonor = true
	}
	if !hasHonor {
		return YakuHit{}, false
	}
	if yc.hasOpen {
		return YakuHit{"混全帯么九", 1}, true
	}
	return YakuHit{"混全帯么九", 2}, true
}

func checkJunchan(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	for _, g := range yc.partition.Groups {
		if g.Tile.IsHonor() {
			return YakuHit{}, false
		}
		if !g.IsTerminalOrHonor() {
			return YakuHit{}, false
		}
	}
	if yc.partition.Pair.IsHonor() || !yc.partition.Pair.IsTerminalOrHonor() {
		return YakuHit{}, false
	}
	if yc.hasOpen {
		return YakuHit{"純全帯么九", 2}, true
	}
	return YakuHit{"純全帯么九", 3}, true
}

func checkToitoi(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	for _, g := range yc.partition.Groups {
		if g.Kind == GroupSequence {
			return YakuHit{}, false
		}
	}
	return YakuHit{"対々和", 2}, true
}

func checkSanshokuDoukou(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	bySuit := [3]map[int]bool{{}, {}, {}}
	for _, g := range yc.partition.Groups {
		if g.Kind != GroupTriplet && g.Kind != GroupKan {
			continue
		}
		s := g.Tile.Suit()
		if s < 0 {
			continue
		}
		bySuit[s][g.Tile.Number()] = true
	}
	for n := 1; n <= 9; n++ {
		if bySuit[0][n] && bySuit[1][n] && bySuit[2][n] {
			return YakuHit{"三色同刻", 2}, true
		}
	}
	return YakuHit{}, false
}

func checkSanankou(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	attaches := attachPoints(yc.partition, yc.hand.WinTile.Base)
	ronAdjust := -1
	for _, a := range attaches {
		if ronCompletesGroup(yc.partition, a, yc.ctx.WinType) {
			ronAdjust = a.GroupIdx
		}
	}
	n := 0
	for i, g := range yc.partition.Groups {
		if g.Kind != GroupTriplet && g.Kind != GroupKan {
			continue
		}
		if g.Open {
			continue
		}
		if i == ronAdjust {
			continue
		}
		n++
	}
	if n >= 3 {
		return YakuHit{"三暗刻", 2}, true
	}
	return YakuHit{}, false
}

func checkShousangen(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	triplets := map[Tile]bool{}
	for _, g := range yc.partition.Groups {
		if (g.Kind == GroupTriplet || g.Kind == GroupKan) && g.Tile.IsDragon() {
			triplets[g.Tile] = true
		}
	}
	pairIsDragon := yc.partition.Pair.IsDragon()
	if len(triplets) == 2 && pairIsDragon {
		return YakuHit{"小三元", 2}, true
	}
	return YakuHit{}, false
}

func checkSankantsu(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape != ShapeStandard {
		return YakuHit{}, false
	}
	n := numKanMelds(yc.hand)
	if n == 3 {
		return YakuHit{"三槓子", 2}, true
	}
	return YakuHit{}, false
}

func checkChiitoitsu(yc *yakuCtx) (YakuHit, bool) {
	if yc.shape == ShapeSevenPairs {
		return YakuHit{"七対子", 2}, true
	}
	return YakuHit{}, false
}

func checkHonroutou(yc *yakuCtx) (YakuHit, bool) {
	for t, c := range yc.counts {
		if c > 0 && !Tile(t).IsTerminalOrHonor() {
			return YakuHit{}, false
		}
	}
	return YakuHit{"混老頭", 2}, true
}

func suitsPresent(counts [NumKinds]int) (suits map[int]bool, hasHonor bool) {
	suits = map[int]bool{}
	for t, c := range counts {
		if c == 0 {
			continue
		}
		if Tile(t).IsHonor() {
			hasHonor = true
			continue
		}
		suits[Tile(t).Suit()] = true
	}
	return suits, hasHonor
}

func checkHonitsu(yc *yakuCtx) (YakuHit, bool) {
	suits, hasHonor := suitsPresent(yc.counts)
	if len(suits) == 1 && hasHonor {
		if yc.hasOpen {
			return YakuHit{"混一色", 2}, true
		}
		return YakuHit{"混一色", 3}, true
	}
	return YakuHit{}, false
}

func checkChinitsu(yc *yakuCtx) (YakuHit, bool) {
	suits, hasHonor := suitsPresent(yc.counts)
	if len(suits) == 1 && !hasHonor {
		if yc.hasOpen {
			return YakuHit{"清一色", 5}, true
		}
		return YakuHit{"清一色", 6}, true
	}
	return YakuHit{}, false
}
