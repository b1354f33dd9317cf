package mahjong

// Score implements spec.md §4.6's engine facade: validate, test for
// yakuman, otherwise enumerate partitions and pick the one that
// maximises final payment, fold in dora, and assemble the result.
func Score(h HandInput, ctx ContextInput, rules RuleSet) (*ScoreResult, *ScoringError) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}
	shape, err := ValidateHand(h)
	if err != nil {
		return nil, err
	}

	var partitions []Partition
	if shape == ShapeStandard {
		partitions = Enumerate(h)
	}

	dora := DoraTally{
		Dora:    countDora(h, ctx.DoraIndicators),
		AkaDora: ctx.AkaDoraCount + countAka(h),
		UraDora: countDora(h, ctx.UraDoraIndicators),
	}
	doraHan := dora.Dora + dora.AkaDora + dora.UraDora

	if yakumanHits := evaluateYakuman(h, ctx, rules, shape, partitions); len(yakumanHits) > 0 {
		return scoreYakuman(ctx, yakumanHits, dora), nil
	}

	best, ok := bestOrdinaryScoring(h, ctx, rules, shape, partitions)
	if !ok {
		return nil, newErr(KindNotAWinningShape, "no legal partition for standard hand")
	}

	han := best.han + doraHan
	if best.han == 0 {
		return nil, newErr(KindNoYaku, "no yaku; dora alone cannot win")
	}

	return assembleOrdinary(ctx, rules, han, best.fu, best.breakdown, best.yaku, dora), nil
}

// ordinaryCandidate is one scored partition considered by bestOrdinaryScoring.
type ordinaryCandidate struct {
	yaku       []YakuHit
	han        int
	fu         int
	breakdown  FuBreakdown
	finalPoint int
}

// bestOrdinaryScoring scores every partition (or the sole chiitoitsu/
// thirteen-orphans "partition") and selects the one maximising final
// payment, tie-breaking by han then fu then partition index, per
// spec.md §4.6 step 3.
func bestOrdinaryScoring(h HandInput, ctx ContextInput, rules RuleSet, shape HandShape, partitions []Partition) (ordinaryCandidate, bool) {
	candidates := partitionsForShape(shape, partitions)
	if len(candidates) == 0 {
		return ordinaryCandidate{}, false
	}

	var best ordinaryCandidate
	haveBest := false
	for _, p := range candidates {
		yc := newYakuCtx(h, ctx, rules, shape, p)
		hits := evaluateOrdinary(yc)
		han := 0
		for _, y := range hits {
			han += y.Han
		}
		hasPinfu := false
		for _, y := range hits {
			if y.Name == "平和" {
				hasPinfu = true
			}
		}
		fu, bd := computeFu(shape, p, h, ctx, rules, hasPinfu)
		finalPoint := estimateFinalPoint(han, fu, ctx, rules)

		cand := ordinaryCandidate{yaku: hits, han: han, fu: fu, breakdown: bd, finalPoint: finalPoint}
		if !haveBest || better(cand, best) {
			best = cand
			haveBest = true
		}
	}
	return best, haveBest
}

// partitionsForShape returns the partitions to score: Enumerate's output
// for a standard hand, or a single sentinel zero-value partition for the
// shapes that carry no group/pair decomposition (fu/yaku there are
// computed structurally, not from Partition.Groups).
func partitionsForShape(shape HandShape, partitions []Partition) []Partition {
	if shape == ShapeStandard {
		return partitions
	}
	return []Partition{{}}
}

func better(a, b ordinaryCandidate) bool {
	if a.finalPoint != b.finalPoint {
		return a.finalPoint > b.finalPoint
	}
	if a.han != b.han {
		return a.han > b.han
	}
	return a.fu > b.fu
}

// estimateFinalPoint is a payment proxy used only to rank candidate
// partitions (spec.md §4.6 step 3 picks the partition maximising final
// payment); honba/kyotaku are identical across candidates so they are
// omitted here.
func estimateFinalPoint(han, fu int, ctx ContextInput, rules RuleSet) int {
	label := limitLabel(han, fu, rules)
	base := basePoints(han, fu, label)
	pts, _ := computePayments(base, ctx.dealer(), ctx.WinType, 0, 0)
	if ctx.WinType == Ron {
		return pts.Ron
	}
	if ctx.dealer() {
		return pts.TsumoDealerPay * 3
	}
	return pts.TsumoDealerPay + pts.TsumoNonDealerPay*2
}

func assembleOrdinary(ctx ContextInput, rules RuleSet, han, fu int, bd FuBreakdown, yaku []YakuHit, dora DoraTally) *ScoreResult {
	label := limitLabel(han, fu, rules)
	base := basePoints(han, fu, label)
	points, payments := computePayments(base, ctx.dealer(), ctx.WinType, ctx.Honba, ctx.Kyotaku)
	return &ScoreResult{
		Han:         han,
		Fu:          fu,
		Yaku:        yaku,
		Dora:        dora,
		PointLabel:  label,
		Points:      points,
		Payments:    payments,
		FuBreakdown: bd,
		Explanation: explain(label, han, fu, yaku, nil),
	}
}

func scoreYakuman(ctx ContextInput, hits []YakumanHit, dora DoraTally) *ScoreResult {
	mult := 0
	for _, y := range hits {
		mult += y.Multiplier
	}
	label := yakumanLabel(mult)
	base := yakumanBasePoints(mult)
	points, payments := computePayments(base, ctx.dealer(), ctx.WinType, ctx.Honba, ctx.Kyotaku)
	return &ScoreResult{
		Han:         0,
		Fu:          0,
		Yakuman:     hits,
		Dora:        dora,
		PointLabel:  label,
		Points:      points,
		Payments:    payments,
		Explanation: explain(label, 0, 0, nil, hits),
	}
}
