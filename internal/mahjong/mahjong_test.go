package mahjong_test

import (
	"reflect"
	"strings"
	"testing"

	"riichiscore/internal/mahjong"
)

func mustTiles(t *testing.T, lits string) []mahjong.HandTile {
	t.Helper()
	fields := strings.Fields(lits)
	out := make([]mahjong.HandTile, 0, len(fields))
	for _, f := range fields {
		ht, err := mahjong.ParseHandTile(f)
		if err != nil {
			t.Fatalf("parse %q: %v", f, err)
		}
		out = append(out, ht)
	}
	return out
}

func mustOne(t *testing.T, lit string) mahjong.HandTile {
	t.Helper()
	ht, err := mahjong.ParseHandTile(lit)
	if err != nil {
		t.Fatalf("parse %q: %v", lit, err)
	}
	return ht
}

func TestValidateHand_Shapes(t *testing.T) {
	cases := []struct {
		name string
		lits string
		win  string
		want mahjong.HandShape
	}{
		{
			name: "standard",
			lits: "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p",
			win:  "2p",
			want: mahjong.ShapeStandard,
		},
		{
			name: "seven pairs",
			lits: "1m 1m 2m 2m 3m 3m 4p 4p 5p 5p 6p 6p E E",
			win:  "E",
			want: mahjong.ShapeSevenPairs,
		},
		{
			name: "thirteen orphans",
			lits: "1m 9m 1p 9p 1s 9s E S W N P F C E",
			win:  "E",
			want: mahjong.ShapeThirteenOrphans,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := mahjong.HandInput{ClosedTiles: mustTiles(t, c.lits), WinTile: mustOne(t, c.win)}
			shape, err := mahjong.ValidateHand(h)
			if err != nil {
				t.Fatalf("ValidateHand: %v", err)
			}
			if shape != c.want {
				t.Fatalf("shape = %v, want %v", shape, c.want)
			}
		})
	}
}

func TestValidateHand_WrongTotalTiles(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	_, err := mahjong.ValidateHand(h)
	if err == nil || err.Kind != mahjong.KindWrongTotalTiles {
		t.Fatalf("expected %s, got %v", mahjong.KindWrongTotalTiles, err)
	}
}

func TestValidateHand_NotAWinningShape(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 4m 5p 6p 7p 1s 3s 5s 7s 9s E E S"),
		WinTile:     mustOne(t, "S"),
	}
	_, err := mahjong.ValidateHand(h)
	if err == nil || err.Kind != mahjong.KindNotAWinningShape {
		t.Fatalf("expected %s, got %v", mahjong.KindNotAWinningShape, err)
	}
}

func TestValidateContext_Invariants(t *testing.T) {
	base := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.East}

	riichiBoth := base
	riichiBoth.Riichi, riichiBoth.DoubleRiichi = true, true
	if err := mahjong.ValidateContext(riichiBoth); err == nil || err.Kind != mahjong.KindRiichiDoubleRiichiBoth {
		t.Fatalf("expected %s, got %v", mahjong.KindRiichiDoubleRiichiBoth, err)
	}

	ippatsuNoRiichi := base
	ippatsuNoRiichi.Ippatsu = true
	if err := mahjong.ValidateContext(ippatsuNoRiichi); err == nil || err.Kind != mahjong.KindIppatsuWithoutRiichi {
		t.Fatalf("expected %s, got %v", mahjong.KindIppatsuWithoutRiichi, err)
	}

	haiteiOnRon := base
	haiteiOnRon.WinType = mahjong.Ron
	haiteiOnRon.Haitei = true
	if err := mahjong.ValidateContext(haiteiOnRon); err == nil || err.Kind != mahjong.KindHaiteiOnRon {
		t.Fatalf("expected %s, got %v", mahjong.KindHaiteiOnRon, err)
	}

	houteiOnTsumo := base
	houteiOnTsumo.Houtei = true
	if err := mahjong.ValidateContext(houteiOnTsumo); err == nil || err.Kind != mahjong.KindHouteiOnTsumo {
		t.Fatalf("expected %s, got %v", mahjong.KindHouteiOnTsumo, err)
	}

	tenhouNonDealer := base
	tenhouNonDealer.SeatWind = mahjong.South
	tenhouNonDealer.Tenhou = true
	if err := mahjong.ValidateContext(tenhouNonDealer); err == nil || err.Kind != mahjong.KindTenhouRequiresDealerTsumo {
		t.Fatalf("expected %s, got %v", mahjong.KindTenhouRequiresDealerTsumo, err)
	}
}

// Scenario 1 from spec.md §8: non-dealer ron, seat S, round E, riichi,
// winning on a tanki pair wait, two declared aka-dora.
func TestScore_NonDealerRonMangan(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{
		WinType:        mahjong.Ron,
		RoundWind:      mahjong.East,
		SeatWind:       mahjong.South,
		Riichi:         true,
		DoraIndicators: []mahjong.HandTile{mustOne(t, "4m")},
		AkaDoraCount:   2,
	}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Han != 4 {
		t.Fatalf("han = %d, want 4", res.Han)
	}
	if res.Fu != 40 {
		t.Fatalf("fu = %d, want 40", res.Fu)
	}
	if res.PointLabel != mahjong.LabelMangan {
		t.Fatalf("point_label = %q, want mangan", res.PointLabel)
	}
	if res.Points.Ron != 8000 {
		t.Fatalf("points.ron = %d, want 8000", res.Points.Ron)
	}
}

// Scenario 4 from spec.md §8: kokushi on the 13-sided wait, double
// yakuman allowed.
func TestScore_Kokushi13Wait(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 9m 9m 1p 9p 1s 9s E S W N P F C"),
		WinTile:     mustOne(t, "9m"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	rules := mahjong.DefaultRuleSet()
	rules.DoubleYakumanAri = true

	res, err := mahjong.Score(h, ctx, rules)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(res.Yakuman) != 1 || res.Yakuman[0].Name != "国士無双十三面待ち" {
		t.Fatalf("yakuman = %v, want 国士無双十三面待ち", res.Yakuman)
	}
	if res.PointLabel != mahjong.LabelDoubleYakuman {
		t.Fatalf("point_label = %q, want double yakuman", res.PointLabel)
	}
	if res.Points.Ron != 64000 {
		t.Fatalf("points.ron = %d, want 64000", res.Points.Ron)
	}
}

func TestScore_NoYakuRule(t *testing.T) {
	// An open terminal pon rules out tanyao/pinfu/menzen yaku; the rest of
	// the hand carries no yakuhai, sanshoku, or chiitoi/toitoi shape
	// either, so only dora (which cannot stand alone) is present.
	h := mahjong.HandInput{
		Melds: []mahjong.Meld{{
			Kind:  mahjong.Pon,
			Open:  true,
			Tiles: mustTiles(t, "9m 9m 9m"),
		}},
		ClosedTiles: mustTiles(t, "2p 3p 4p 5p 6p 7p 1s 2s 3s 1p 1p"),
		WinTile:     mustOne(t, "3p"),
	}
	ctx := mahjong.ContextInput{
		WinType:        mahjong.Ron,
		RoundWind:      mahjong.East,
		SeatWind:       mahjong.South,
		DoraIndicators: []mahjong.HandTile{mustOne(t, "1s")},
	}
	_, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err == nil || err.Kind != mahjong.KindNoYaku {
		t.Fatalf("expected %s, got %v", mahjong.KindNoYaku, err)
	}
}

// Red-five invariance (spec.md §8): swapping a 5-tile for its red alias
// must raise aka_dora by exactly one and leave shape/ordinary yaku alone.
func TestScore_RedFiveInvariance(t *testing.T) {
	base := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	red := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	// Replace the plain 5p with its red alias.
	for i, t2 := range red.ClosedTiles {
		if t2.Base == mahjong.Pin5 {
			red.ClosedTiles[i] = mustOne(t, "5pr")
			break
		}
	}

	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South, Riichi: true}
	baseRes, err := mahjong.Score(base, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score(base): %v", err)
	}
	redRes, err := mahjong.Score(red, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score(red): %v", err)
	}
	if redRes.Dora.AkaDora != baseRes.Dora.AkaDora+1 {
		t.Fatalf("aka_dora = %d, want %d", redRes.Dora.AkaDora, baseRes.Dora.AkaDora+1)
	}
	if len(redRes.Yaku) != len(baseRes.Yaku) {
		t.Fatalf("ordinary yaku set changed: %v vs %v", redRes.Yaku, baseRes.Yaku)
	}
}

func TestEnumerate_StandardHandProducesPartition(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	parts := mahjong.Enumerate(h)
	if len(parts) == 0 {
		t.Fatalf("expected at least one partition")
	}
	for _, p := range parts {
		if len(p.Groups) != 4 {
			t.Fatalf("partition has %d groups, want 4", len(p.Groups))
		}
	}
}

// Scenario 2 from spec.md §8: same hand as scenario 1 but the winner is
// dealer (seat E), so the East triplet counts as both round and seat
// yakuhai and the dealer ron multiplier applies.
func TestScore_DealerRonMangan(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{
		WinType:        mahjong.Ron,
		RoundWind:      mahjong.East,
		SeatWind:       mahjong.East,
		Riichi:         true,
		DoraIndicators: []mahjong.HandTile{mustOne(t, "4m")},
		AkaDoraCount:   2,
	}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.PointLabel != mahjong.LabelMangan {
		t.Fatalf("point_label = %q, want mangan", res.PointLabel)
	}
	if res.Points.Ron != 12000 {
		t.Fatalf("points.ron = %d, want 12000", res.Points.Ron)
	}
}

// Scenario 3 from spec.md §8: closed ittsuu, no riichi, no dora.
func TestScore_ClosedIttsuu(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4m 5m 6m 7m 8m 9m 2p 2p 2p 5s 5s"),
		WinTile:     mustOne(t, "5s"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Han != 2 {
		t.Fatalf("han = %d, want 2", res.Han)
	}
	found := false
	for _, y := range res.Yaku {
		if y.Name == "一気通貫" && y.Han == 2 {
			found = true
		}
	}
	if !found {
		t.Fatalf("yaku = %v, want 一気通貫(2)", res.Yaku)
	}
}

// Scenario 5 from spec.md §8: pinfu tsumo.
func TestScore_PinfuTsumo(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4m 5m 6m 2p 3p 4p 6s 7s 8s 5p 5p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Fu != 20 {
		t.Fatalf("fu = %d, want 20", res.Fu)
	}
	names := map[string]bool{}
	for _, y := range res.Yaku {
		names[y.Name] = true
	}
	if !names["平和"] || !names["門前清自摸和"] {
		t.Fatalf("yaku = %v, want 平和 and 門前清自摸和", res.Yaku)
	}
}

// A ron-completed shanpon triplet must be treated as open for fu
// purposes: the completed triplet's fu is halved, same as any other
// open triplet (spec.md §4.4's ron-is-open rule, §9's "sanankou-on-ron
// adjustment").
func TestScore_RonShanponHalvesCompletedTripletFu(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7p 8p 9p 5s 5s 9s 9s 9s"),
		WinTile:     mustOne(t, "9s"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South, Riichi: true}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// 9s9s9s is a concealed terminal triplet (8 fu) halved to 4 because
	// ron completed it via shanpon; an untouched concealed terminal
	// triplet would contribute 8.
	if res.FuBreakdown.Groups != 4 {
		t.Fatalf("fu_breakdown.groups = %d, want 4 (halved shanpon triplet)", res.FuBreakdown.Groups)
	}
}

// Sanankou must not count a triplet that ron completed via shanpon as
// concealed. With only two other concealed triplets, the ron case has
// no yaku at all; the same hand won by tsumo keeps all three triplets
// concealed and sanankou fires.
func TestScore_SanankouExcludesRonShanponTriplet(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 1m 1m 9p 9p 9p 3p 4p 5p 2m 2m 7s 7s 7s"),
		WinTile:     mustOne(t, "7s"),
	}
	rules := mahjong.DefaultRuleSet()

	ronCtx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	if _, err := mahjong.Score(h, ronCtx, rules); err == nil || err.Kind != mahjong.KindNoYaku {
		t.Fatalf("ron: expected %s, got %v", mahjong.KindNoYaku, err)
	}

	tsumoCtx := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, tsumoCtx, rules)
	if err != nil {
		t.Fatalf("tsumo: Score: %v", err)
	}
	found := false
	for _, y := range res.Yaku {
		if y.Name == "三暗刻" {
			found = true
		}
	}
	if !found {
		t.Fatalf("tsumo: yaku = %v, want 三暗刻", res.Yaku)
	}
}

// Suuankou requires all four triplets concealed; a ron win that
// completes the fourth triplet via shanpon breaks that and the hand
// falls back to toitoi+sanankou instead of the yakuman. The same
// shape won by tsumo keeps all four triplets concealed and suuankou
// fires.
func TestScore_SuuankouBrokenByRonShanpon(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 1m 1m 9m 9m 9m 1p 1p 1p 9p 9p 7s 7s 7s"),
		WinTile:     mustOne(t, "7s"),
	}
	rules := mahjong.DefaultRuleSet()

	ronCtx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, ronCtx, rules)
	if err != nil {
		t.Fatalf("ron: Score: %v", err)
	}
	if len(res.Yakuman) != 0 {
		t.Fatalf("ron: yakuman = %v, want none (shanpon breaks suuankou)", res.Yakuman)
	}

	tsumoCtx := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.South}
	tsumoRes, err := mahjong.Score(h, tsumoCtx, rules)
	if err != nil {
		t.Fatalf("tsumo: Score: %v", err)
	}
	if len(tsumoRes.Yakuman) != 1 || tsumoRes.Yakuman[0].Name != "四暗刻" {
		t.Fatalf("tsumo: yakuman = %v, want 四暗刻", tsumoRes.Yakuman)
	}
}

// spec.md §8: payments.total_received == points.ron when honba and
// kyotaku are both zero.
func TestProperty_PaymentConservationRon(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South, Riichi: true}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Payments.TotalReceived != res.Points.Ron {
		t.Fatalf("total_received = %d, want %d (points.ron)", res.Payments.TotalReceived, res.Points.Ron)
	}
}

// spec.md §8: tsumo dealer total_received == 3 * tsumo_dealer_pay.
func TestProperty_PaymentConservationTsumoDealer(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4m 5m 6m 2p 3p 4p 6s 7s 8s 5p 5p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.East}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Payments.TotalReceived != 3*res.Points.TsumoDealerPay {
		t.Fatalf("total_received = %d, want %d (3x dealer pay)", res.Payments.TotalReceived, 3*res.Points.TsumoDealerPay)
	}
}

// spec.md §8: tsumo non-dealer total_received == tsumo_dealer_pay +
// 2*tsumo_non_dealer_pay.
func TestProperty_PaymentConservationTsumoNonDealer(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4m 5m 6m 2p 3p 4p 6s 7s 8s 5p 5p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Tsumo, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := res.Points.TsumoDealerPay + 2*res.Points.TsumoNonDealerPay
	if res.Payments.TotalReceived != want {
		t.Fatalf("total_received = %d, want %d", res.Payments.TotalReceived, want)
	}
}

// spec.md §8: every payer amount is a multiple of 100.
func TestProperty_RoundingLaw(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South, Riichi: true, Honba: 1, Kyotaku: 1}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Points.Ron%100 != 0 {
		t.Fatalf("points.ron = %d, not a multiple of 100", res.Points.Ron)
	}
	if res.Payments.HandPointsWithHonba%100 != 0 {
		t.Fatalf("hand_points_with_honba = %d, not a multiple of 100", res.Payments.HandPointsWithHonba)
	}
}

// spec.md §8: if yakuman is non-empty, yaku is empty.
func TestProperty_YakumanSuppression(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 9m 9m 1p 9p 1s 9s E S W N P F C"),
		WinTile:     mustOne(t, "9m"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	res, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(res.Yakuman) == 0 {
		t.Fatalf("expected a yakuman hit")
	}
	if len(res.Yaku) != 0 {
		t.Fatalf("yaku = %v, want empty alongside yakuman", res.Yaku)
	}
}

// spec.md §8: adding a dora indicator matching a tile present in the
// hand does not decrease han.
func TestProperty_Monotonicity(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	base := mahjong.ContextInput{
		WinType:        mahjong.Ron,
		RoundWind:      mahjong.East,
		SeatWind:       mahjong.South,
		Riichi:         true,
		DoraIndicators: []mahjong.HandTile{mustOne(t, "4m")},
	}
	withMatch := base
	withMatch.DoraIndicators = []mahjong.HandTile{mustOne(t, "4m"), mustOne(t, "1p")}

	baseRes, err := mahjong.Score(h, base, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score(base): %v", err)
	}
	matchRes, err := mahjong.Score(h, withMatch, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score(withMatch): %v", err)
	}
	if matchRes.Han < baseRes.Han {
		t.Fatalf("han = %d, want >= %d after adding a matching dora indicator", matchRes.Han, baseRes.Han)
	}
}

// spec.md §8: validate accepts iff score does not raise
// not_a_winning_shape.
func TestProperty_ShapeCompleteness(t *testing.T) {
	valid := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	if _, err := mahjong.ValidateHand(valid); err != nil {
		t.Fatalf("ValidateHand(valid): %v", err)
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South}
	if _, err := mahjong.Score(valid, ctx, mahjong.DefaultRuleSet()); err != nil && err.Kind == mahjong.KindNotAWinningShape {
		t.Fatalf("Score(valid) raised %s", mahjong.KindNotAWinningShape)
	}

	invalid := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 4m 5p 6p 7p 1s 3s 5s 7s 9s E E S"),
		WinTile:     mustOne(t, "S"),
	}
	if _, err := mahjong.ValidateHand(invalid); err == nil || err.Kind != mahjong.KindNotAWinningShape {
		t.Fatalf("ValidateHand(invalid) = %v, want %s", err, mahjong.KindNotAWinningShape)
	}
	if _, err := mahjong.Score(invalid, ctx, mahjong.DefaultRuleSet()); err == nil || err.Kind != mahjong.KindNotAWinningShape {
		t.Fatalf("Score(invalid) = %v, want %s", err, mahjong.KindNotAWinningShape)
	}
}

// spec.md §8: identical inputs yield identical outputs.
func TestProperty_Determinism(t *testing.T) {
	h := mahjong.HandInput{
		ClosedTiles: mustTiles(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 2p 2p"),
		WinTile:     mustOne(t, "2p"),
	}
	ctx := mahjong.ContextInput{WinType: mahjong.Ron, RoundWind: mahjong.East, SeatWind: mahjong.South, Riichi: true}
	res1, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score (first): %v", err)
	}
	res2, err := mahjong.Score(h, ctx, mahjong.DefaultRuleSet())
	if err != nil {
		t.Fatalf("Score (second): %v", err)
	}
	if !reflect.DeepEqual(res1, res2) {
		t.Fatalf("Score is not deterministic: %+v vs %+v", res1, res2)
	}
}
