// Package httpapi implements POST /v1/score, GET /v1/results/:id,
// POST /v1/score/feedback, GET /v1/rulesets/:name and GET /healthz on top of github.com/gin-gonic/gin, styled after
// common/http/server.go's HttpServer wrapper and middleware set. The
// wire-level DTOs here mirror internal/mahjong's types with json tags and
// convert to/from the core types at the boundary; internal/mahjong never
// imports this package.
package httpapi

import (
	"fmt"

	"riichiscore/internal/mahjong"
)

// MeldDTO is the wire shape of a declared meld.
type MeldDTO struct {
	Kind  string   `json:"kind"`
	Tiles []string `json:"tiles"`
	Open  bool     `json:"open"`
}

// HandDTO is the wire shape of HandInput.
type HandDTO struct {
	ClosedTiles []string  `json:"closedTiles"`
	Melds       []MeldDTO `json:"melds"`
	WinTile     string    `json:"winTile"`
}

// ContextDTO is the wire shape of ContextInput.
type ContextDTO struct {
	WinType           string   `json:"winType"`
	RoundWind         string   `json:"roundWind"`
	SeatWind          string   `json:"seatWind"`
	Riichi            bool     `json:"riichi"`
	DoubleRiichi      bool     `json:"doubleRiichi"`
	Ippatsu           bool     `json:"ippatsu"`
	Haitei            bool     `json:"haitei"`
	Houtei            bool     `json:"houtei"`
	Rinshan           bool     `json:"rinshan"`
	Chankan           bool     `json:"chankan"`
	Tenhou            bool     `json:"tenhou"`
	Chiihou           bool     `json:"chiihou"`
	DoraIndicators    []string `json:"doraIndicators"`
	UraDoraIndicators []string `json:"uraDoraIndicators"`
	AkaDoraCount      int      `json:"akaDoraCount"`
	Honba             int      `json:"honba"`
	Kyotaku           int      `json:"kyotaku"`
}

// RuleSetDTO is the wire shape of RuleSet.
type RuleSetDTO struct {
	AkaAri           bool `json:"akaAri"`
	KuitanAri        bool `json:"kuitanAri"`
	DoubleYakumanAri bool `json:"doubleYakumanAri"`
	KazoeYakumanAri  bool `json:"kazoeYakumanAri"`
	RenpuFu          int  `json:"renpuFu"`
}

// ScoreRequest is the POST /v1/score request body.
type ScoreRequest struct {
	Hand    HandDTO     `json:"hand"`
	Context ContextDTO  `json:"context"`
	Rules   *RuleSetDTO `json:"rules,omitempty"`
}

var meldKindByName = map[string]mahjong.MeldKind{
	"chi":   mahjong.Chi,
	"pon":   mahjong.Pon,
	"kan":   mahjong.Kan,
	"ankan": mahjong.Ankan,
	"kakan": mahjong.Kakan,
}

var winTypeByName = map[string]mahjong.WinType{
	"ron":   mahjong.Ron,
	"tsumo": mahjong.Tsumo,
}

func parseTiles(lits []string) ([]mahjong.HandTile, error) {
	out := make([]mahjong.HandTile, 0, len(lits))
	for _, l := range lits {
		ht, err := mahjong.ParseHandTile(l)
		if err != nil {
			return nil, err
		}
		out = append(out, ht)
	}
	return out, nil
}

func (d HandDTO) toCore() (mahjong.HandInput, error) {
	closed, err := parseTiles(d.ClosedTiles)
	if err != nil {
		return mahjong.HandInput{}, err
	}
	win, err := mahjong.ParseHandTile(d.WinTile)
	if err != nil {
		return mahjong.HandInput{}, err
	}
	melds := make([]mahjong.Meld, 0, len(d.Melds))
	for _, m := range d.Melds {
		kind, ok := meldKindByName[m.Kind]
		if !ok {
			return mahjong.HandInput{}, fmt.Errorf("%w: meld kind %q", mahjong.ErrInvalidTileLiteral, m.Kind)
		}
		tiles, err := parseTiles(m.Tiles)
		if err != nil {
			return mahjong.HandInput{}, err
		}
		melds = append(melds, mahjong.Meld{Kind: kind, Tiles: tiles, Open: m.Open})
	}
	return mahjong.HandInput{ClosedTiles: closed, Melds: melds, WinTile: win}, nil
}

func (d ContextDTO) toCore() (mahjong.ContextInput, error) {
	winType, ok := winTypeByName[d.WinType]
	if !ok {
		return mahjong.ContextInput{}, fmt.Errorf("%w: win type %q", mahjong.ErrInvalidTileLiteral, d.WinType)
	}
	roundWind, _, err := mahjong.ParseTile(d.RoundWind)
	if err != nil {
		return mahjong.ContextInput{}, err
	}
	seatWind, _, err := mahjong.ParseTile(d.SeatWind)
	if err != nil {
		return mahjong.ContextInput{}, err
	}
	dora, err := parseTiles(d.DoraIndicators)
	if err != nil {
		return mahjong.ContextInput{}, err
	}
	ura, err := parseTiles(d.UraDoraIndicators)
	if err != nil {
		return mahjong.ContextInput{}, err
	}
	return mahjong.ContextInput{
		WinType:           winType,
		RoundWind:         roundWind,
		SeatWind:          seatWind,
		Riichi:            d.Riichi,
		DoubleRiichi:      d.DoubleRiichi,
		Ippatsu:           d.Ippatsu,
		Haitei:            d.Haitei,
		Houtei:            d.Houtei,
		Rinshan:           d.Rinshan,
		Chankan:           d.Chankan,
		Tenhou:            d.Tenhou,
		Chiihou:           d.Chiihou,
		DoraIndicators:    dora,
		UraDoraIndicators: ura,
		AkaDoraCount:      d.AkaDoraCount,
		Honba:             d.Honba,
		Kyotaku:           d.Kyotaku,
	}, nil
}

func (d RuleSetDTO) toCore() mahjong.RuleSet {
	return mahjong.RuleSet{
		AkaAri:           d.AkaAri,
		KuitanAri:        d.KuitanAri,
		DoubleYakumanAri: d.DoubleYakumanAri,
		KazoeYakumanAri:  d.KazoeYakumanAri,
		RenpuFu:          d.RenpuFu,
	}
}

func rulesetFromCore(r mahjong.RuleSet) RuleSetDTO {
	return RuleSetDTO{
		AkaAri:           r.AkaAri,
		KuitanAri:        r.KuitanAri,
		DoubleYakumanAri: r.DoubleYakumanAri,
		KazoeYakumanAri:  r.KazoeYakumanAri,
		RenpuFu:          r.RenpuFu,
	}
}

// ToCore converts the request into the three core inputs, defaulting
// Rules to mahjong.DefaultRuleSet when omitted.
func (r ScoreRequest) ToCore() (mahjong.HandInput, mahjong.ContextInput, mahjong.RuleSet, error) {
	hand, err := r.Hand.toCore()
	if err != nil {
		return mahjong.HandInput{}, mahjong.ContextInput{}, mahjong.RuleSet{}, err
	}
	ctx, err := r.Context.toCore()
	if err != nil {
		return mahjong.HandInput{}, mahjong.ContextInput{}, mahjong.RuleSet{}, err
	}
	rules := mahjong.DefaultRuleSet()
	if r.Rules != nil {
		rules = r.Rules.toCore()
	}
	return hand, ctx, rules, nil
}

// YakuDTO is the wire shape of one ordinary yaku hit.
type YakuDTO struct {
	Name string `json:"name"`
	Han  int    `json:"han"`
}

// YakumanDTO is the wire shape of one yakuman hit.
type YakumanDTO struct {
	Name       string `json:"name"`
	Multiplier int    `json:"multiplier"`
}

// DoraDTO is the wire shape of DoraTally.
type DoraDTO struct {
	Dora    int `json:"dora"`
	AkaDora int `json:"akaDora"`
	UraDora int `json:"uraDora"`
}

// PointsDTO is the wire shape of Points.
type PointsDTO struct {
	Ron               int `json:"ron"`
	TsumoDealerPay    int `json:"tsumoDealerPay"`
	TsumoNonDealerPay int `json:"tsumoNonDealerPay"`
}

// PaymentsDTO is the wire shape of Payments.
type PaymentsDTO struct {
	HandPointsReceived  int `json:"handPointsReceived"`
	HandPointsWithHonba int `json:"handPointsWithHonba"`
	HonbaBonus          int `json:"honbaBonus"`
	KyotakuBonus        int `json:"kyotakuBonus"`
	TotalReceived       int `json:"totalReceived"`
}

// ScoreResponse is the POST /v1/score success body and GET
// /v1/results/:id body.
type ScoreResponse struct {
	ResultID    string       `json:"resultId,omitempty"`
	Han         int          `json:"han"`
	Fu          int          `json:"fu"`
	Yaku        []YakuDTO    `json:"yaku"`
	Yakuman     []YakumanDTO `json:"yakuman"`
	Dora        DoraDTO      `json:"dora"`
	PointLabel  string       `json:"pointLabel"`
	Points      PointsDTO    `json:"points"`
	Payments    PaymentsDTO  `json:"payments"`
	Explanation string       `json:"explanation"`
}

func ScoreResponseFromCore(r *mahjong.ScoreResult) ScoreResponse {
	yaku := make([]YakuDTO, 0, len(r.Yaku))
	for _, y := range r.Yaku {
		yaku = append(yaku, YakuDTO{Name: y.Name, Han: y.Han})
	}
	yakuman := make([]YakumanDTO, 0, len(r.Yakuman))
	for _, y := range r.Yakuman {
		yakuman = append(yakuman, YakumanDTO{Name: y.Name, Multiplier: y.Multiplier})
	}
	return ScoreResponse{
		Han:     r.Han,
		Fu:      r.Fu,
		Yaku:    yaku,
		Yakuman: yakuman,
		Dora: DoraDTO{
			Dora:    r.Dora.Dora,
			AkaDora: r.Dora.AkaDora,
			UraDora: r.Dora.UraDora,
		},
		PointLabel: string(r.PointLabel),
		Points: PointsDTO{
			Ron:               r.Points.Ron,
			TsumoDealerPay:    r.Points.TsumoDealerPay,
			TsumoNonDealerPay: r.Points.TsumoNonDealerPay,
		},
		Payments: PaymentsDTO{
			HandPointsReceived:  r.Payments.HandPointsReceived,
			HandPointsWithHonba: r.Payments.HandPointsWithHonba,
			HonbaBonus:          r.Payments.HonbaBonus,
			KyotakuBonus:        r.Payments.KyotakuBonus,
			TotalReceived:       r.Payments.TotalReceived,
		},
		Explanation: r.Explanation,
	}
}

// ErrorResponse is the error body for 4xx responses.
type ErrorResponse struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// FeedbackRequest is the POST /v1/score/feedback request body.
type FeedbackRequest struct {
	ResultID string `json:"resultId"`
	Comment  string `json:"comment"`
}

// FeedbackResponse is the POST /v1/score/feedback success body.
type FeedbackResponse struct {
	Status string `json:"status"`
}
