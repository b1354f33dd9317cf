package mahjong

import "fmt"

// Error kinds, grouped by concern per spec.md §7. Kept as plain strings
// (rather than an enum) so they serialise verbatim into API error bodies
// and CLI output.
const (
	// Input grammar.
	KindInvalidTile          = "invalid_tile"
	KindBadMeldArity         = "bad_meld_arity"
	KindBadTileMultiplicity  = "bad_tile_multiplicity"
	KindWrongTotalTiles      = "wrong_total_tiles"

	// Context conflict.
	KindRiichiDoubleRiichiBoth       = "riichi_double_riichi_both"
	KindIppatsuWithoutRiichi         = "ippatsu_without_riichi"
	KindHaiteiOnRon                  = "haitei_on_ron"
	KindHouteiOnTsumo                = "houtei_on_tsumo"
	KindTenhouRequiresDealerTsumo    = "tenhou_requires_dealer_tsumo"
	KindChiihouRequiresNondealerTsumo = "chiihou_requires_nondealer_tsumo"
	KindTenhouChiihouBoth            = "tenhou_chiihou_both"

	// Shape.
	KindNotAWinningShape = "not_a_winning_shape"

	// Scoring.
	KindNoYaku = "no_yaku"
)

// Sentinel errors for grammar-level tile/meld literal problems that are
// detected before a *ScoringError can be attributed to a hand; mirrors
// runtime/dto/errors.go's grouped sentinel-error style.
var (
	ErrInvalidTileLiteral = fmt.Errorf("mahjong: invalid tile literal")
)

// ScoringError is the single structured failure type the core ever
// returns; every taxonomy entry in spec.md §7 is surfaced this way, never
// as a panic or a bare sentinel.
type ScoringError struct {
	Kind   string
	Detail string
}

func (e *ScoringError) Error() string {
	if e.Detail == "" {
		return "mahjong: " + e.Kind
	}
	return fmt.Sprintf("mahjong: %s: %s", e.Kind, e.Detail)
}

func newErr(kind string, detailFormat string, args ...any) *ScoringError {
	return &ScoringError{Kind: kind, Detail: fmt.Sprintf(detailFormat, args...)}
}
