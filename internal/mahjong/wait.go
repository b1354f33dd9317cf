package mahjong

// WaitKind classifies how the winning tile completes its group, per
// spec.md §4.4/glossary.
type WaitKind int

const (
	WaitRyanmen WaitKind = iota
	WaitKanchan
	WaitPenchan
	WaitTanki
	WaitShanpon
)

// Attach is one feasible way the winning tile completes partition p: a
// group (or the pair) it belongs to, plus the resulting wait shape. Only
// groups built from the closed decomposition are eligible attachment
// points, since declared melds (chi/pon/kan/ankan) are already complete
// before the winning tile arrives, with the sole exception of chankan,
// which spec.md treats as a yaku flag rather than a change to the
// winner's own shape.
func attachPoints(p Partition, win Tile) []Attach {
	var out []Attach

	if p.Pair == win {
		out = append(out, Attach{PairWait: true, GroupIdx: -1, Wait: WaitTanki})
	}

	shanpon := p.Pair != win
	for i, g := range p.Groups {
		if g.Open || g.Kind == GroupKan {
			continue
		}
		switch g.Kind {
		case GroupTriplet:
			if g.Tile == win {
				if shanpon {
					out = append(out, Attach{GroupIdx: i, Wait: WaitShanpon})
				}
			}
		case GroupSequence:
			switch win {
			case g.Tile:
				if g.Tile.Number() == 7 {
					out = append(out, Attach{GroupIdx: i, Wait: WaitPenchan})
				} else {
					out = append(out, Attach{GroupIdx: i, Wait: WaitRyanmen})
				}
			case g.Tile + 1:
				out = append(out, Attach{GroupIdx: i, Wait: WaitKanchan})
			case g.Tile + 2:
				if g.Tile.Number() == 1 {
					out = append(out, Attach{GroupIdx: i, Wait: WaitPenchan})
				} else {
					out = append(out, Attach{GroupIdx: i, Wait: WaitRyanmen})
				}
			}
		}
	}
	return out
}

// Attach identifies one feasible attachment of the winning tile.
type Attach struct {
	PairWait bool
	GroupIdx int
	Wait     WaitKind
}

// ronCompletesGroup reports whether attach a, under a ron win, is a
// triplet completed by the winning tile (shanpon, the case spec.md
// §4.3/§4.4 treats as "open" for both fu-doubling and sanankou purposes),
// even though the group was otherwise built from concealed tiles.
func ronCompletesGroup(p Partition, a Attach, winType WinType) bool {
	if winType != Ron {
		return false
	}
	if a.PairWait || a.GroupIdx < 0 {
		return false
	}
	g := p.Groups[a.GroupIdx]
	return g.Kind == GroupTriplet && a.Wait == WaitShanpon
}
