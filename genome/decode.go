package genome

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. Decode failures reject the whole genome; the caller decides
// whether to fail the batch.
var (
	ErrTruncated      = errors.New("genome: buffer truncated")
	ErrUnknownVersion = errors.New("genome: unknown format version")
	ErrBadOffset      = errors.New("genome: section offset out of range")
)

const headerSize = 36

// Format versions. Version 1 predates tableau modes and betting: those
// setup fields decode to their zero values (tableau mode NONE, no chips).
const (
	FormatV1 uint32 = 1
	FormatV2 uint32 = 2
)

// Decode parses a compiled genome buffer into an immutable Genome.
// Decoding is pure: it never mutates the input and has no side effects.
// The version selects the parsing path; unrecognized versions fail fast
// rather than risk a silent misparse.
func Decode(buf []byte) (*Genome, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d for header", ErrTruncated, len(buf), headerSize)
	}

	g := &Genome{
		Version:     binary.BigEndian.Uint32(buf[0:4]),
		ID:          binary.BigEndian.Uint64(buf[4:12]),
		PlayerCount: int(binary.BigEndian.Uint32(buf[12:16])),
		TurnLimit:   int(binary.BigEndian.Uint32(buf[16:20])),
	}

	if g.Version != FormatV1 && g.Version != FormatV2 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, g.Version)
	}
	if g.TurnLimit <= 0 {
		g.TurnLimit = DefaultTurnLimit
	}

	setupOff := int32(binary.BigEndian.Uint32(buf[20:24]))
	phasesOff := int32(binary.BigEndian.Uint32(buf[24:28]))
	winOff := int32(binary.BigEndian.Uint32(buf[28:32]))
	scoringOff := int32(binary.BigEndian.Uint32(buf[32:36]))

	if err := g.decodeSetup(buf, setupOff); err != nil {
		return nil, err
	}
	if err := g.decodePhases(buf, phasesOff); err != nil {
		return nil, err
	}
	if err := g.decodeWinConditions(buf, winOff); err != nil {
		return nil, err
	}
	if err := g.decodeScoring(buf, scoringOff); err != nil {
		return nil, err
	}

	return g, nil
}

func sectionStart(buf []byte, off int32) (int, error) {
	if off < 0 {
		return -1, nil // section absent
	}
	if int(off) < headerSize || int(off) >= len(buf) {
		return 0, fmt.Errorf("%w: %d", ErrBadOffset, off)
	}
	return int(off), nil
}

func (g *Genome) decodeSetup(buf []byte, off int32) error {
	pos, err := sectionStart(buf, off)
	if err != nil || pos < 0 {
		return err
	}

	if pos+8 > len(buf) {
		return fmt.Errorf("%w: setup section", ErrTruncated)
	}
	g.Setup.CardsPerPlayer = int(binary.BigEndian.Uint32(buf[pos : pos+4]))
	g.Setup.DealToTableau = int(binary.BigEndian.Uint32(buf[pos+4 : pos+8]))

	if g.Version == FormatV1 {
		return nil // v1 setup ends here; tableau/betting fields default
	}

	if pos+16 > len(buf) {
		return fmt.Errorf("%w: setup section v2", ErrTruncated)
	}
	g.Setup.StartingChips = int(binary.BigEndian.Uint32(buf[pos+8 : pos+12]))
	g.Setup.TableauMode = TableauMode(buf[pos+12])
	g.Setup.SequenceDirection = SequenceDirection(buf[pos+13])
	g.Setup.TableauPiles = int(buf[pos+14])
	g.Setup.WarTieRule = WarTieRule(buf[pos+15])
	return nil
}

func (g *Genome) decodePhases(buf []byte, off int32) error {
	pos, err := sectionStart(buf, off)
	if err != nil || pos < 0 {
		return err
	}

	if pos+4 > len(buf) {
		return fmt.Errorf("%w: phase count", ErrTruncated)
	}
	count := int(binary.BigEndian.Uint32(buf[pos : pos+4]))
	pos += 4

	g.Phases = make([]Phase, 0, count)
	for i := 0; i < count; i++ {
		if pos >= len(buf) {
			return fmt.Errorf("%w: phase %d", ErrTruncated, i)
		}
		kind := PhaseKind(buf[pos])
		pos++

		var phase Phase
		var n int
		switch kind {
		case KindDraw:
			phase, n, err = decodeDrawPhase(buf[pos:])
		case KindPlay:
			phase, n, err = decodePlayPhase(buf[pos:])
		case KindDiscard:
			phase, n, err = decodeDiscardPhase(buf[pos:])
		case KindBetting:
			phase, n, err = decodeBettingPhase(buf[pos:])
		case KindClaim:
			phase, n = &ClaimPhase{}, 1 // one reserved byte
			if pos+1 > len(buf) {
				err = ErrTruncated
			}
		default:
			return fmt.Errorf("genome: unknown phase kind %d at phase %d", kind, i)
		}
		if err != nil {
			return fmt.Errorf("phase %d: %w", i, err)
		}
		g.Phases = append(g.Phases, phase)
		pos += n
	}
	return nil
}

func decodeDrawPhase(b []byte) (*DrawPhase, int, error) {
	if len(b) < 4 {
		return nil, 0, ErrTruncated
	}
	p := &DrawPhase{
		Source:    Location(b[0]),
		Count:     int(b[1]),
		Mandatory: b[2] == 1,
	}
	n := 4
	if b[3] == 1 {
		cond, cn, err := decodeCondition(b[4:])
		if err != nil {
			return nil, 0, err
		}
		p.Condition = cond
		n += cn
	}
	return p, n, nil
}

func decodePlayPhase(b []byte) (*PlayPhase, int, error) {
	if len(b) < 4 {
		return nil, 0, ErrTruncated
	}
	p := &PlayPhase{
		Target:       Location(b[0]),
		Mandatory:    b[1] == 1,
		PassIfUnable: b[2] == 1,
	}
	n := 4
	if b[3] == 1 {
		cond, cn, err := decodeCondition(b[4:])
		if err != nil {
			return nil, 0, err
		}
		p.Condition = cond
		n += cn
	}
	return p, n, nil
}

func decodeDiscardPhase(b []byte) (*DiscardPhase, int, error) {
	if len(b) < 3 {
		return nil, 0, ErrTruncated
	}
	return &DiscardPhase{
		Target:    Location(b[0]),
		Count:     int(b[1]),
		Mandatory: b[2] == 1,
	}, 3, nil
}

func decodeBettingPhase(b []byte) (*BettingPhase, int, error) {
	if len(b) < 5 {
		return nil, 0, ErrTruncated
	}
	return &BettingPhase{
		MinBet:    int(binary.BigEndian.Uint32(b[0:4])),
		MaxRaises: int(b[4]),
	}, 5, nil
}

// decodeCondition reads one condition, recursing for compound forms.
// Simple conditions are 7 bytes: kind, operator, value (i32), ref.
// Compound conditions are kind, child count, then each child.
// Unknown predicate kinds decode structurally; evaluation treats them
// as false so future-schema genomes degrade instead of crashing.
func decodeCondition(b []byte) (*Condition, int, error) {
	if len(b) < 1 {
		return nil, 0, ErrTruncated
	}
	kind := CondKind(b[0])

	if kind == CondAnd || kind == CondOr {
		if len(b) < 2 {
			return nil, 0, ErrTruncated
		}
		count := int(b[1])
		cond := &Condition{Kind: kind, Children: make([]Condition, 0, count)}
		pos := 2
		for i := 0; i < count; i++ {
			child, n, err := decodeCondition(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			cond.Children = append(cond.Children, *child)
			pos += n
		}
		return cond, pos, nil
	}

	if len(b) < 7 {
		return nil, 0, ErrTruncated
	}
	return &Condition{
		Kind:  kind,
		Op:    Operator(b[1]),
		Value: int32(binary.BigEndian.Uint32(b[2:6])),
		Ref:   b[6],
	}, 7, nil
}

func (g *Genome) decodeWinConditions(buf []byte, off int32) error {
	pos, err := sectionStart(buf, off)
	if err != nil || pos < 0 {
		return err
	}

	if pos+4 > len(buf) {
		return fmt.Errorf("%w: win condition count", ErrTruncated)
	}
	count := int(binary.BigEndian.Uint32(buf[pos : pos+4]))
	pos += 4

	g.WinConditions = make([]WinCondition, 0, count)
	for i := 0; i < count; i++ {
		if pos+6 > len(buf) {
			return fmt.Errorf("%w: win condition %d", ErrTruncated, i)
		}
		g.WinConditions = append(g.WinConditions, WinCondition{
			Type:      WinType(buf[pos]),
			Threshold: int32(binary.BigEndian.Uint32(buf[pos+1 : pos+5])),
			Direction: Direction(buf[pos+5]),
		})
		pos += 6
	}
	return nil
}

func (g *Genome) decodeScoring(buf []byte, off int32) error {
	pos, err := sectionStart(buf, off)
	if err != nil || pos < 0 {
		return err
	}

	if pos+4 > len(buf) {
		return fmt.Errorf("%w: scoring count", ErrTruncated)
	}
	count := int(binary.BigEndian.Uint32(buf[pos : pos+4]))
	pos += 4

	g.Scoring = make([]ScoringRule, 0, count)
	for i := 0; i < count; i++ {
		if pos+5 > len(buf) {
			return fmt.Errorf("%w: scoring rule %d", ErrTruncated, i)
		}
		g.Scoring = append(g.Scoring, ScoringRule{
			Suit:    buf[pos],
			Rank:    buf[pos+1],
			Points:  int16(binary.BigEndian.Uint16(buf[pos+2 : pos+4])),
			Trigger: ScoringTrigger(buf[pos+4]),
		})
		pos += 5
	}

	if g.Version == FormatV1 {
		return nil // effects introduced in v2
	}

	if pos+4 > len(buf) {
		return fmt.Errorf("%w: effect count", ErrTruncated)
	}
	ecount := int(binary.BigEndian.Uint32(buf[pos : pos+4]))
	pos += 4

	g.Effects = make([]Effect, 0, ecount)
	for i := 0; i < ecount; i++ {
		if pos+4 > len(buf) {
			return fmt.Errorf("%w: effect %d", ErrTruncated, i)
		}
		g.Effects = append(g.Effects, Effect{
			TriggerRank: buf[pos],
			Type:        EffectType(buf[pos+1]),
			Target:      EffectTarget(buf[pos+2]),
			Value:       buf[pos+3],
		})
		pos += 4
	}
	return nil
}
