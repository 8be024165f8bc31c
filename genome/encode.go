package genome

import "encoding/binary"

// Encode serializes a Genome into the versioned binary format understood by
// Decode. The genome compiler produces the same layout; this encoder exists
// for seed genomes and tests.
func (g *Genome) Encode() []byte {
	version := g.Version
	if version == 0 {
		version = FormatV2
	}

	setup := encodeSetup(&g.Setup, version)
	phases := encodePhases(g.Phases)
	wins := encodeWinConditions(g.WinConditions)
	scoring := encodeScoring(g.Scoring, g.Effects, version)

	buf := make([]byte, headerSize, headerSize+len(setup)+len(phases)+len(wins)+len(scoring))

	binary.BigEndian.PutUint32(buf[0:4], version)
	binary.BigEndian.PutUint64(buf[4:12], g.ID)
	binary.BigEndian.PutUint32(buf[12:16], uint32(g.PlayerCount))
	binary.BigEndian.PutUint32(buf[16:20], uint32(g.TurnLimit))

	off := headerSize
	binary.BigEndian.PutUint32(buf[20:24], uint32(off))
	off += len(setup)
	binary.BigEndian.PutUint32(buf[24:28], uint32(off))
	off += len(phases)
	binary.BigEndian.PutUint32(buf[28:32], uint32(off))
	off += len(wins)
	binary.BigEndian.PutUint32(buf[32:36], uint32(off))

	buf = append(buf, setup...)
	buf = append(buf, phases...)
	buf = append(buf, wins...)
	buf = append(buf, scoring...)
	return buf
}

func encodeSetup(s *Setup, version uint32) []byte {
	b := make([]byte, 0, 16)
	b = appendUint32(b, uint32(s.CardsPerPlayer))
	b = appendUint32(b, uint32(s.DealToTableau))
	if version == FormatV1 {
		return b
	}
	b = appendUint32(b, uint32(s.StartingChips))
	b = append(b, byte(s.TableauMode), byte(s.SequenceDirection), byte(s.TableauPiles), byte(s.WarTieRule))
	return b
}

func encodePhases(phases []Phase) []byte {
	b := appendUint32(nil, uint32(len(phases)))
	for _, phase := range phases {
		b = append(b, byte(phase.Kind()))
		switch p := phase.(type) {
		case *DrawPhase:
			b = append(b, byte(p.Source), byte(p.Count), boolByte(p.Mandatory), boolByte(p.Condition != nil))
			if p.Condition != nil {
				b = encodeCondition(b, p.Condition)
			}
		case *PlayPhase:
			b = append(b, byte(p.Target), boolByte(p.Mandatory), boolByte(p.PassIfUnable), boolByte(p.Condition != nil))
			if p.Condition != nil {
				b = encodeCondition(b, p.Condition)
			}
		case *DiscardPhase:
			b = append(b, byte(p.Target), byte(p.Count), boolByte(p.Mandatory))
		case *BettingPhase:
			b = appendUint32(b, uint32(p.MinBet))
			b = append(b, byte(p.MaxRaises))
		case *ClaimPhase:
			b = append(b, 0) // reserved
		}
	}
	return b
}

func encodeCondition(b []byte, c *Condition) []byte {
	if c.Kind == CondAnd || c.Kind == CondOr {
		b = append(b, byte(c.Kind), byte(len(c.Children)))
		for i := range c.Children {
			b = encodeCondition(b, &c.Children[i])
		}
		return b
	}
	b = append(b, byte(c.Kind), byte(c.Op))
	b = appendUint32(b, uint32(c.Value))
	return append(b, c.Ref)
}

func encodeWinConditions(wins []WinCondition) []byte {
	b := appendUint32(nil, uint32(len(wins)))
	for _, wc := range wins {
		b = append(b, byte(wc.Type))
		b = appendUint32(b, uint32(wc.Threshold))
		b = append(b, byte(wc.Direction))
	}
	return b
}

func encodeScoring(rules []ScoringRule, effects []Effect, version uint32) []byte {
	b := appendUint32(nil, uint32(len(rules)))
	for _, r := range rules {
		b = append(b, r.Suit, r.Rank, byte(uint16(r.Points)>>8), byte(uint16(r.Points)), byte(r.Trigger))
	}
	if version == FormatV1 {
		return b
	}
	b = appendUint32(b, uint32(len(effects)))
	for _, e := range effects {
		b = append(b, e.TriggerRank, byte(e.Type), byte(e.Target), e.Value)
	}
	return b
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
