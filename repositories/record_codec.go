package repositories

import (
	"fmt"
	"songster/domain"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Archived records are stored in protobuf wire format:
//
//	1: code (string)
//	2: winner (string)
//	3: reason (string)
//	4: standings (repeated message { 1: nickname, 2: cards })
//	5: finished_at (unix nanoseconds)
const (
	fieldCode       protowire.Number = 1
	fieldWinner     protowire.Number = 2
	fieldReason     protowire.Number = 3
	fieldStandings  protowire.Number = 4
	fieldFinishedAt protowire.Number = 5

	fieldNickname protowire.Number = 1
	fieldCards    protowire.Number = 2
)

func EncodeRecord(record domain.GameRecord) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldCode, protowire.BytesType)
	b = protowire.AppendString(b, record.Code)
	if record.Winner != "" {
		b = protowire.AppendTag(b, fieldWinner, protowire.BytesType)
		b = protowire.AppendString(b, record.Winner)
	}
	b = protowire.AppendTag(b, fieldReason, protowire.BytesType)
	b = protowire.AppendString(b, record.Reason)
	for _, s := range record.Standings {
		var sb []byte
		sb = protowire.AppendTag(sb, fieldNickname, protowire.BytesType)
		sb = protowire.AppendString(sb, s.Nickname)
		sb = protowire.AppendTag(sb, fieldCards, protowire.VarintType)
		sb = protowire.AppendVarint(sb, uint64(s.Cards))
		b = protowire.AppendTag(b, fieldStandings, protowire.BytesType)
		b = protowire.AppendBytes(b, sb)
	}
	b = protowire.AppendTag(b, fieldFinishedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(record.FinishedAt.UnixNano()))
	return b
}

func DecodeRecord(b []byte) (domain.GameRecord, error) {
	var record domain.GameRecord
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.GameRecord{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldCode && typ == protowire.BytesType:
			record.Code, n = protowire.ConsumeString(b)
		case num == fieldWinner && typ == protowire.BytesType:
			record.Winner, n = protowire.ConsumeString(b)
		case num == fieldReason && typ == protowire.BytesType:
			record.Reason, n = protowire.ConsumeString(b)
		case num == fieldStandings && typ == protowire.BytesType:
			var raw []byte
			raw, n = protowire.ConsumeBytes(b)
			if n >= 0 {
				standing, err := decodeStanding(raw)
				if err != nil {
					return domain.GameRecord{}, err
				}
				record.Standings = append(record.Standings, standing)
			}
		case num == fieldFinishedAt && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			record.FinishedAt = time.Unix(0, int64(v)).UTC()
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return domain.GameRecord{}, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return record, nil
}

func decodeStanding(b []byte) (domain.Standing, error) {
	var standing domain.Standing
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return domain.Standing{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldNickname && typ == protowire.BytesType:
			standing.Nickname, n = protowire.ConsumeString(b)
		case num == fieldCards && typ == protowire.VarintType:
			var v uint64
			v, n = protowire.ConsumeVarint(b)
			standing.Cards = int(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return domain.Standing{}, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return standing, nil
}
