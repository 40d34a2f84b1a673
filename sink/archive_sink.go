package sink

import (
	"context"
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
)

// ArchiveSink stores a GameRecord each time a started game comes to an end.
// Lobbies closed before the first card are not archived.
type ArchiveSink struct {
	archive contract.IGameArchive
	log     *slog.Logger
}

func NewArchiveSink(archive contract.IGameArchive, log *slog.Logger) ArchiveSink {
	return ArchiveSink{archive: archive, log: log}
}

func (a ArchiveSink) Consume(ctx context.Context, e event.DomainEvent) error {
	record, ok := toRecord(e)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.archive.Store(record); err != nil {
		a.log.Error("Unable to archive game", "game_code", record.Code, "error", err)
		return err
	}
	a.log.Debug("Game archived", "game_code", record.Code, "reason", record.Reason)
	return nil
}

func toRecord(e event.DomainEvent) (domain.GameRecord, bool) {
	switch evt := e.(type) {
	case event.GameWon:
		return domain.GameRecord{
			Code:       evt.Code.Value(),
			Winner:     evt.Winner.Nickname.Value(),
			Reason:     domain.ReasonWon,
			Standings:  evt.Standings,
			FinishedAt: evt.At,
		}, true
	case event.GameEnded:
		return domain.GameRecord{
			Code:       evt.Code.Value(),
			Reason:     evt.Reason,
			Standings:  evt.Standings,
			FinishedAt: evt.At,
		}, true
	case event.PlayerLeft:
		if !evt.GameEnded || evt.PreviousPhase != domain.PhasePlaying {
			return domain.GameRecord{}, false
		}
		return domain.GameRecord{
			Code:       evt.Code.Value(),
			Reason:     domain.ReasonAbandoned,
			Standings:  evt.Standings,
			FinishedAt: evt.At,
		}, true
	case event.SessionExpired:
		if evt.Phase != domain.PhasePlaying {
			return domain.GameRecord{}, false
		}
		return domain.GameRecord{
			Code:       evt.Code.Value(),
			Reason:     domain.ReasonExpired,
			Standings:  evt.Standings,
			FinishedAt: evt.At,
		}, true
	default:
		return domain.GameRecord{}, false
	}
}
