package repositories

import (
	"fmt"
	"log/slog"
	"songster/domain"
	"songster/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	archivePrefix = "game:"
	// Highest 19-digit padded timestamp, used to seek from the newest key.
	maxPaddedTimestamp = "9999999999999999999"
)

// GameArchive keeps a summary of every finished game in BadgerDB.
type GameArchive struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGameArchive(db *badger.DB, log *slog.Logger) *GameArchive {
	return &GameArchive{db: db, log: log}
}

// OpenBadger opens the database at path, or an in-memory one when path is empty.
func OpenBadger(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		options = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	return badger.Open(options)
}

// ArchiveKey is formatted as "game:{timestamp_padded}:{code}" so that keys sort
// chronologically (19-digit zero padding) and two games finishing in the same
// nanosecond still get distinct keys.
func ArchiveKey(record domain.GameRecord) string {
	return fmt.Sprintf("%s%019d:%s", archivePrefix, record.FinishedAt.UnixNano(), record.Code)
}

func (a *GameArchive) Store(record domain.GameRecord) error {
	if a.db.IsClosed() {
		return errors.ErrArchiveClosed
	}
	value := EncodeRecord(record)
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(ArchiveKey(record)), value)
	})
}

// Recent returns up to limit records, newest first. A limit <= 0 returns everything.
func (a *GameArchive) Recent(limit int) ([]domain.GameRecord, error) {
	if a.db.IsClosed() {
		return nil, errors.ErrArchiveClosed
	}
	var records []domain.GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte(archivePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek([]byte(archivePrefix + maxPaddedTimestamp)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				break
			}
			item := it.Item()
			err := item.Value(func(value []byte) error {
				record, err := DecodeRecord(value)
				if err != nil {
					return fmt.Errorf("key %s: %w", item.Key(), err)
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
