package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"songster/domain"
	"songster/repositories"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Prints the finished games stored by the server, newest first.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	limit := flag.Int("limit", 50, "Number of games to print, 0 for all")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	records, err := repositories.NewGameArchive(db, logs.GetLoggerFromLevel(slog.LevelError)).Recent(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "Finished at", "Reason", "Winner", "Standings"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		table.Append([]string{
			record.Code,
			record.FinishedAt.Format("2006-01-02 15:04:05"),
			record.Reason,
			record.Winner,
			formatStandings(record.Standings),
		})
	}
	table.Render()
	fmt.Printf("\n%d game(s)\n", len(records))
}

func formatStandings(standings []domain.Standing) string {
	parts := make([]string, 0, len(standings))
	for _, s := range standings {
		parts = append(parts, fmt.Sprintf("%s:%d", s.Nickname, s.Cards))
	}
	return strings.Join(parts, " ")
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
