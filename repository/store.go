package repository

import (
	"context"
	"strconv"
	"time"
)

// Table names in the backing spreadsheet. Each table is an independent
// sheet; the store offers no cross-table transactions.
const (
	TableCurrency             = "Currency"
	TableItems                = "Items"
	TableUserRoles            = "UserRoles"
	TableEquippedRoles        = "EquippedRoles"
	TableDailyRewards         = "DailyRewards"
	TableCoinflipUsage        = "CoinflipUsage"
	TableLeaderboard          = "Leaderboard"
	TableGiveaways            = "Giveaways"
	TableGiveawayParticipants = "GiveawayParticipants"
	TableGiveawayWinners      = "GiveawayWinners"
)

// Row is a single data row of a table. Index is the row's position in the
// backing sheet and stays valid only until the next structural change.
type Row struct {
	Index  int
	Values []string
}

// Cell returns the i-th cell, or "" when the row is shorter than that.
// Spreadsheet APIs drop trailing empty cells, so short rows are normal.
func (r Row) Cell(i int) string {
	if i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// RowStore is a keyed row store over named tables. Implementations wrap a
// spreadsheet-like backend: reads return whole tables, writes touch one row
// at a time, and nothing is atomic across calls.
type RowStore interface {
	// Rows returns all data rows of a table in sheet order
	Rows(ctx context.Context, table string) ([]Row, error)

	// Append adds a new row at the end of a table
	Append(ctx context.Context, table string, values []string) error

	// Update overwrites the row at the given index
	Update(ctx context.Context, table string, index int, values []string) error

	// Delete removes the row at the given index, shifting later rows up
	Delete(ctx context.Context, table string, index int) error
}

// parseTime reads a stored RFC3339 timestamp. Zero time on garbage: a
// corrupt timestamp cell reads as "long ago" rather than poisoning reads.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func formatInt64(n int64) string {
	return strconv.FormatInt(n, 10)
}
