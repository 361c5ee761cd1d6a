// Package sheetstore backs the repository row store with a Google Sheets
// spreadsheet. Each table is a sheet tab; data rows start at row 2, row 1
// is a header.
package sheetstore

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"shopkeeper/repository"
)

// dataRange covers every data row of a tab. Column Z is comfortably past
// the widest table.
const dataRange = "A2:Z"

// headerOffset converts a zero-based data row index to its 1-based sheet
// row number.
const headerOffset = 2

// Store implements repository.RowStore over the Sheets API
type Store struct {
	service       *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// New creates a store for one spreadsheet, authenticating with service
// account credentials JSON. Token refresh is handled inside the client.
func New(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*Store, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Store{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// Rows returns all data rows of a table in sheet order
func (s *Store) Rows(ctx context.Context, table string) ([]repository.Row, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!%s", table, dataRange)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}

	rows := make([]repository.Row, 0, len(resp.Values))
	for i, raw := range resp.Values {
		values := make([]string, 0, len(raw))
		for _, cell := range raw {
			values = append(values, fmt.Sprint(cell))
		}
		rows = append(rows, repository.Row{Index: i, Values: values})
	}
	return rows, nil
}

// Append adds a new row at the end of a table
func (s *Store) Append(ctx context.Context, table string, values []string) error {
	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!%s", table, dataRange), valueRange(values)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to table %s: %w", table, err)
	}
	return nil
}

// Update overwrites the row at the given index
func (s *Store) Update(ctx context.Context, table string, index int, values []string) error {
	rowNumber := index + headerOffset
	rangeRef := fmt.Sprintf("%s!A%d:Z%d", table, rowNumber, rowNumber)

	_, err := s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, rangeRef, valueRange(values)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update row %d of table %s: %w", index, table, err)
	}
	return nil
}

// Delete removes the row at the given index, shifting later rows up
func (s *Store) Delete(ctx context.Context, table string, index int) error {
	sheetID, err := s.sheetID(ctx, table)
	if err != nil {
		return err
	}

	rowNumber := index + headerOffset
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNumber - 1),
					EndIndex:   int64(rowNumber),
				},
			},
		}},
	}

	_, err = s.service.Spreadsheets.
		BatchUpdate(s.spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete row %d of table %s: %w", index, table, err)
	}
	return nil
}

// sheetID resolves a tab title to its numeric sheet ID. IDs are stable for
// the life of the spreadsheet, so the mapping is fetched once and cached.
func (s *Store) sheetID(ctx context.Context, table string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.sheetIDs[table]; ok {
		return id, nil
	}

	spreadsheet, err := s.service.Spreadsheets.
		Get(s.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}
		s.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
	}
	log.WithField("tabs", len(s.sheetIDs)).Debug("cached sheet ID mapping")

	id, ok := s.sheetIDs[table]
	if !ok {
		return 0, fmt.Errorf("spreadsheet has no tab named %s", table)
	}
	return id, nil
}

func valueRange(values []string) *sheets.ValueRange {
	row := make([]interface{}, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}
	return &sheets.ValueRange{Values: [][]interface{}{row}}
}
