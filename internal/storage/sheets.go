package storage

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// SheetsStore is the remote tabular store: one worksheet inside a Google
// spreadsheet, reached through a service account. The connection is
// established once at process start; there is no reconnect.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	timeout       time.Duration
}

// ConnectSheets authenticates with the service-account JSON key, opens
// the spreadsheet and finds or creates the named worksheet. Any failure
// leaves the process on the CSV fallback for its lifetime.
func ConnectSheets(ctx context.Context, credsFile, spreadsheetID, sheetName string, timeout time.Duration) (*SheetsStore, error) {
	creds, err := os.ReadFile(credsFile)
	if err != nil {
		return nil, fmt.Errorf("sheets: read credentials: %w", err)
	}
	jwtCfg, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope, sheets.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}

	s := &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		timeout:       timeout,
	}

	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	doc, err := svc.Spreadsheets.Get(spreadsheetID).Context(callCtx).Do()
	if err != nil {
		return nil, classifyRemote(err)
	}

	found := false
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			found = true
			break
		}
	}
	if !found {
		if err := s.addWorksheet(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SheetsStore) addWorksheet(ctx context.Context) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: s.sheetName},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(callCtx).Do(); err != nil {
		return classifyRemote(err)
	}
	return nil
}

// EnsureInitialized reads row 1 and overwrites it with the canonical
// header when it is absent or differs. Row 1 is never treated as data.
func (s *SheetsStore) EnsureInitialized(ctx context.Context) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	headerRange := fmt.Sprintf("%s!A1:%s1", s.sheetName, columnLetter(len(model.RecordColumns)-1))
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(callCtx).Do()
	if err != nil {
		return classifyRemote(err)
	}

	if len(resp.Values) > 0 && slices.Equal(toStrings(resp.Values[0]), model.RecordColumns) {
		return nil
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(model.RecordColumns)}}
	updateCtx, cancelUpdate := s.callContext(ctx)
	defer cancelUpdate()
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, headerRange, vr).
		ValueInputOption("RAW").
		Context(updateCtx).
		Do()
	if err != nil {
		return classifyRemote(err)
	}
	return nil
}

// Append adds one row after the last row of the worksheet.
func (s *SheetsStore) Append(ctx context.Context, rec model.Record) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	vr := &sheets.ValueRange{Values: [][]interface{}{toInterfaces(rec)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(callCtx).
		Do()
	if err != nil {
		return classifyRemote(err)
	}
	return nil
}

// ListColumn reads one full column below the header row.
func (s *SheetsStore) ListColumn(ctx context.Context, col int) ([]string, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	letter := columnLetter(col)
	readRange := fmt.Sprintf("%s!%s2:%s", s.sheetName, letter, letter)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(callCtx).Do()
	if err != nil {
		return nil, classifyRemote(err)
	}

	var out []string
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if v, ok := row[0].(string); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *SheetsStore) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// columnLetter maps a zero-based column index to its A1 letter. The
// canonical layout has seven columns, so single letters suffice.
func columnLetter(col int) string {
	return string(rune('A' + col))
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func toStrings(row []interface{}) []string {
	out := make([]string, 0, len(row))
	for _, v := range row {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
