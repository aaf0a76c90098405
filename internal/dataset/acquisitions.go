package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/transition-cli/internal/model"
	"github.com/sells-group/transition-cli/internal/timeline"
)

// ReadAcquisitions loads the acquisition dataset from a CSV or XLSX file.
// Expected columns (case-insensitive): aid, target_full, acquirer_full,
// date. Rows missing a subject ID, a company name or a parseable date are
// skipped with a warning.
func ReadAcquisitions(ctx context.Context, path, charset string) ([]model.AcquisitionEvent, error) {
	var (
		rows   [][]string
		header []string
		err    error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, header, err = readXLSXRows(path)
	} else {
		rows, header, err = readCSVRows(ctx, path, charset)
	}
	if err != nil {
		return nil, err
	}

	idx := headerIndex(header)
	for _, col := range []string{"aid", "target_full", "acquirer_full", "date"} {
		if _, ok := idx[col]; !ok {
			return nil, eris.Errorf("acquisitions: missing column %q in %s", col, path)
		}
	}

	events := make([]model.AcquisitionEvent, 0, len(rows))
	for i, row := range rows {
		ev, err := parseAcquisitionRow(row, idx)
		if err != nil {
			zap.L().Warn("skipping acquisition row",
				zap.Int("row", i+2),
				zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	zap.L().Info("loaded acquisitions",
		zap.String("file", path),
		zap.Int("events", len(events)))
	return events, nil
}

func parseAcquisitionRow(row []string, idx map[string]int) (model.AcquisitionEvent, error) {
	id, err := strconv.ParseInt(cell(row, idx, "aid"), 10, 64)
	if err != nil {
		return model.AcquisitionEvent{}, eris.Wrap(err, "acquisitions: parse aid")
	}
	acquiree := cell(row, idx, "target_full")
	acquirer := cell(row, idx, "acquirer_full")
	if acquiree == "" || acquirer == "" {
		return model.AcquisitionEvent{}, eris.New("acquisitions: empty company name")
	}
	date, err := timeline.ParseAcquisitionDate(cell(row, idx, "date"))
	if err != nil {
		return model.AcquisitionEvent{}, err
	}
	return model.AcquisitionEvent{
		SubjectID:    id,
		AcquireeName: acquiree,
		AcquirerName: acquirer,
		Date:         date,
	}, nil
}

func readCSVRows(ctx context.Context, path, charset string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrap(err, "dataset: open file")
	}
	defer f.Close()

	headerCh := make(chan []string, 1)
	rowCh, errCh := StreamCSV(ctx, f, CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		Charset:   charset,
		TrimSpace: true,
	})

	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	if err := <-errCh; err != nil {
		return nil, nil, err
	}

	var header []string
	select {
	case header = <-headerCh:
	default:
		return nil, nil, eris.Errorf("dataset: %s has no header row", path)
	}
	return rows, header, nil
}

func readXLSXRows(path string) ([][]string, []string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, nil, eris.Wrap(err, "dataset: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, nil, eris.Errorf("dataset: %s has no sheets", path)
	}

	var (
		header []string
		rows   [][]string
	)
	for i, row := range f.Sheets[0].Rows {
		cells := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = c.String()
		}
		if i == 0 {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}
	if header == nil {
		return nil, nil, eris.Errorf("dataset: %s has no header row", path)
	}
	return rows, header, nil
}
