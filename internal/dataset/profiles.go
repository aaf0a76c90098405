package dataset

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/transition-cli/internal/model"
)

// ReadProfiles loads the extracted-profiles CSV and groups its rows by
// subject ID. Expected columns (case-insensitive): author_id,
// employee_name, linkedinlink, company_name, company_url, role, timeframe,
// location. Rows without a numeric author_id are skipped with a warning;
// empty employer names are kept so the inspector can flag them.
func ReadProfiles(ctx context.Context, path, charset string) (map[int64][]model.EmploymentRecord, error) {
	rows, header, err := readCSVRows(ctx, path, charset)
	if err != nil {
		return nil, err
	}

	idx := headerIndex(header)
	for _, col := range []string{"author_id", "company_name", "timeframe"} {
		if _, ok := idx[col]; !ok {
			return nil, eris.Errorf("profiles: missing column %q in %s", col, path)
		}
	}

	profiles := make(map[int64][]model.EmploymentRecord)
	var total int
	for i, row := range rows {
		id, err := strconv.ParseInt(cell(row, idx, "author_id"), 10, 64)
		if err != nil {
			zap.L().Warn("skipping profile row without numeric author_id",
				zap.Int("row", i+2))
			continue
		}
		profiles[id] = append(profiles[id], model.EmploymentRecord{
			SubjectID:    id,
			EmployeeName: cell(row, idx, "employee_name"),
			ProfileURL:   cell(row, idx, "linkedinlink"),
			EmployerName: cell(row, idx, "company_name"),
			EmployerURL:  cell(row, idx, "company_url"),
			RoleTitle:    cell(row, idx, "role"),
			Timeframe:    cell(row, idx, "timeframe"),
			Location:     cell(row, idx, "location"),
		})
		total++
	}
	zap.L().Info("loaded profiles",
		zap.String("file", path),
		zap.Int("subjects", len(profiles)),
		zap.Int("records", total))
	return profiles, nil
}
