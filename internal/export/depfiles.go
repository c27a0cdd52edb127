package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DepartmentFile is one per-departement intermediate read back for merging.
type DepartmentFile struct {
	Department string
	Records    []map[string]string
}

func departmentFileName(source, dept string) string {
	return fmt.Sprintf("%s_dep_%s.csv", source, dept)
}

// AppendDepartmentCSV appends rows to dir/<source>_dep_<dept>.csv, writing
// the header only when the file is created. Re-running a scrape for a
// departement therefore extends its file rather than clobbering it.
func AppendDepartmentCSV(dir, source, dept string, header []string, rows [][]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, departmentFileName(source, dept))

	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if fresh {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadDepartmentFiles reads every dir/<source>_dep_*.csv back as header-keyed
// records. The departement code comes from the file name, so "2A"/"2B" and
// overseas codes come back exactly as they were written. Files are returned
// in name order for deterministic merges.
func LoadDepartmentFiles(dir, source string) ([]DepartmentFile, error) {
	pattern := filepath.Join(dir, departmentFileName(source, "*"))
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	out := make([]DepartmentFile, 0, len(paths))
	for _, path := range paths {
		base := filepath.Base(path)
		dept := strings.TrimSuffix(strings.TrimPrefix(base, source+"_dep_"), ".csv")

		records, err := readRecords(path)
		if err != nil {
			return nil, fmt.Errorf("export: read %s: %w", path, err)
		}
		out = append(out, DepartmentFile{Department: dept, Records: records})
	}
	return out, nil
}

func readRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []map[string]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
