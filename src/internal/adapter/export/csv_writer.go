package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/api-sage/binary-finance/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.HistoryExporter = (*CSVWriter)(nil)

// CSVWriter writes transaction history to <username>_transactions.csv in dir,
// replacing any earlier export for the same user.
type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) *CSVWriter {
	if dir == "" {
		dir = "."
	}
	return &CSVWriter{dir: dir}
}

func FileName(username string) string {
	return username + "_transactions.csv"
}

func (w *CSVWriter) Write(username string, rows [][]string) (path string, err error) {
	path = filepath.Join(w.dir, FileName(username))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	if err := csv.NewWriter(file).WriteAll(rows); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
