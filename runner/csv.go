package runner

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// writeCSV writes header and rows to path.
func (r *Runner) writeCSV(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "runner: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "runner: close %s", path)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errors.Wrapf(err, "runner: write %s", path)
	}
	if err := w.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "runner: write %s", path)
	}
	fmt.Fprintf(r.out, "\nResults saved to %s\n", path)

	return nil
}
