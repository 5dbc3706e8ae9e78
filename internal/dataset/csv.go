package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/fern-ml/fern/internal/nn"
)

// ParseCSV reads a comma-separated numeric dataset.
//
// An optional header row (detected by the presence of alphabetic
// characters) is skipped. The first data row's column count is
// authoritative; every later row must match it. The last column of each
// row is the scalar target, the remaining columns are the input features.
func ParseCSV(r io.Reader) (*Dataset, error) {
	scanner := bufio.NewScanner(r)

	var inputs, targets [][]float64
	columns := 0
	lineNo := 0
	first := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			if hasAlpha(line) {
				// Header row.
				continue
			}
		}

		fields := strings.Split(line, ",")
		if columns == 0 {
			columns = len(fields)
			if columns < 2 {
				return nil, fmt.Errorf("%w: line %d: need at least one feature and one target column", nn.ErrFormat, lineNo)
			}
		} else if len(fields) != columns {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", nn.ErrFormat, lineNo, len(fields), columns)
		}

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q is not numeric", nn.ErrFormat, lineNo, i+1, field)
			}
			row[i] = v
		}
		inputs = append(inputs, row[:len(row)-1])
		targets = append(targets, row[len(row)-1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return New(inputs, targets)
}

// LoadCSVFile reads a CSV dataset from disk.
func LoadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

func hasAlpha(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
