package store

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// CSVSource reads the reference dataset from a csv file with a header row.
// Column names are matched case-insensitively, extra columns are ignored.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) (*schema.Dataset, error) {
	const op = "load csv dataset"

	records, err := ReadRecordsFile(s.path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	log.WithFields(logrus.Fields{"file": s.path, "rows": len(records)}).Info("reference dataset read")
	return schema.NewDataset(records)
}

// ReadRecordsFile opens a csv file and parses its records
func ReadRecordsFile(path string) ([]schema.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, schema.NewError(schema.ErrLoad, "open csv dataset", err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadRecords parses reference records from csv
func ReadRecords(r io.Reader) ([]schema.Record, error) {
	const op = "read csv dataset"

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, schema.Errorf(schema.ErrData, op, "missing header")
		}
		return nil, schema.NewError(schema.ErrLoad, op, err)
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := append(append([]string{}, schema.FeatureColumns...), schema.LabelColumn)
	indexes := make([]int, len(columns))
	for i, name := range columns {
		pos, ok := positions[name]
		if !ok {
			return nil, schema.Errorf(schema.ErrData, op, "missing column %s", name)
		}
		indexes[i] = pos
	}

	records := make([]schema.Record, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, schema.NewError(schema.ErrData, op, err)
		}

		values := make([]float64, len(columns))
		for i, idx := range indexes {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, schema.Errorf(schema.ErrData, op, "line %d column %s: %s", line, columns[i], err)
			}
			values[i] = v
		}

		label := values[len(values)-1]
		if label != math.Trunc(label) {
			return nil, schema.Errorf(schema.ErrData, op, "line %d: label %v is not an integer", line, label)
		}

		records = append(records, schema.Record{
			Gender:            values[0],
			Age:               values[1],
			Hypertension:      values[2],
			HeartDisease:      values[3],
			SmokingHistory:    values[4],
			BMI:               values[5],
			HbA1cLevel:        values[6],
			BloodGlucoseLevel: values[7],
			Diabetes:          int(label),
		})
	}

	return records, nil
}
