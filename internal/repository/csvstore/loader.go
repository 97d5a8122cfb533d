package csvstore

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
)

// Well-known header names. Everything else in a row is treated as a numeric
// count column.
const (
	colState    = "state"
	colDistrict = "district"
	colPincode  = "pincode"
	colDate     = "date"
)

// Store loads the master datasets from CSV files on disk. A missing or
// unreadable file degrades to an empty table so one bad dataset never takes
// the whole pipeline down.
type Store struct {
	cfg    config.DataConfig
	logger *zap.Logger
}

func NewStore(cfg config.DataConfig, logger *zap.Logger) repository.DatasetRepository {
	return &Store{cfg: cfg, logger: logger}
}

// LoadTables reads all three datasets. The returned error is always nil; per
// dataset failures are logged and surface as empty tables.
func (s *Store) LoadTables(ctx context.Context) (*domain.Tables, error) {
	tables := &domain.Tables{
		Demographic: s.loadTable(ctx, domain.DatasetDemographic, s.cfg.DemographicFile),
		Biometric:   s.loadTable(ctx, domain.DatasetBiometric, s.cfg.BiometricFile),
		Enrolment:   s.loadTable(ctx, domain.DatasetEnrolment, s.cfg.EnrolmentFile),
	}

	s.logger.Info("datasets loaded",
		zap.Int("demographic_rows", tables.Demographic.Len()),
		zap.Int("biometric_rows", tables.Biometric.Len()),
		zap.Int("enrolment_rows", tables.Enrolment.Len()),
	)
	return tables, nil
}

func (s *Store) loadTable(ctx context.Context, name, file string) *domain.Table {
	table := &domain.Table{Name: name}

	path := filepath.Join(s.cfg.Dir, file)
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("dataset unavailable, using empty table",
			zap.String("dataset", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return table
	}
	defer f.Close()

	rows, err := readRows(ctx, f)
	if err != nil {
		s.logger.Warn("dataset unreadable, using empty table",
			zap.String("dataset", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return table
	}

	table.Rows = rows
	return table
}

// readRows parses a header-keyed CSV. Rows shorter than the header are
// padded, longer ones truncated; malformed numeric cells coerce to 0.
func readRows(ctx context.Context, r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	rows := make([]domain.Record, 0, 1024)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rows = append(rows, parseRow(header, fields))
	}
	return rows, nil
}

func parseRow(header, fields []string) domain.Record {
	record := domain.Record{Counts: make(map[string]float64, len(header))}

	for i, col := range header {
		var value string
		if i < len(fields) {
			value = strings.TrimSpace(fields[i])
		}

		switch col {
		case colState:
			record.State = value
		case colDistrict:
			record.District = value
		case colPincode:
			record.Pincode = value
		case colDate:
			record.Date = value
		default:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				n = 0
			}
			record.Counts[col] = n
		}
	}
	return record
}
