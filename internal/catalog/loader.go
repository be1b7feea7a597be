// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"encoding/csv"
	"os"

	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/plant"
)

// Sources maps each category to its CSV source path.
type Sources map[plant.Category]string

// Loader reads multi-source CSV catalogs into normalized records.
type Loader struct {
	logger    zerolog.Logger
	imageBase string
}

// NewLoader creates a catalog loader. imageBase is the directory image
// paths are resolved under; empty means DefaultImageBase.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewLoader(logger zerolog.Logger, imageBase string) *Loader {
	return &Loader{
		logger:    logger.With().Str("component", "catalog").Logger(),
		imageBase: imageBase,
	}
}

// Load reads every source file and returns the combined normalized records.
// A source that cannot be read or parsed is logged and skipped at the
// granularity of its category; the remaining categories still load. The
// caller sees an empty contribution for a failed category, never a total
// failure. Categories are loaded in the fixed plant.Categories order so the
// result is deterministic.
func (l *Loader) Load(sources Sources) []plant.Record {
	var records []plant.Record
	for _, category := range plant.Categories {
		path, ok := sources[category]
		if !ok {
			continue
		}

		rows, err := readCSV(path)
		if err != nil {
			l.logger.Warn().
				Str("category", string(category)).
				Str("path", path).
				Err(err).
				Msg("skipping unreadable catalog source")
			continue
		}

		for _, row := range rows {
			records = append(records, NormalizeWithBase(row, category, l.imageBase))
		}

		l.logger.Debug().
			Str("category", string(category)).
			Int("rows", len(rows)).
			Msg("loaded catalog source")
	}
	return records
}

// readCSV parses one source file into raw rows keyed by normalized column
// name. Rows shorter than the header are tolerated; extra cells are
// dropped.
func readCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = NormalizeColumnName(h)
	}

	rows := make([]Row, 0, len(all)-1)
	for _, rec := range all[1:] {
		row := make(Row, len(header))
		for i, v := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
