// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvColumns are the header names every catalogue CSV file must carry.
// The file is semicolon-delimited; column order is free.
var csvColumns = []string{
	"type_fr",
	"id_yt_no",
	"id_yt_var",
	"title_en",
	"title_fr",
	"color_en",
	"color_fr",
	"value_en",
	"value_fr",
	"description_fr",
	"issued",
	"years",
	"perforated_dimensions",
	"image",
}

// LoadCSV reads the full catalogue from a semicolon-delimited CSV file.
//
// Loading is all-or-nothing: any unreadable file, missing column, or
// malformed row fails the load so the service never starts against a
// partial catalogue.
func LoadCSV(path string) ([]*Stamp, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer file.Close()

	stamps, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return stamps, nil
}

// ParseCSV parses catalogue records from semicolon-delimited CSV data.
func ParseCSV(reader io.Reader) ([]*Stamp, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = ';'

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range csvColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var stamps []*Stamp
	for line := 2; ; line++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The csv reader rejects rows whose field count differs
			// from the header's.
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		field := func(name string) string { return row[columns[name]] }

		id := StampID{
			Type:    field("type_fr"),
			Number:  field("id_yt_no"),
			Variant: field("id_yt_var"),
		}
		if id.Type == "" || id.Number == "" {
			return nil, fmt.Errorf("line %d: record is missing its type or catalogue number", line)
		}

		stamps = append(stamps, &Stamp{
			ID:                   id,
			URL:                  "stamps/" + id.String(),
			TitleEN:              field("title_en"),
			TitleFR:              field("title_fr"),
			ColorEN:              field("color_en"),
			ColorFR:              field("color_fr"),
			ValueEN:              field("value_en"),
			ValueFR:              field("value_fr"),
			DescriptionFR:        field("description_fr"),
			Issued:               field("issued"),
			Years:                field("years"),
			PerforatedDimensions: field("perforated_dimensions"),
			Image:                field("image"),
		})
	}

	return stamps, nil
}
