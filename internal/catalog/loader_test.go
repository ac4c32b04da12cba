// Copyright (c) 2026 Faststamps. All rights reserved.

package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faststamps/catalog-api/internal/catalog"
)

const csvHeader = "type_fr;id_yt_no;id_yt_var;title_en;title_fr;color_en;color_fr;value_en;value_fr;description_fr;issued;years;perforated_dimensions;image"

/*
TestParseCSV verifies a well-formed catalogue file loads completely.
*/
func TestParseCSV(t *testing.T) {
	data := csvHeader + "\n" +
		"Poste;1;;Ceres;Cérès.;Yellow bistre;bistre-jaune;10 French centime;10 c.;Papier teinté.;1850;1849-1850;;poste-1.jpg\n" +
		"Poste;1;a;Ceres;Cérès.;Bistre brown;bistre-brun;10 French centime;10 c.;;1850;1849-1850;;poste-1-a.jpg\n"

	stamps, err := catalog.ParseCSV(strings.NewReader(data))

	require.NoError(t, err)
	require.Len(t, stamps, 2)

	base := stamps[0]
	assert.Equal(t, catalog.StampID{Type: "Poste", Number: "1"}, base.ID)
	assert.Equal(t, "stamps/Poste-1", base.URL)
	assert.Equal(t, "Ceres", base.TitleEN)
	assert.Equal(t, "Cérès.", base.TitleFR)
	assert.Equal(t, "Papier teinté.", base.DescriptionFR)
	assert.Equal(t, "1850", base.Issued)
	assert.Equal(t, "poste-1.jpg", base.Image)

	variant := stamps[1]
	assert.Equal(t, "a", variant.ID.Variant)
	assert.Equal(t, "stamps/Poste-1-a", variant.URL)
}

/*
TestParseCSV_ColumnOrderIsFree verifies columns are mapped by header name, not position.
*/
func TestParseCSV_ColumnOrderIsFree(t *testing.T) {
	data := "id_yt_no;type_fr;id_yt_var;title_fr;title_en;color_en;color_fr;value_en;value_fr;description_fr;issued;years;perforated_dimensions;image\n" +
		"18;Taxe;;Chiffre-taxe.;Postage due;Black;noir;10 French centime;10 c.;;1859;1859-1878;;taxe-18.jpg\n"

	stamps, err := catalog.ParseCSV(strings.NewReader(data))

	require.NoError(t, err)
	require.Len(t, stamps, 1)
	assert.Equal(t, catalog.StampID{Type: "Taxe", Number: "18"}, stamps[0].ID)
	assert.Equal(t, "Postage due", stamps[0].TitleEN)
}

/*
TestParseCSV_Failures verifies that any defect fails the whole load.
*/
func TestParseCSV_Failures(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{
			"empty_input",
			"",
			"read header",
		},
		{
			"missing_column",
			"type_fr;id_yt_no;id_yt_var\nPoste;1;\n",
			`missing column "title_en"`,
		},
		{
			"short_row",
			csvHeader + "\nPoste;1\n",
			"line 2",
		},
		{
			"missing_catalogue_number",
			csvHeader + "\nPoste;;;Ceres;Cérès.;;;;;;1850;;;x.jpg\n",
			"line 2",
		},
		{
			"defect_on_later_line",
			csvHeader + "\n" +
				"Poste;1;;Ceres;Cérès.;;;;;;1850;;;x.jpg\n" +
				";2;;Ceres;Cérès.;;;;;;1850;;;y.jpg\n",
			"line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamps, err := catalog.ParseCSV(strings.NewReader(tt.data))

			require.Error(t, err)
			assert.Nil(t, stamps)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

/*
TestLoadCSV_MissingFile verifies a missing catalogue file is reported with its path.
*/
func TestLoadCSV_MissingFile(t *testing.T) {
	stamps, err := catalog.LoadCSV("testdata/does-not-exist.csv")

	require.Error(t, err)
	assert.Nil(t, stamps)
	assert.Contains(t, err.Error(), "does-not-exist.csv")
}
