// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"

	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (a *app) printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderTable lays rows out under headers. Widths are measured on the
// visible text, so styled headers stay aligned with their columns.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func itoa[T int | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func (a *app) printWorn(w io.Writer, rec *models.HistoryRecord, created bool) error {
	if a.output == outputJSON {
		return a.printJSON(w, struct {
			Record  *models.HistoryRecord `json:"record"`
			Created bool                  `json:"created"`
		}{rec, created})
	}
	if created {
		_, err := fmt.Fprintf(w, "Recorded outfit %d worn on %s (history %d)\n", rec.OutfitID, rec.WornDate, rec.ID)
		return err
	}
	_, err := fmt.Fprintf(w, "Outfit %d already recorded on %s (history %d)\n", rec.OutfitID, rec.WornDate, rec.ID)
	return err
}

func (a *app) printRemoved(w io.Writer, rec *models.HistoryRecord) error {
	if a.output == outputJSON {
		return a.printJSON(w, rec)
	}
	_, err := fmt.Fprintf(w, "Removed history %d (outfit %d, %s)\n", rec.ID, rec.OutfitID, rec.WornDate)
	return err
}

func (a *app) printHistory(w io.Writer, records []models.HistoryRecord) error {
	if records == nil {
		records = []models.HistoryRecord{}
	}
	if a.output == outputJSON {
		return a.printJSON(w, records)
	}
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No history records."))
		return err
	}

	rows := make([][]string, len(records))
	for i := range records {
		r := &records[i]
		rows[i] = []string{itoa(r.ID), itoa(r.OutfitID), r.WornDate.String()}
	}
	return renderTable(w, []string{"ID", "OUTFIT", "WORN"}, rows)
}

func (a *app) printRecommendation(w io.Writer, resp *recommend.Response) error {
	if a.output == outputJSON {
		return a.printJSON(w, resp)
	}
	if len(resp.Items) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No outfits match the criteria."))
		return err
	}

	rows := make([][]string, len(resp.Items))
	for i := range resp.Items {
		s := &resp.Items[i]
		rows[i] = []string{
			itoa(i + 1), itoa(s.Outfit.ID), outfitName(&s.Outfit), strconv.FormatFloat(s.Score, 'f', 3, 64),
			itoa(s.Outfit.Rating), itoa(s.Outfit.FormalityLevel), lastWorn(s.Outfit.LastWornDate), s.Breakdown,
		}
	}
	headers := []string{"RANK", "ID", "NAME", "SCORE", "RATING", "FORMALITY", "LAST WORN", "BREAKDOWN"}
	if err := renderTable(w, headers, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d of %d candidates, preset %s, today %s",
		len(resp.Items), resp.TotalCandidates, resp.Metadata.Preset, resp.Metadata.Today)))
	return err
}

func (a *app) printOutfits(w io.Writer, outfits []models.Outfit) error {
	if outfits == nil {
		outfits = []models.Outfit{}
	}
	if a.output == outputJSON {
		return a.printJSON(w, outfits)
	}
	if len(outfits) == 0 {
		_, err := fmt.Fprintln(w, dimStyle.Render("No outfits match the criteria."))
		return err
	}

	rows := make([][]string, len(outfits))
	for i := range outfits {
		o := &outfits[i]
		rows[i] = []string{
			itoa(o.ID), outfitName(o), itoa(o.Rating), itoa(o.FormalityLevel), itoa(o.WornCount), lastWorn(o.LastWornDate),
		}
	}
	return renderTable(w, []string{"ID", "NAME", "RATING", "FORMALITY", "WORN", "LAST WORN"}, rows)
}

func outfitName(o *models.Outfit) string {
	if o.Name == "" {
		return "-"
	}
	return o.Name
}

func lastWorn(d models.Date) string {
	if d.IsZero() {
		return "never"
	}
	return d.String()
}
