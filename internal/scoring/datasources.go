package scoring

import (
	"strings"

	"github.com/placemint/placemint/internal/models"
)

// baseDataDate is the last-refreshed date of the bundled zone dataset.
// It is a property of the data snapshot, not the wall clock, so the
// transparency output stays deterministic.
const baseDataDate = "2026-02-10"

// DataSources derives the transparency records for a zone: which data
// sources were consulted and whether they applied. Detection is
// heuristic over the zone's own fields, never fetched externally.
func DataSources(zone models.Zone) []models.DataSource {
	sources := make([]models.DataSource, 0, 4)

	name := strings.ToLower(zone.Name)
	if strings.Contains(name, "metro") {
		lineInfo := "high confidence"
		if strings.Contains(name, "orange") {
			lineInfo = "Orange Line, high confidence"
		} else if strings.Contains(name, "blue") {
			lineInfo = "Blue/Orange/Silver Lines, high confidence"
		}
		sources = append(sources, models.DataSource{
			Name:        "Metro transit schedules",
			Status:      models.SourceDetected,
			Details:     "Transit access [" + lineInfo + "]",
			LastUpdated: baseDataDate,
		})
	} else {
		sources = append(sources, models.DataSource{
			Name:        "Metro transit schedules",
			Status:      models.SourceNotDetected,
			Details:     "No direct Metro access",
			LastUpdated: baseDataDate,
		})
	}

	if zone.FootTrafficDaily != nil {
		sources = append(sources, models.DataSource{
			Name:        "City open data (foot traffic)",
			Status:      models.SourceDetected,
			Details:     "Daily foot traffic patterns monitored",
			LastUpdated: baseDataDate,
		})
	}

	if len(zone.TimingWindows.Optimal) > 0 {
		sources = append(sources, models.DataSource{
			Name:        "Behavioral timing patterns",
			Status:      models.SourceDetected,
			Details:     "Optimal windows identified for target audience",
			LastUpdated: baseDataDate,
		})
	}

	sources = append(sources, models.DataSource{
		Name:        "Event permits database",
		Status:      models.SourceNotDetected,
		Details:     "No competing events detected",
		LastUpdated: baseDataDate,
	})

	return sources
}
