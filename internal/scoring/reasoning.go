package scoring

import (
	"fmt"
	"strings"

	"github.com/placemint/placemint/internal/models"
)

// Reasoning thresholds, expressed against the component maxima
const (
	audienceExcellentThreshold = 32.0 // 80% of the audience component
	audienceGoodThreshold      = 24.0 // 60%
)

// Reasoning produces the one-sentence plain-language explanation of why
// a zone scored the way it did. It is deterministic for identical
// inputs and never fails; all inputs are already-validated numbers.
func Reasoning(zone models.Zone, audienceMatch, temporalAlignment, distanceMiles float64, dwellSeconds int, event models.EventData) string {
	reasons := make([]string, 0, 4)

	timePeriod := event.TimePeriod
	if timePeriod == "" {
		timePeriod = models.TimePeriodEvening
	}
	if clause := behavioralClause(timePeriod, zone.Name); clause != "" {
		reasons = append(reasons, clause)
	}

	if audienceMatch >= audienceExcellentThreshold {
		reasons = append(reasons, "excellent audience match for your target demographics")
	} else if audienceMatch >= audienceGoodThreshold {
		reasons = append(reasons, "good audience alignment")
	}

	if distanceMiles < 1 {
		reasons = append(reasons, fmt.Sprintf("very close to venue (%.1f mi)", distanceMiles))
	} else if distanceMiles < 3 {
		reasons = append(reasons, fmt.Sprintf("walkable distance (%.1f mi)", distanceMiles))
	}

	if dwellSeconds >= dwellBandGood {
		reasons = append(reasons, fmt.Sprintf("high dwell time (%ds) for ad visibility", dwellSeconds))
	} else if dwellSeconds >= dwellBandModerate {
		reasons = append(reasons, fmt.Sprintf("moderate dwell time (%ds)", dwellSeconds))
	}

	if len(reasons) > 0 {
		reasons[0] = strings.ToUpper(reasons[0][:1]) + reasons[0][1:]
	}

	return fmt.Sprintf("%s: %s.", zone.Name, strings.Join(reasons, ", "))
}
