package scoring

// Distance band boundaries (miles, inclusive upper bounds) and scores
const (
	MaxDistanceScore = 20.0

	distanceBandVeryClose = 1.0  // within a mile of the venue
	distanceBandWalkable  = 3.0
	distanceBandModerate  = 5.0
	distanceBandFar       = 10.0

	distanceScoreVeryClose = 20.0
	distanceScoreWalkable  = 15.0
	distanceScoreModerate  = 10.0
	distanceScoreFar       = 5.0
	distanceScoreVeryFar   = 2.0
)

// Dwell band boundaries (seconds, inclusive lower bounds) and scores
const (
	MaxDwellScore = 10.0

	dwellBandExcellent = 60
	dwellBandGood      = 45
	dwellBandModerate  = 30
	dwellBandBrief     = 20

	dwellScoreExcellent = 10.0
	dwellScoreGood      = 8.0
	dwellScoreModerate  = 6.0
	dwellScoreBrief     = 4.0
	dwellScoreRushing   = 2.0
)

// DistanceScore maps a venue-to-zone distance to a 0-20 score.
// Closer zones score higher.
func DistanceScore(miles float64) float64 {
	switch {
	case miles <= distanceBandVeryClose:
		return distanceScoreVeryClose
	case miles <= distanceBandWalkable:
		return distanceScoreWalkable
	case miles <= distanceBandModerate:
		return distanceScoreModerate
	case miles <= distanceBandFar:
		return distanceScoreFar
	default:
		return distanceScoreVeryFar
	}
}

// DwellTimeScore maps a zone's average visitor dwell time to a 0-10
// score. More dwell means more attention on an ad.
func DwellTimeScore(seconds int) float64 {
	switch {
	case seconds >= dwellBandExcellent:
		return dwellScoreExcellent
	case seconds >= dwellBandGood:
		return dwellScoreGood
	case seconds >= dwellBandModerate:
		return dwellScoreModerate
	case seconds >= dwellBandBrief:
		return dwellScoreBrief
	default:
		return dwellScoreRushing
	}
}
