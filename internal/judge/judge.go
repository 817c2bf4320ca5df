// Package judge compares a photo analysis against a wave's defeat
// requirements.
package judge

import "github.com/tatianab/snapwave/internal/models"

// Check reports whether the analysis satisfies every requirement, and for
// each unmet requirement returns a shortfall entry carrying the remaining
// count. Each clause is checked independently against the raw bucket count;
// duplicate (color, expression) clauses are not summed.
func Check(analysis *models.PhotoAnalysis, requires []models.EnemyRequirement) (bool, []models.EnemyRequirement) {
	counts := analysis.CountBuckets()
	var missing []models.EnemyRequirement
	for _, req := range requires {
		have := counts[models.Bucket{Color: req.Color, Expression: req.Expression}]
		if have < req.Count {
			missing = append(missing, models.EnemyRequirement{
				Color:      req.Color,
				Expression: req.Expression,
				Count:      req.Count - have,
			})
		}
	}
	return len(missing) == 0, missing
}
