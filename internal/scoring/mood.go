package scoring

import (
	"math"

	"mindcare/internal/model"
)

// MoodPercentages derives the six mood percentages from the raw scale totals.
// Values are rounded to whole percentages and clamped to [0,100].
func MoodPercentages(phq9Score, gad7Score int) map[model.Mood]int {
	depression := float64(phq9Score) / model.PHQ9MaxScore * 100
	anxiety := float64(gad7Score) / model.GAD7MaxScore * 100
	combined := float64(phq9Score+gad7Score) / model.CombinedMaxScore * 100

	return map[model.Mood]int{
		model.MoodHappy:     percent(100 - combined),
		model.MoodCalm:      percent(100 - anxiety),
		model.MoodSad:       percent(depression * 0.7),
		model.MoodStressed:  percent(anxiety),
		model.MoodAnxious:   percent(anxiety * 0.8),
		model.MoodDepressed: percent(depression),
	}
}

// Dominant returns the mood with the highest percentage; the earliest mood in
// model.Moods wins a tie.
func Dominant(moods map[model.Mood]int) model.DominantMood {
	best := model.DominantMood{Mood: model.Moods[0], Percentage: moods[model.Moods[0]]}
	for _, m := range model.Moods[1:] {
		if moods[m] > best.Percentage {
			best = model.DominantMood{Mood: m, Percentage: moods[m]}
		}
	}
	return best
}

// WellnessScore is the inverse of the combined score as a whole percentage
func WellnessScore(phq9Score, gad7Score int) int {
	return percent(100 - float64(phq9Score+gad7Score)/model.CombinedMaxScore*100)
}

func percent(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
