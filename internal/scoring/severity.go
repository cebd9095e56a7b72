package scoring

import "mindcare/internal/model"

// PHQ9Severity maps a PHQ-9 total (0-27) to its severity band
func PHQ9Severity(score int) model.Severity {
	switch {
	case score <= 4:
		return model.SeverityMinimal
	case score <= 9:
		return model.SeverityMild
	case score <= 14:
		return model.SeverityModerate
	case score <= 19:
		return model.SeverityModeratelySevere
	default:
		return model.SeveritySevere
	}
}

// GAD7Severity maps a GAD-7 total (0-21) to its severity band
func GAD7Severity(score int) model.Severity {
	switch {
	case score <= 4:
		return model.SeverityMinimal
	case score <= 9:
		return model.SeverityMild
	case score <= 14:
		return model.SeverityModerate
	default:
		return model.SeveritySevere
	}
}

// PersonalityFor picks the counselor tone from the combined raw score (0-48)
func PersonalityFor(combined int) model.Personality {
	switch {
	case combined <= 8:
		return model.PersonalityEncouraging
	case combined <= 16:
		return model.PersonalitySupportive
	case combined <= 24:
		return model.PersonalityGentle
	case combined <= 32:
		return model.PersonalityCaring
	default:
		return model.PersonalityCrisis
	}
}
