package careertest

// Stability is the emotional stability tier.
type Stability int

const (
	StabilityLow Stability = iota
	StabilityModerate
	StabilityHigh
)

const (
	highStabilityThreshold     = 40
	moderateStabilityThreshold = 30
)

const (
	highStabilityText = "Высокая стрессоустойчивость: вы сохраняете спокойствие в сложных ситуациях " +
		"и подойдёте для работы с высокой нагрузкой и ответственностью."
	moderateStabilityText = "Средняя стрессоустойчивость: вы в целом справляетесь с нагрузкой, " +
		"но иногда вам нужно время на восстановление. Выбирайте работу с понятным графиком."
	lowStabilityText = "Повышенная чувствительность к стрессу: вам комфортнее в спокойной обстановке " +
		"без спешки и частых конфликтов. Начните с небольшой нагрузки."
)

func (s Stability) String() string {
	switch s {
	case StabilityHigh:
		return "high"
	case StabilityModerate:
		return "moderate"
	default:
		return "low"
	}
}

// Description returns the fixed description text of the tier.
func (s Stability) Description() string {
	switch s {
	case StabilityHigh:
		return highStabilityText
	case StabilityModerate:
		return moderateStabilityText
	default:
		return lowStabilityText
	}
}

// InterpretStability classifies an emotional stability total.
func InterpretStability(total int) Stability {
	switch {
	case total >= highStabilityThreshold:
		return StabilityHigh
	case total >= moderateStabilityThreshold:
		return StabilityModerate
	default:
		return StabilityLow
	}
}
