package careertest

// recommendations holds exactly four job titles per category.
var recommendations = map[Category][4]string{
	CreativityArt: {
		"Графический дизайнер",
		"Фотограф",
		"Аниматор",
		"Художник-оформитель",
	},
	NatureEcology: {
		"Помощник ветеринара",
		"Флорист",
		"Эколог",
		"Садовник",
	},
	InformationWork: {
		"Программист",
		"Аналитик данных",
		"Бухгалтер",
		"Редактор",
	},
	TechnologyMachinery: {
		"Инженер",
		"Автомеханик",
		"Электрик",
		"Техник-робототехник",
	},
	PeopleWork: {
		"Учитель",
		"Психолог",
		"Менеджер по продажам",
		"Администратор",
	},
}

// Recommend returns the job titles for a category. Unknown categories, for
// example from legacy stored results, yield an empty list.
func Recommend(c Category) []string {
	titles, ok := recommendations[c]
	if !ok {
		return []string{}
	}

	out := make([]string, len(titles))
	copy(out, titles[:])
	return out
}
