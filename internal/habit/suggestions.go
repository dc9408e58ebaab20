package habit

// Suggestion 精选习惯建议 / Suggestion is a curated starter habit
type Suggestion struct {
	Title    string
	Category Category
}

var suggestions = []Suggestion{
	{Title: "Morning Meditation", Category: CategoryMorning},
	{Title: "Drink Water", Category: CategoryHealth},
	{Title: "Exercise 30min", Category: CategoryHealth},
	{Title: "Read 20 Pages", Category: CategoryPersonal},
	{Title: "Evening Journal", Category: CategoryEvening},
	{Title: "Deep Work Session", Category: CategoryWork},
}

// Suggestions 返回建议列表副本 / Suggestions returns a copy of the curated list
func Suggestions() []Suggestion {
	return append([]Suggestion(nil), suggestions...)
}
