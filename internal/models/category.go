package models

// Category is one of the five fixed event classification tags.
type Category string

const (
	CategorySchoolEvent      Category = "School Event"
	CategoryHoliday          Category = "Holiday"
	CategorySchoolActivity   Category = "School Activity"
	CategorySchoolHomework   Category = "School Homework"
	CategoryPersonalActivity Category = "Personal Activity"
)

// Categories lists all categories in carousel order.
var Categories = []Category{
	CategorySchoolEvent,
	CategoryHoliday,
	CategorySchoolActivity,
	CategorySchoolHomework,
	CategoryPersonalActivity,
}

var categoryColors = map[Category]string{
	CategoryHoliday:          "#5C0505",
	CategorySchoolEvent:      "#052C60",
	CategorySchoolActivity:   "#F0AA00",
	CategorySchoolHomework:   "#054C05",
	CategoryPersonalActivity: "#3A055C",
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display color for the category. Unknown categories fall
// back to the School Event color.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategorySchoolEvent]
}
