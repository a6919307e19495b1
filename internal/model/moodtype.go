package model

// Mood type IDs. The id space is closed: these eight values are the whole
// reference set, and the seeded mood_types table mirrors them exactly.
const (
	MoodHappy uint = iota + 1
	MoodSad
	MoodNeutral
	MoodAngry
	MoodAnxious
	MoodCalm
	MoodExcited
	MoodConfused
)

// MoodStyle pairs a mood type with its display label and calendar color.
// It is the single mood-to-style mapping; clients render the calendar and
// its legend from this table instead of keeping their own copy.
type MoodStyle struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var moodCatalog = []MoodStyle{
	{ID: MoodHappy, Label: "happy", Color: "#00FF00"},
	{ID: MoodSad, Label: "sad", Color: "#0000FF"},
	{ID: MoodNeutral, Label: "neutral", Color: "#808080"},
	{ID: MoodAngry, Label: "angry", Color: "#FF0000"},
	{ID: MoodAnxious, Label: "anxious", Color: "#FFFF00"},
	{ID: MoodCalm, Label: "calm", Color: "#D3D3D3"},
	{ID: MoodExcited, Label: "excited", Color: "#00FFFF"},
	{ID: MoodConfused, Label: "confused", Color: "#FF00FF"},
}

// MoodCatalog returns the fixed mood reference set in id order.
func MoodCatalog() []MoodStyle {
	catalog := make([]MoodStyle, len(moodCatalog))
	copy(catalog, moodCatalog)
	return catalog
}

// SeedMoodTypes returns the catalog as MoodType rows for migration seeding.
func SeedMoodTypes() []MoodType {
	types := make([]MoodType, 0, len(moodCatalog))
	for _, m := range moodCatalog {
		types = append(types, MoodType{ID: m.ID, Label: m.Label, Code: int(m.ID)})
	}
	return types
}

// ValidMoodType reports whether id belongs to the closed mood type set.
func ValidMoodType(id uint) bool {
	return id >= MoodHappy && id <= MoodConfused
}

// StyleFor looks up the style for a mood type id.
func StyleFor(id uint) (MoodStyle, bool) {
	for _, m := range moodCatalog {
		if m.ID == id {
			return m, true
		}
	}
	return MoodStyle{}, false
}
