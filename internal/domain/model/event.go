// Package model contains domain models passed between layers.
package model

// Category groups events on the listing page.
type Category string

// Event categories. CategoryAll disables category filtering.
const (
	CategoryAll        Category = "All"
	CategoryFlagship   Category = "Flagship"
	CategoryWeb        Category = "Web"
	CategoryAIML       Category = "AI/ML"
	CategorySecurity   Category = "Security"
	CategoryMobile     Category = "Mobile"
	CategoryBlockchain Category = "Blockchain"
)

// Event is a hackathon listed on the site. Date, Time and Capacity are free
// text exactly as shown to visitors.
type Event struct {
	ID               string   `json:"id" koanf:"id"`
	Title            string   `json:"title" koanf:"title"`
	Description      string   `json:"description" koanf:"description"`
	Date             string   `json:"date" koanf:"date"`
	Time             string   `json:"time" koanf:"time"`
	Location         string   `json:"location" koanf:"location"`
	Image            string   `json:"image" koanf:"image"`
	Capacity         string   `json:"capacity" koanf:"capacity"`
	Category         Category `json:"category" koanf:"category"`
	RegistrationOpen bool     `json:"registration_open" koanf:"registration_open"`
	Featured         bool     `json:"featured,omitempty" koanf:"featured"`
}

// Online reports whether the event is hosted remotely.
func (e Event) Online() bool {
	return e.Location == "Online"
}
