package model

// Stat is a headline number on the landing page hero.
type Stat struct {
	Value string `json:"value" koanf:"value"`
	Label string `json:"label" koanf:"label"`
}

// Feature is a platform feature card on the landing page.
type Feature struct {
	Title       string `json:"title" koanf:"title"`
	Description string `json:"description" koanf:"description"`
}

// Landing is the static copy of the landing page.
type Landing struct {
	HeroImages []string  `json:"hero_images" koanf:"hero_images"`
	Stats      []Stat    `json:"stats" koanf:"stats"`
	Features   []Feature `json:"features" koanf:"features"`
}
