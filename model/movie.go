package model

type Movie struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    string   `json:"duration"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Showtimes   []string `json:"showtimes"`
	Price       int      `json:"price"`
}

func (m Movie) HasShowtime(showtime string) bool {
	if showtime == "" {
		return false
	}
	for _, t := range m.Showtimes {
		if t == showtime {
			return true
		}
	}
	return false
}
