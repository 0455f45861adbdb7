package model

type Seat struct {
	Id         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	IsBooked   bool   `json:"isBooked"`
	IsSelected bool   `json:"isSelected"`
}

func (s Seat) Available() bool {
	return !s.IsBooked && !s.IsSelected
}
