package model

type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (i Identity) IsZero() bool {
	return i.Name == "" && i.Email == ""
}
