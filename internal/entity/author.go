package entity

// Author is a row of the authors table. FirstName may be empty.
type Author struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name" validate:"max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

// FullName joins first and last name with a single space.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
