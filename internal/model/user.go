package model

// User is a full record in the read-only end-user directory.
type User struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Age     int    `json:"age" db:"age"`
	Gender  string `json:"gender" db:"gender"`
	Country string `json:"country" db:"country"`
	City    string `json:"city" db:"city"`
	Company string `json:"company" db:"company"`
}

// UserSummary is the list projection: just enough to render a directory row.
type UserSummary struct {
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// UserDetail is the single-user projection served by the detail endpoint.
type UserDetail struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	City    string `json:"city"`
	Company string `json:"company"`
}

// UserProfile is the search projection: the full profile minus the id.
type UserProfile struct {
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Age     int    `json:"age" db:"age"`
	Gender  string `json:"gender" db:"gender"`
	Country string `json:"country" db:"country"`
	City    string `json:"city" db:"city"`
	Company string `json:"company" db:"company"`
}

// Detail returns the detail projection of a full user record.
func (u *User) Detail() UserDetail {
	return UserDetail{
		Name:    u.Name,
		Email:   u.Email,
		Country: u.Country,
		City:    u.City,
		Company: u.Company,
	}
}
