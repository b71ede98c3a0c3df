package models

// User represents a registered customer account. The password hash never
// leaves the service; it has no JSON tag on purpose.
type User struct {
	Entity
	Email        string `json:"email" gorm:"type:varchar(255);index"`
	FirstName    string `json:"first_name" gorm:"type:varchar(100)"`
	LastName     string `json:"last_name" gorm:"type:varchar(100)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
}
