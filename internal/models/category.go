package models

// Category groups products. It is an aggregate root: deleting a category
// removes its products with it.
type Category struct {
	Entity
	Name     string    `json:"name" gorm:"type:varchar(100)"`
	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}
