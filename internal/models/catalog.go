package models

import "time"

// BookCondition is the stored condition enum for catalog items.
type BookCondition string

const (
	ConditionNew  BookCondition = "NEW"
	ConditionUsed BookCondition = "USED"
)

// Course groups books by programme.
type Course struct {
	ID          string `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description,omitempty"`
}

// Book is a catalog item.
type Book struct {
	ID        string        `db:"id" json:"id"`
	Title     string        `db:"title" json:"title"`
	ISBN      string        `db:"isbn" json:"isbn"`
	Condition BookCondition `db:"condition" json:"condition"`
	Price     int           `db:"price" json:"price"`
	CourseID  *string       `db:"course_id" json:"course_id,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// CatalogBook is the denormalized read-side projection served to clients:
// book joined with its course plus derived condition fields.
type CatalogBook struct {
	ID         string   `db:"id" json:"id"`
	Code       string   `db:"code" json:"code"`
	Title      string   `db:"title" json:"title"`
	Course     string   `db:"course" json:"course"`
	ISBN       string   `db:"isbn" json:"isbn"`
	Price      int      `db:"price" json:"price"`
	IsUsed     bool     `db:"is_used" json:"isUsed"`
	Condition  string   `db:"condition" json:"condition"`
	StockZones []string `db:"-" json:"stockZones"`
}

// Stock is the quantity of a book held at a zone.
type Stock struct {
	ID       string `db:"id" json:"id"`
	BookID   string `db:"book_id" json:"book_id"`
	ZoneID   string `db:"zone_id" json:"zone_id"`
	Quantity int    `db:"quantity" json:"quantity"`
}
