package models

import "time"

// Question is the row shape of the questions table.
type Question struct {
	ID         int64     `db:"id"`
	Question   string    `db:"question"`
	Answer     string    `db:"answer"`
	Category   int64     `db:"category"`
	Difficulty int       `db:"difficulty"`
	CreatedAt  time.Time `db:"created_at"`
}

// Category is the row shape of the categories table.
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}
