package models

import (
	"time"
)

type Book struct {
	Seq        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID         string    `gorm:"size:64;uniqueIndex;not null" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `gorm:"not null;check:page_count >= 0" json:"pageCount"`
	ReadPage   int       `gorm:"not null;check:read_page >= 0" json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `gorm:"not null" json:"insertedAt"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

// BookListItem is the projection returned by list queries.
type BookListItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

func (b Book) ListItem() BookListItem {
	return BookListItem{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}
