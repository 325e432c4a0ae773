package model

import (
	"strings"
	"time"
)

type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (b Book) Summarize() BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}

type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

// BookInput is the payload of create and update. All checks run in the
// service, after the lookup on update.
type BookInput struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount" validate:"gte=0"`
	ReadPage  int    `json:"readPage" validate:"gte=0"`
	Reading   bool   `json:"reading"`
}

// BookFilter fields are ANDed; nil means no constraint.
type BookFilter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

func (f BookFilter) Match(b Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	return true
}

type EventType string

const (
	EventBookCreated EventType = "book.created"
	EventBookUpdated EventType = "book.updated"
	EventBookDeleted EventType = "book.deleted"
)

type BookEvent struct {
	Type       EventType `json:"type"`
	BookID     string    `json:"bookId"`
	Book       *Book     `json:"book,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
