package repository

import (
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
)

// SeedData returns sample books for a demo collection.
func SeedData(now time.Time) []model.Book {
	books := []model.Book{
		{
			ID:        "go-programming-language",
			Name:      "The Go Programming Language",
			Year:      2015,
			Author:    "Alan A. A. Donovan",
			Summary:   "Idiomatic Go from the ground up.",
			Publisher: "Addison-Wesley",
			PageCount: 380,
			ReadPage:  380,
			Reading:   false,
		},
		{
			ID:        "concurrency-in-go",
			Name:      "Concurrency in Go",
			Year:      2017,
			Author:    "Katherine Cox-Buday",
			Summary:   "Tools and techniques for developers.",
			Publisher: "O'Reilly Media",
			PageCount: 238,
			ReadPage:  120,
			Reading:   true,
		},
	}
	for i := range books {
		books[i].Finished = books[i].ReadPage == books[i].PageCount
		books[i].InsertedAt = now
		books[i].UpdatedAt = now
	}
	return books
}
