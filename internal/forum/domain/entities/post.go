package entities

import (
	"errors"
	"time"
)

// ErrPostNotFound возвращается, когда пост не найден.
var ErrPostNotFound = errors.New("post not found")

// Post представляет запись форума.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
