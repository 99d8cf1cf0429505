package types

import "time"

// Response shapes returned by the HTTP boundary. Field names are kept
// compatible with the admin console's expectations; the password hash has no
// field here and can never serialize.

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BannerResponse struct {
	ID        uint      `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovieResponse carries the movie plus the resolved display name of its soft
// category reference; CategoryTitle is empty when the reference dangles.
type MovieResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Poster        string    `json:"poster,omitempty"`
	YoutubeLink   string    `json:"youtubeLink"`
	UploadLink    string    `json:"uploadLink"`
	Status        string    `json:"status"`
	Category      string    `json:"category"`
	CategoryTitle string    `json:"categoryTitle,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
