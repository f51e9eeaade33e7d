package user

import "time"

// Projection is the public view of an API user. The key hash has no place
// here under any circumstances.
type Projection struct {
	APIID   string    `json:"api_id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
}

type UpdateRequest struct {
	APIID   string         `json:"api_id"`
	Updates map[string]any `json:"updates"`
}

type DeleteRequest struct {
	APIID string `json:"api_id"`
}
