package domain

import "time"

// Review is a service rating (1-4 stars) with an optional free-text comment,
// relayed to the review channel and persisted for statistics.
type Review struct {
	ID          int64  `json:"id"`
	RequesterID int64  `json:"requester_id"`
	Username    string `json:"username"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	CreatedOn   time.Time `json:"created_on"`
}
