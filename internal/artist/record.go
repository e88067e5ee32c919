// Package artist holds the artist record and the in-memory selection store.
package artist

import "github.com/llehouerou/artpick/internal/artic"

// Record is an artist as shown to the user. ID is the identity; Selected is
// derived from store membership and never comes from the server.
type Record struct {
	ID       int
	Title    string
	Selected bool
}

// FromArtists maps search results to unselected records, preserving order.
func FromArtists(artists []artic.Artist) []Record {
	records := make([]Record, 0, len(artists))
	for _, a := range artists {
		records = append(records, Record{ID: a.ID, Title: a.Title})
	}
	return records
}

// IndexOf returns the position of the record with id, or -1.
func IndexOf(records []Record, id int) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}
	return -1
}
