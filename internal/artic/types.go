// Package artic provides a client for the Art Institute of Chicago artist search API.
package artic

// Artist is a single artist returned by the search endpoint.
type Artist struct {
	ID    int
	Title string
}

// searchResponse is the envelope returned by /artists/search.
type searchResponse struct {
	Data []artistResult `json:"data"`
}

type artistResult struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
