package snapshot

// collectionDocument is the wire format of a fetched snapshot: a JSON document
// listing every package version the pinned collection provides.
type collectionDocument struct {
	Revision string       `json:"revision"`
	Packages []packageDTO `json:"packages"`
}

// packageDTO is one package entry in a collection document.
type packageDTO struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	ContentHash  string   `json:"content_hash"`
	Dependencies []string `json:"dependencies"`
}
