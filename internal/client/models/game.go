package models

// Game is the client-side replica of a catalog row. The server owns the
// record: IDs are assigned on create and the *_name fields are denormalized
// labels produced by the serializer, never written by the client.
//
// JSON tags match the wire format of GET /api/games/ exactly.
type Game struct {
	ID           int64  `json:"id"`
	Name         string `json:"game_name"`
	GenreID      int64  `json:"genre"`
	PlatformID   int64  `json:"platform"`
	StoreID      int64  `json:"store"`
	GenreName    string `json:"genre_name"`
	PlatformName string `json:"platform_name"`
	StoreName    string `json:"store_name"`
	Whitelisted  bool   `json:"is_whitelisted"`
}

// LookupEntry is one selectable row of a reference collection
// (genre, platform or store). Immutable once fetched.
type LookupEntry struct {
	ID   int64
	Name string
}
