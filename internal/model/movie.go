package model

// Movie is the catalog shape every client view consumes.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Poster      string `json:"poster"`
	Backdrop    string `json:"backdrop"`
	Rating      string `json:"rating"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description"`
	Popularity  string `json:"popularity"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CastMember struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Photo     string `json:"photo"`
}

type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type MovieDetails struct {
	Movie
	Runtime int          `json:"runtime"`
	Genres  []Genre      `json:"genres"`
	Tagline string       `json:"tagline,omitempty"`
	Cast    []CastMember `json:"cast"`
	Crew    []CrewMember `json:"crew"`
	Trailer string       `json:"trailer,omitempty"`
	Similar []Movie      `json:"similar"`
}

type Provider struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type WatchProviders struct {
	Link   string     `json:"link,omitempty"`
	Stream []Provider `json:"flatrate"`
	Rent   []Provider `json:"rent"`
	Buy    []Provider `json:"buy"`
	Region string     `json:"region"`
}

// ListKind names a curated catalog listing.
type ListKind string

const (
	ListTrending   ListKind = "trending"
	ListPopular    ListKind = "popular"
	ListTopRated   ListKind = "top_rated"
	ListNowPlaying ListKind = "now_playing"
	ListUpcoming   ListKind = "upcoming"
)
