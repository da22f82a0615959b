package infra_tmdb

import (
	"strconv"
	"time"

	"github.com/humanbelnik/cineverse/internal/model"
)

const (
	posterBase   = "https://image.tmdb.org/t/p/w500"
	backdropBase = "https://image.tmdb.org/t/p/original"
	logoBase     = "https://image.tmdb.org/t/p/original"
	youtubeWatch = "https://www.youtube.com/watch?v="

	maxCast    = 10
	maxSimilar = 10
)

type movieDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	Popularity   float64 `json:"popularity"`
}

type pageDTO struct {
	Results []movieDTO `json:"results"`
}

type genresDTO struct {
	Genres []model.Genre `json:"genres"`
}

type castDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

type crewDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type videoDTO struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type detailsDTO struct {
	movieDTO
	Runtime int           `json:"runtime"`
	Tagline string        `json:"tagline"`
	Genres  []model.Genre `json:"genres"`
	Credits struct {
		Cast []castDTO `json:"cast"`
		Crew []crewDTO `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []videoDTO `json:"results"`
	} `json:"videos"`
	Similar pageDTO `json:"similar"`
}

type providerDTO struct {
	ProviderID   int64  `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

type regionDTO struct {
	Link     string        `json:"link"`
	Flatrate []providerDTO `json:"flatrate"`
	Rent     []providerDTO `json:"rent"`
	Buy      []providerDTO `json:"buy"`
}

type providersDTO struct {
	Results map[string]regionDTO `json:"results"`
}

func image(base, path string) string {
	if path == "" {
		return ""
	}
	return base + path
}

// releaseYear returns 0 when the date is missing or malformed.
func releaseYear(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}

func oneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

func (m movieDTO) toDomain() model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Poster:      image(posterBase, m.PosterPath),
		Backdrop:    image(backdropBase, m.BackdropPath),
		Rating:      oneDecimal(m.VoteAverage),
		Year:        releaseYear(m.ReleaseDate),
		Description: m.Overview,
		Popularity:  oneDecimal(m.Popularity),
	}
}

func (p pageDTO) toDomain() []model.Movie {
	movies := make([]model.Movie, 0, len(p.Results))
	for _, m := range p.Results {
		movies = append(movies, m.toDomain())
	}
	return movies
}

func (d detailsDTO) toDomain() model.MovieDetails {
	details := model.MovieDetails{
		Movie:   d.movieDTO.toDomain(),
		Runtime: d.Runtime,
		Tagline: d.Tagline,
		Genres:  d.Genres,
		Cast:    []model.CastMember{},
		Crew:    []model.CrewMember{},
		Similar: d.Similar.toDomain(),
	}
	if details.Genres == nil {
		details.Genres = []model.Genre{}
	}

	for i, c := range d.Credits.Cast {
		if i == maxCast {
			break
		}
		details.Cast = append(details.Cast, model.CastMember{
			ID:        c.ID,
			Name:      c.Name,
			Character: c.Character,
			Photo:     image(posterBase, c.ProfilePath),
		})
	}
	for _, c := range d.Credits.Crew {
		switch c.Job {
		case "Director", "Screenplay", "Writer", "Producer":
			details.Crew = append(details.Crew, model.CrewMember(c))
		}
	}
	for _, v := range d.Videos.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			details.Trailer = youtubeWatch + v.Key
			break
		}
	}
	if len(details.Similar) > maxSimilar {
		details.Similar = details.Similar[:maxSimilar]
	}
	return details
}

func providersToDomain(in []providerDTO) []model.Provider {
	out := make([]model.Provider, 0, len(in))
	for _, p := range in {
		out = append(out, model.Provider{
			ID:   p.ProviderID,
			Name: p.ProviderName,
			Logo: image(logoBase, p.LogoPath),
		})
	}
	return out
}
