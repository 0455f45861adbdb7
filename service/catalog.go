package service

import (
	"cinemax-cli/model"
)

var defaultMovies = []model.Movie{
	{
		Id:          1,
		Title:       "The Dark Knight",
		Genre:       "Action, Drama",
		Duration:    "2h 32min",
		Rating:      9.0,
		Image:       "https://images.pexels.com/photos/7991579/pexels-photo-7991579.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests.",
		Showtimes:   []string{"10:00 AM", "2:30 PM", "6:00 PM", "9:30 PM"},
		Price:       12,
	},
	{
		Id:          2,
		Title:       "Inception",
		Genre:       "Sci-Fi, Thriller",
		Duration:    "2h 28min",
		Rating:      8.8,
		Image:       "https://images.pexels.com/photos/7991471/pexels-photo-7991471.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea.",
		Showtimes:   []string{"11:00 AM", "3:00 PM", "7:00 PM", "10:00 PM"},
		Price:       14,
	},
	{
		Id:          3,
		Title:       "Interstellar",
		Genre:       "Sci-Fi, Drama",
		Duration:    "2h 49min",
		Rating:      8.6,
		Image:       "https://images.pexels.com/photos/7991456/pexels-photo-7991456.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		Showtimes:   []string{"1:00 PM", "4:30 PM", "8:00 PM"},
		Price:       15,
	},
	{
		Id:          4,
		Title:       "Dune",
		Genre:       "Sci-Fi, Adventure",
		Duration:    "2h 35min",
		Rating:      8.0,
		Image:       "https://images.pexels.com/photos/7991408/pexels-photo-7991408.jpeg?auto=compress&cs=tinysrgb&w=800",
		Description: "Paul Atreides, a brilliant and gifted young man born into a great destiny beyond his understanding, must travel to the most dangerous planet.",
		Showtimes:   []string{"12:00 PM", "3:30 PM", "7:30 PM", "10:30 PM"},
		Price:       16,
	},
}

// Catalog is the read-only movie feed. It is loaded once and never mutated.
type Catalog struct {
	movies []model.Movie
	byID   map[int]int
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return NewCatalogFrom(defaultMovies)
}

// NewCatalogFrom builds a catalog from the given movies. The slice is copied.
func NewCatalogFrom(movies []model.Movie) *Catalog {
	c := &Catalog{
		movies: make([]model.Movie, 0, len(movies)),
		byID:   make(map[int]int, len(movies)),
	}
	for _, movie := range movies {
		if _, dup := c.byID[movie.Id]; dup {
			continue
		}
		c.byID[movie.Id] = len(c.movies)
		c.movies = append(c.movies, cloneMovie(movie))
	}
	return c
}

// Movies returns every movie in catalog order.
func (c *Catalog) Movies() []model.Movie {
	out := make([]model.Movie, 0, len(c.movies))
	for _, movie := range c.movies {
		out = append(out, cloneMovie(movie))
	}
	return out
}

// Movie looks a movie up by id.
func (c *Catalog) Movie(id int) (model.Movie, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Movie{}, false
	}
	return cloneMovie(c.movies[idx]), true
}

// Len reports the number of movies in the catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

func cloneMovie(movie model.Movie) model.Movie {
	movie.Showtimes = append([]string(nil), movie.Showtimes...)
	return movie
}
