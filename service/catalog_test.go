package service

import (
	"testing"

	"cinemax-cli/model"
)

func TestNewCatalog_FixedFeed(t *testing.T) {
	catalog := NewCatalog()

	movies := catalog.Movies()
	if len(movies) != 4 {
		t.Fatalf("expected 4 movies, got %d", len(movies))
	}

	seen := map[int]bool{}
	for _, movie := range movies {
		if seen[movie.Id] {
			t.Fatalf("duplicate movie id %d", movie.Id)
		}
		seen[movie.Id] = true
		if n := len(movie.Showtimes); n < 3 || n > 4 {
			t.Fatalf("expected 3-4 showtimes for %q, got %d", movie.Title, n)
		}
		if movie.Rating < 0 || movie.Rating > 10 {
			t.Fatalf("rating out of range for %q: %v", movie.Title, movie.Rating)
		}
		if movie.Price <= 0 {
			t.Fatalf("expected positive price for %q", movie.Title)
		}
	}

	if movies[0].Title != "The Dark Knight" || movies[0].Price != 12 {
		t.Fatalf("unexpected first movie: %+v", movies[0])
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	catalog := NewCatalog()

	movies := catalog.Movies()
	movies[0].Title = "changed"
	movies[0].Showtimes[0] = "changed"

	again, ok := catalog.Movie(movies[0].Id)
	if !ok {
		t.Fatal("expected movie to be found")
	}
	if again.Title == "changed" || again.Showtimes[0] == "changed" {
		t.Fatalf("catalog was mutated through a returned value: %+v", again)
	}
}

func TestCatalog_MovieLookup(t *testing.T) {
	catalog := NewCatalogFrom([]model.Movie{
		{Id: 7, Title: "A", Showtimes: []string{"1:00 PM"}},
		{Id: 7, Title: "duplicate"},
		{Id: 8, Title: "B"},
	})

	if catalog.Len() != 2 {
		t.Fatalf("expected duplicates to be dropped, got %d movies", catalog.Len())
	}
	movie, ok := catalog.Movie(7)
	if !ok || movie.Title != "A" {
		t.Fatalf("unexpected lookup result: %+v %v", movie, ok)
	}
	if _, ok := catalog.Movie(99); ok {
		t.Fatal("expected unknown id to be missing")
	}
	if !movie.HasShowtime("1:00 PM") || movie.HasShowtime("2:00 PM") || movie.HasShowtime("") {
		t.Fatal("unexpected showtime membership")
	}
}
