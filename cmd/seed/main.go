package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"bookreviews/internal/library"
	"bookreviews/internal/platform/logger"
	"bookreviews/internal/platform/openlibrary"
	"bookreviews/internal/platform/storage"
)

func main() {
	file := flag.String("file", "cmd/seed/authors.example.json", "JSON array of author documents")
	covers := flag.Bool("covers", false, "look up missing image_url values on Open Library")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
	logger.Init(getEnv("APP_ENV", "development"), getEnv("LOG_LEVEL", "info"))

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("open seed file")
	}
	defer f.Close()

	authors, err := loadAuthors(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("read seed file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *covers {
		client := openlibrary.NewClient(getEnv("OPENLIBRARY_URL", openlibrary.DefaultBaseURL), "bookreviews-seed/1.0", 2, 2)
		filled := fillCovers(ctx, client, authors)
		log.Info().Int("filled", filled).Msg("cover lookup done")
	}

	repo, closeStore, err := storage.Open(ctx, storage.Config{
		Driver:          getEnv("STORE_DRIVER", storage.DriverMongo),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "bookdatabase"),
		MongoCollection: getEnv("MONGO_COLLECTION", "books"),
		PostgresDSN:     os.Getenv("DB_DSN"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer closeStore()

	n, err := seed(ctx, repo, authors)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int("authors", n).Int("books", countBooks(authors)).Msg("seed complete")
}

// loadAuthors decodes a JSON array of author documents. Every author needs a
// name and every book a book_name.
func loadAuthors(r io.Reader) ([]library.Author, error) {
	var authors []library.Author
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	for i, a := range authors {
		if a.Name == "" {
			return nil, fmt.Errorf("author %d: missing author_name", i)
		}
		for j, b := range a.Books {
			if b.Name == "" {
				return nil, fmt.Errorf("author %q book %d: missing book_name", a.Name, j)
			}
		}
	}
	return authors, nil
}

type coverLookup interface {
	CoverURL(ctx context.Context, title, author string) (string, error)
}

// fillCovers sets image_url on books that have none, in place, and reports
// how many were filled. Lookup failures leave the book unchanged.
func fillCovers(ctx context.Context, lookup coverLookup, authors []library.Author) int {
	filled := 0
	for i := range authors {
		for j := range authors[i].Books {
			b := &authors[i].Books[j]
			if b.ImageURL != "" {
				continue
			}
			u, err := lookup.CoverURL(ctx, b.Name, authors[i].Name)
			if err != nil {
				if !errors.Is(err, openlibrary.ErrNoCover) {
					log.Warn().Err(err).Str("book_name", b.Name).Msg("cover lookup failed")
				}
				continue
			}
			b.ImageURL = u
			filled++
		}
	}
	return filled
}

func seed(ctx context.Context, repo library.Repository, authors []library.Author) (int, error) {
	if len(authors) == 0 {
		return 0, errors.New("no authors to seed")
	}
	if s, ok := repo.(storage.SchemaEnsurer); ok {
		if err := s.EnsureSchema(ctx); err != nil {
			return 0, err
		}
	}
	return repo.InsertAuthors(ctx, authors)
}

func countBooks(authors []library.Author) int {
	n := 0
	for _, a := range authors {
		n += len(a.Books)
	}
	return n
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
