package library

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	fieldBookName = "books.book_name"
	fieldGenres   = "books.genres"
)

// MongoRepo stores one document per author in a single collection.
type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo(coll *mongo.Collection) *MongoRepo {
	return &MongoRepo{coll: coll}
}

func (r *MongoRepo) BookNames(ctx context.Context) ([]string, error) {
	values, err := r.coll.Distinct(ctx, fieldBookName, bson.D{})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return names, nil
}

func (r *MongoRepo) AllBooks(ctx context.Context) ([]Book, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "books", Value: 1}, {Key: "_id", Value: 0}})
	authors, err := r.findAuthors(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	books := []Book{}
	for _, a := range authors {
		books = append(books, a.Books...)
	}
	return books, nil
}

func (r *MongoRepo) FindBook(ctx context.Context, name string) (Match, error) {
	return r.findOneBook(ctx, bson.D{{Key: fieldBookName, Value: name}})
}

func (r *MongoRepo) SearchBook(ctx context.Context, pattern string) (Match, error) {
	return r.findOneBook(ctx, bson.D{{Key: fieldBookName, Value: primitive.Regex{Pattern: pattern, Options: "i"}}})
}

// findOneBook projects only the first matching array element with the
// positional operator.
func (r *MongoRepo) findOneBook(ctx context.Context, filter bson.D) (Match, error) {
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "author_name", Value: 1},
		{Key: "books.$", Value: 1},
	})

	var a Author
	err := r.coll.FindOne(ctx, filter, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Match{}, ErrNotFound
		}
		return Match{}, err
	}
	if len(a.Books) == 0 {
		return Match{}, ErrNotFound
	}

	a.normalize()
	return Match{AuthorName: a.Name, Book: a.Books[0]}, nil
}

func (r *MongoRepo) AppendReview(ctx context.Context, name, review string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: fieldBookName, Value: name}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "books.$.reviews", Value: review}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrReviewNotAdded
	}
	return nil
}

func (r *MongoRepo) AuthorsWithGenre(ctx context.Context, genre string) ([]Author, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "author_name", Value: 1},
		{Key: "books", Value: 1},
	})
	return r.findAuthors(ctx, bson.D{{Key: fieldGenres, Value: genre}}, opts)
}

func (r *MongoRepo) findAuthors(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]Author, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var authors []Author
	if err := cur.All(ctx, &authors); err != nil {
		return nil, err
	}
	for i := range authors {
		authors[i].normalize()
	}
	return authors, nil
}

func (r *MongoRepo) InsertAuthors(ctx context.Context, authors []Author) (int, error) {
	if len(authors) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(authors))
	for i := range authors {
		docs[i] = authors[i].normalized()
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert authors: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}
