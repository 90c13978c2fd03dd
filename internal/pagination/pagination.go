package pagination

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ripple/dto"
)

// Params is a 1-based page over a sorted collection. No upper bound is
// enforced on Limit.
type Params struct {
	Page  int
	Limit int64
}

// FromQuery reads page/limit from the query string, falling back to the
// endpoint defaults.
func FromQuery(c *fiber.Ctx, defaultPage int, defaultLimit int64) Params {
	p := Params{
		Page:  c.QueryInt("page", defaultPage),
		Limit: int64(c.QueryInt("limit", int(defaultLimit))),
	}
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	return p
}

type Page[T any] struct {
	Items    []T
	Next     *dto.PageRef
	Previous *dto.PageRef
}

// Links computes the neighboring page descriptors: next exists iff records
// remain beyond this page, previous iff this is not the first page.
func Links(p Params, total int64) (next, previous *dto.PageRef) {
	if int64(p.Page)*p.Limit < total {
		next = &dto.PageRef{Page: p.Page + 1, Limit: p.Limit}
	}
	if p.Page > 1 {
		previous = &dto.PageRef{Page: p.Page - 1, Limit: p.Limit}
	}
	return next, previous
}

// Find runs a counted, sorted, skip/limit query and decodes one page.
func Find[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D, p Params) (Page[T], error) {
	if filter == nil {
		filter = bson.M{}
	}

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return Page[T]{}, err
	}

	opts := options.Find().
		SetSkip(int64(p.Page-1) * p.Limit).
		SetLimit(p.Limit)
	if sort != nil {
		opts = opts.SetSort(sort)
	}

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return Page[T]{}, err
	}
	defer cur.Close(ctx)

	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return Page[T]{}, err
	}

	pg := Page[T]{Items: items}
	pg.Next, pg.Previous = Links(p, total)
	return pg, nil
}

// Envelope assembles the standard listing body:
// { <name>: [...], next?: {page, limit}, previous?: {page, limit} }.
func Envelope(name string, items any, next, previous *dto.PageRef) fiber.Map {
	body := fiber.Map{name: items}
	if next != nil {
		body["next"] = next
	}
	if previous != nil {
		body["previous"] = previous
	}
	return body
}
