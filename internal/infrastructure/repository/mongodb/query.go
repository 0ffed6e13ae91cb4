package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peiwenliu/sharecircle/internal/domain/contract"
)

// BuildListFilter composes the filter every list endpoint shares: a
// case-insensitive regex OR across the resource's searchable fields, AND-ed
// with any fixed conditions (listing type, owner). An empty search term
// yields only the fixed conditions. The same filter must be used for both
// the page query and the count so totals match what pagination walks.
func BuildListFilter(search string, searchFields []string, and ...bson.M) bson.M {
	filter := bson.M{}
	if search != "" {
		or := make([]bson.M, 0, len(searchFields))
		re := primitive.Regex{Pattern: search, Options: "i"}
		for _, field := range searchFields {
			or = append(or, bson.M{field: re})
		}
		filter["$or"] = or
	}
	for _, cond := range and {
		for k, v := range cond {
			filter[k] = v
		}
	}
	return filter
}

// FindOptions maps ListOptions onto sort, skip and limit.
func FindOptions(opts contract.ListOptions) *options.FindOptions {
	return options.Find().
		SetSort(sortDoc(opts)).
		SetSkip(opts.Skip()).
		SetLimit(opts.Limit())
}

// SortOnly maps ListOptions onto sort alone, for unpaginated listings.
func SortOnly(opts contract.ListOptions) *options.FindOptions {
	return options.Find().SetSort(sortDoc(opts))
}

func sortDoc(opts contract.ListOptions) bson.D {
	field := opts.SortBy
	if field == "" {
		field = "createdAt"
	}
	order := -1
	if opts.SortOrder == "asc" {
		order = 1
	}
	return bson.D{{Key: field, Value: order}}
}
