package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"marketplace-admin/internal/adminerrors"
)

// MongoRepo maps collections one-to-one onto MongoDB collections, using _id as the
// document key.
type MongoRepo struct {
	db *mongo.Database
}

// NewMongoRepo connects to uri and pings the server before returning
func NewMongoRepo(ctx context.Context, uri, database string) (*MongoRepo, *mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &MongoRepo{db: client.Database(database)}, client, nil
}

// GetByID finds one document by _id
func (r *MongoRepo) GetByID(ctx context.Context, collection, id string) (Document, error) {
	const op = "mongo.Repo.GetByID"

	var raw bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Document{}, fmt.Errorf("%s: %s/%s: %w", op, collection, id, adminerrors.ErrNotFound)
	}
	if err != nil {
		return Document{}, fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	return fromBSONDocument(raw), nil
}

// GetAll returns the whole collection ordered by _id
func (r *MongoRepo) GetAll(ctx context.Context, collection string) ([]Document, error) {
	return r.Query(ctx, collection, Query{})
}

// Query translates q into a native find
func (r *MongoRepo) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	const op = "mongo.Repo.Query"

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, collection, err)
	}

	order := withIDTieBreak(q.OrderBy)
	filter := mongoFilter(q.Filters, order, q.StartAfter)
	opts := options.Find().SetSort(mongoSort(order))
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	cursor, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, collection, err)
	}
	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, fmt.Errorf("%s: %s: failed to read cursor: %w", op, collection, err)
	}

	docs := make([]Document, 0, len(raws))
	for _, raw := range raws {
		docs = append(docs, fromBSONDocument(raw))
	}
	return docs, nil
}

// UpdateFields issues a single update combining $set, $addToSet, $pull and $currentDate
func (r *MongoRepo) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	const op = "mongo.Repo.UpdateFields"

	res, err := r.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, mongoUpdate(fields))
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, adminerrors.ErrNotFound)
	}
	return nil
}

// Delete removes one document
func (r *MongoRepo) Delete(ctx context.Context, collection, id string) error {
	const op = "mongo.Repo.Delete"

	res, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, adminerrors.ErrNotFound)
	}
	return nil
}

// Put upserts the whole document
func (r *MongoRepo) Put(ctx context.Context, collection string, doc Document) error {
	const op = "mongo.Repo.Put"

	if doc.ID == "" {
		return fmt.Errorf("%s: %s: %w - empty document id", op, collection, adminerrors.ErrInvalidInput)
	}
	body := ApplyPatch(nil, doc.Data, time.Now().UTC())
	body["_id"] = doc.ID
	_, err := r.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": doc.ID}, body, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, doc.ID, err)
	}
	return nil
}

func mongoField(field string) string {
	if field == FieldID {
		return "_id"
	}
	return field
}

var mongoOps = map[Operator]string{
	OpEqual:        "$eq",
	OpNotEqual:     "$ne",
	OpLess:         "$lt",
	OpLessEqual:    "$lte",
	OpGreater:      "$gt",
	OpGreaterEqual: "$gte",
}

// mongoFilter builds the find filter. A non-empty cursor adds the keyset condition
// (k1 > c1) OR (k1 == c1 AND k2 > c2) ... with directions taken from the ordering.
func mongoFilter(filters []Filter, order []Order, cursor []any) bson.M {
	and := bson.A{}
	for _, f := range filters {
		field := mongoField(f.Field)
		if f.Op == OpArrayContains {
			// equality against an array field matches any element
			and = append(and, bson.M{field: f.Value})
			continue
		}
		cond := bson.M{field: bson.M{mongoOps[f.Op]: f.Value}}
		if f.Op == OpNotEqual {
			cond = bson.M{field: bson.M{"$exists": true, "$ne": f.Value}}
		}
		and = append(and, cond)
	}

	if len(cursor) > 0 {
		or := bson.A{}
		for i := range cursor {
			branch := bson.M{}
			for j := 0; j < i; j++ {
				branch[mongoField(order[j].Field)] = cursor[j]
			}
			cmp := "$gt"
			if order[i].Desc {
				cmp = "$lt"
			}
			branch[mongoField(order[i].Field)] = bson.M{cmp: cursor[i]}
			or = append(or, branch)
		}
		and = append(and, bson.M{"$or": or})
	}

	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func mongoSort(order []Order) bson.D {
	sort := bson.D{}
	for _, o := range order {
		dir := 1
		if o.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: mongoField(o.Field), Value: dir})
	}
	return sort
}

func mongoUpdate(fields map[string]any) bson.M {
	set, addToSet, pull, currentDate := bson.M{}, bson.M{}, bson.M{}, bson.M{}
	for k, v := range fields {
		switch t := v.(type) {
		case serverTimestamp:
			currentDate[k] = true
		case arrayUnion:
			addToSet[k] = bson.M{"$each": t.values}
		case arrayRemove:
			pull[k] = bson.M{"$in": t.values}
		default:
			set[k] = v
		}
	}

	update := bson.M{}
	for name, part := range map[string]bson.M{"$set": set, "$addToSet": addToSet, "$pull": pull, "$currentDate": currentDate} {
		if len(part) > 0 {
			update[name] = part
		}
	}
	return update
}

func fromBSONDocument(raw bson.M) Document {
	id := fmt.Sprint(raw["_id"])
	data := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		data[k] = fromBSON(v)
	}
	return Document{ID: id, Data: data}
}

// fromBSON converts driver types into the plain values the rest of the code expects.
func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = fromBSON(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = fromBSON(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = fromBSON(val)
		}
		return out
	case bson.DateTime:
		return t.Time().UTC()
	case bson.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	default:
		return v
	}
}
