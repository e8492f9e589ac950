package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"marketplace-admin/internal/adminerrors"
)

const maxTxAttempts = 5

// RedisRepo stores each document as a Redis hash (field -> msgpack value) and keeps
// a set of document IDs per collection. Redis has no secondary indexes, so queries
// are evaluated in process over the collection snapshot.
type RedisRepo struct {
	client  *redis.Client
	options RedisOptions
}

// RedisOptions holds the RedisRepo configuration
type RedisOptions struct {
	Prefix string
}

type RedisOption func(*RedisOptions)

// WithRedisPrefix sets the key prefix for every key the repo touches
func WithRedisPrefix(prefix string) RedisOption {
	return func(o *RedisOptions) {
		o.Prefix = prefix
	}
}

// NewRedisRepo creates a RedisRepo on top of an existing client
func NewRedisRepo(client *redis.Client, opts ...RedisOption) *RedisRepo {
	options := &RedisOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &RedisRepo{client: client, options: *options}
}

func (r *RedisRepo) docKey(collection, id string) string {
	return r.options.Prefix + "doc:" + collection + ":" + id
}

func (r *RedisRepo) indexKey(collection string) string {
	return r.options.Prefix + "index:" + collection
}

// GetByID loads one document hash
func (r *RedisRepo) GetByID(ctx context.Context, collection, id string) (Document, error) {
	const op = "redis.Repo.GetByID"

	raw, err := r.client.HGetAll(ctx, r.docKey(collection, id)).Result()
	if err != nil {
		return Document{}, fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	// Redis returns an empty map when the key doesn't exist
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("%s: %s/%s: %w", op, collection, id, adminerrors.ErrNotFound)
	}
	data, err := decodeHash(raw)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	return Document{ID: id, Data: data}, nil
}

// GetAll loads every document listed in the collection index
func (r *RedisRepo) GetAll(ctx context.Context, collection string) ([]Document, error) {
	return r.Query(ctx, collection, Query{})
}

// Query loads the collection and evaluates q in process
func (r *RedisRepo) Query(ctx context.Context, collection string, q Query) ([]Document, error) {
	const op = "redis.Repo.Query"

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, collection, err)
	}

	ids, err := r.client.SMembers(ctx, r.indexKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read index %s: %w", op, collection, err)
	}
	if len(ids) == 0 {
		return []Document{}, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.docKey(collection, id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load %s: %w", op, collection, err)
	}

	docs := make([]Document, 0, len(ids))
	for i, cmd := range cmds {
		raw := cmd.Val()
		// index entries can outlive their hash if a delete was interrupted
		if len(raw) == 0 {
			continue
		}
		data, err := decodeHash(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %s/%s: %w", op, collection, ids[i], err)
		}
		docs = append(docs, Document{ID: ids[i], Data: data})
	}
	return Evaluate(docs, q), nil
}

// UpdateFields patches an existing hash inside an optimistic WATCH transaction
func (r *RedisRepo) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	const op = "redis.Repo.UpdateFields"
	key := r.docKey(collection, id)

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			return adminerrors.ErrNotFound
		}
		current, err := decodeHash(raw)
		if err != nil {
			return err
		}
		now, err := tx.Time(ctx).Result()
		if err != nil {
			return err
		}
		patched := ApplyPatch(current, fields, now.UTC())

		values := make(map[string]any, len(fields))
		for k := range fields {
			b, err := msgpack.Marshal(patched[k])
			if err != nil {
				return fmt.Errorf("encode field %s: %w", k, err)
			}
			values[k] = b
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, values)
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = r.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	return nil
}

// Delete removes the hash and its index entry
func (r *RedisRepo) Delete(ctx context.Context, collection, id string) error {
	const op = "redis.Repo.Delete"

	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.docKey(collection, id))
		pipe.SRem(ctx, r.indexKey(collection), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, id, adminerrors.ErrNotFound)
	}
	return nil
}

// Put replaces the whole document atomically
func (r *RedisRepo) Put(ctx context.Context, collection string, doc Document) error {
	const op = "redis.Repo.Put"

	if doc.ID == "" {
		return fmt.Errorf("%s: %s: %w - empty document id", op, collection, adminerrors.ErrInvalidInput)
	}
	now, err := r.client.Time(ctx).Result()
	if err != nil {
		return fmt.Errorf("%s: failed to read server time: %w", op, err)
	}
	data := ApplyPatch(nil, doc.Data, now.UTC())

	values := make(map[string]any, len(data))
	for k, v := range data {
		b, err := msgpack.Marshal(v)
		if err != nil {
			return fmt.Errorf("%s: encode field %s: %w", op, k, err)
		}
		values[k] = b
	}

	key := r.docKey(collection, doc.ID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.HSet(ctx, key, values)
		}
		pipe.SAdd(ctx, r.indexKey(collection), doc.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %s/%s: %w", op, collection, doc.ID, err)
	}
	return nil
}

func decodeHash(raw map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		dec := msgpack.NewDecoder(bytes.NewReader([]byte(v)))
		dec.UseLooseInterfaceDecoding(true)
		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, fmt.Errorf("msgpack decode field %s: %w", k, err)
		}
		// msgpack restores timestamps in the local zone
		if ts, ok := val.(time.Time); ok {
			val = ts.UTC()
		}
		out[k] = val
	}
	return out, nil
}
