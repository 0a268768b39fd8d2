// Package redis provides a Redis-backed DocumentStore. Documents are
// serialized with the Core JSON codec, and an index sorted set tracks the
// stored keys so List stays cheap even with expirations.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/hyperdoc/pkg/codecs/corejson"
	"github.com/aretw0/hyperdoc/pkg/domain"
	"github.com/aretw0/hyperdoc/pkg/ports"
)

const defaultPrefix = "hyperdoc:doc:"

// farFuture is the index score used when documents never expire.
const farFuture = 4102444800 // 2100-01-01

// Store implements ports.DocumentStore using Redis.
type Store struct {
	client *backend.Client
	codec  *corejson.Codec
	prefix string
	ttl    time.Duration
}

var _ ports.DocumentStore = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for stored documents.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored documents.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		codec:  corejson.New(),
		prefix: defaultPrefix,
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save implements ports.DocumentStore.
func (s *Store) Save(ctx context.Context, key string, doc *domain.Document) error {
	if doc == nil {
		return fmt.Errorf("redis store: cannot save nil document under %q", key)
	}
	data, err := s.codec.Encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = farFuture
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(key), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: key,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load implements ports.DocumentStore.
func (s *Store) Load(ctx context.Context, key string) (*domain.Document, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	decoded, err := s.codec.Decode([]byte(val), "")
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	doc, ok := decoded.(*domain.Document)
	if !ok {
		return nil, fmt.Errorf("stored value under %q is not a document", key)
	}
	return doc, nil
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.ZRem(ctx, s.indexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// List implements ports.DocumentStore.
// Expired entries are pruned from the index lazily on each call.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired documents: %w", err)
	}

	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return keys, nil
}

// Close releases the underlying Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
