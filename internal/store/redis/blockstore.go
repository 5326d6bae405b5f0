package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
)

// BlockStore persists block link lists in Redis. It implements the editor's
// ConfigStore contract: Set writes a block's list wholesale, Save bumps the
// block's revision counter (the cache invalidation signal). Lists are stored
// as JSON; there are no partial-field updates and no TTL - link lists live
// until the next commit replaces them.
type BlockStore struct {
	client *redis.Client
}

// NewBlockStore creates a new Redis-backed block store
func NewBlockStore(client *redis.Client) *BlockStore {
	return &BlockStore{
		client: client,
	}
}

// Get retrieves a block's link list. A block that was never committed
// returns an empty list, not an error.
func (s *BlockStore) Get(ctx context.Context, blockID string) ([]domain.LinkEntry, error) {
	data, err := s.client.Get(ctx, BlockKey(blockID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get block %s: %w", blockID, err)
	}

	var rows []domain.LinkEntry
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal block %s: %w", blockID, err)
	}

	return rows, nil
}

// Set replaces a block's link list in full and tracks the block ID.
func (s *BlockStore) Set(ctx context.Context, blockID string, rows []domain.LinkEntry) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal block %s: %w", blockID, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, BlockKey(blockID), data, 0)
	pipe.SAdd(ctx, AllBlocksKey(), blockID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set block %s: %w", blockID, err)
	}

	return nil
}

// Save publishes a commit by incrementing the block's revision counter.
// Readers holding a cached render for an older revision must re-render.
func (s *BlockStore) Save(ctx context.Context, blockID string) error {
	if err := s.client.Incr(ctx, RevisionKey(blockID)).Err(); err != nil {
		return fmt.Errorf("failed to bump revision for block %s: %w", blockID, err)
	}
	return nil
}

// Revision returns the block's current revision. A block that was never
// saved is at revision 0.
func (s *BlockStore) Revision(ctx context.Context, blockID string) (int64, error) {
	rev, err := s.client.Get(ctx, RevisionKey(blockID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get revision for block %s: %w", blockID, err)
	}
	return rev, nil
}

// AllBlockIDs returns every block ID that has ever been committed.
func (s *BlockStore) AllBlockIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, AllBlocksKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get block IDs: %w", err)
	}
	return ids, nil
}

// Delete removes a block's list and revision entirely.
func (s *BlockStore) Delete(ctx context.Context, blockID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, BlockKey(blockID))
	pipe.Del(ctx, RevisionKey(blockID))
	pipe.SRem(ctx, AllBlocksKey(), blockID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete block %s: %w", blockID, err)
	}
	return nil
}

// Ping checks Redis connectivity (readiness probe).
func (s *BlockStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
