package redis

const (
	// KeyPrefixBlock is the prefix for block link-list keys
	KeyPrefixBlock = "linkdeck:block:"
	// KeyPrefixRevision is the prefix for block revision counters
	KeyPrefixRevision = "linkdeck:rev:"
	// KeyAllBlocks is the key for the set of all block IDs
	KeyAllBlocks = "linkdeck:blocks:all"
)

// BlockKey returns the Redis key holding a block's link list
func BlockKey(blockID string) string {
	return KeyPrefixBlock + blockID
}

// RevisionKey returns the Redis key holding a block's revision counter
func RevisionKey(blockID string) string {
	return KeyPrefixRevision + blockID
}

// AllBlocksKey returns the key for the set of all block IDs
func AllBlocksKey() string {
	return KeyAllBlocks
}

// CacheTag returns the invalidation tag name for a block's configuration.
// Downstream caches group cached renders under this tag and drop them when
// the block's revision moves.
func CacheTag(blockID string) string {
	return "block:" + blockID
}
