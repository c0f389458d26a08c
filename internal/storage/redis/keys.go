package redis

import (
	"fmt"

	"github.com/mcoot/botarena/internal/model"
)

// Key prefix for all arena data
const keyPrefix = "botarena"

// profileKey returns the Redis key for a Profile
func profileKey(id model.ProfileID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// profileKeyPattern matches every profile key
func profileKeyPattern() string {
	return fmt.Sprintf("%s:profile:*", keyPrefix)
}
