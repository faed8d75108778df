package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding the active token id of a logged-in user.
func (r *CacheKeyStruct) UserSessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

var CacheKey = NewCacheKeyStruct()
