package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3/tree/store"
	"github.com/pbanos/id3/tree/store/redisstore"
)

const (
	storeEnvVar  = "ID3_STORE"
	defaultStore = "memory"
)

// storeURL returns the flag value if set, the ID3_STORE environment
// variable if not, and the memory store otherwise.
func storeURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(storeEnvVar); env != "" {
		return env
	}
	return defaultStore
}

func (rcc *rootCmdConfig) openStore(url string) (store.Store, error) {
	switch {
	case url == defaultStore:
		if rcc.memoryStore == nil {
			rcc.memoryStore = store.NewMemoryStore()
		}
		return rcc.memoryStore, nil
	case strings.HasPrefix(url, "redis://"):
		rcc.Logf("Connecting to tree store at %s...", url)
		return redisstore.Open(url, redisstore.DefaultPrefix)
	}
	return nil, fmt.Errorf("unsupported tree store %q: expected memory or a redis:// URL", url)
}
