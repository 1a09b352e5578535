/*
Package redisstore provides an implementation of store.Store that keeps
tree renderings on a Redis database.
*/
package redisstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pbanos/id3/tree"
	"github.com/pbanos/id3/tree/store"
	redis "gopkg.in/redis.v5"
)

// DefaultPrefix is the prefix for the keys of stores created from a URL
// without one.
const DefaultPrefix = "id3"

type redisStore struct {
	rc     *redis.Client
	prefix string
}

// New builds a store.Store backed by a redis DB keeping every rendering
// under the key prefix:name.
func New(rc *redis.Client, prefix string) store.Store {
	return &redisStore{rc, prefix}
}

/*
Options takes a URL in the form redis://[:password@]host[:port][/db] and
returns the redis client options it describes or an error. The port
defaults to 6379 and the database to 0.
*/
func Options(rawurl string) (*redis.Options, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %v", err)
	}
	if u.Scheme != "redis" {
		return nil, fmt.Errorf("parsing redis url: unsupported scheme %q", u.Scheme)
	}
	opts := &redis.Options{Addr: u.Host}
	if u.Port() == "" {
		opts.Addr = fmt.Sprintf("%s:6379", u.Hostname())
	}
	if u.User != nil {
		opts.Password, _ = u.User.Password()
	}
	if db := strings.Trim(u.Path, "/"); db != "" {
		opts.DB, err = strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: invalid database %q", db)
		}
	}
	return opts, nil
}

/*
Open takes a redis URL as accepted by Options and a key prefix and returns
a store on a client for it, or an error if the URL is invalid or the server
cannot be reached.
*/
func Open(rawurl, prefix string) (store.Store, error) {
	opts, err := Options(rawurl)
	if err != nil {
		return nil, err
	}
	rc := redis.NewClient(opts)
	err = rc.Ping().Err()
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %v", opts.Addr, err)
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return New(rc, prefix), nil
}

func (rs *redisStore) Put(ctx context.Context, name string, n *tree.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	err := rs.rc.Set(key, n.String(), 0).Err()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", key, err)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := rs.keyFor(name)
	data, err := rs.rc.Get(key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("retrieving tree %q: %w", key, store.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("retrieving tree %q: %v", key, err)
	}
	return data, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := rs.keyFor(name)
	_, err := rs.rc.Del(key).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", key, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return rs.rc.Close()
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
