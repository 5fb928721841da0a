package adapter

import (
	"context"

	"careerpath/internal/cache"
	"careerpath/internal/domain"
)

// NamespacedStore prefixes every key before handing it to the wrapped store.
type NamespacedStore struct {
	next      domain.KeyValueStore
	namespace string
}

func NewNamespacedStore(next domain.KeyValueStore, namespace string) domain.KeyValueStore {
	if namespace == "" {
		return next
	}
	return &NamespacedStore{next: next, namespace: namespace}
}

func (n *NamespacedStore) key(k string) string {
	return cache.GenerateStoreKey(n.namespace, k)
}

func (n *NamespacedStore) Get(ctx context.Context, key string) (string, error) {
	return n.next.Get(ctx, n.key(key))
}

func (n *NamespacedStore) Set(ctx context.Context, key string, value string) error {
	return n.next.Set(ctx, n.key(key), value)
}

func (n *NamespacedStore) Delete(ctx context.Context, key string) error {
	return n.next.Delete(ctx, n.key(key))
}

func (n *NamespacedStore) Ping(ctx context.Context) error {
	return n.next.Ping(ctx)
}
