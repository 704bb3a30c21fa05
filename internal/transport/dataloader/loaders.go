package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

// newByIDBatchFn adapts a "get many by IDs" repository call into a batch
// function. Keys with no row resolve to nil.
func newByIDBatchFn[T any](
	fetch func(ctx context.Context, ids []uuid.UUID) ([]T, error),
	idOf func(T) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		rows, err := fetch(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			byID[idOf(rows[i])] = &rows[i]
		}

		return mapResults(keys, byID, nilValue[T])
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() *T {
	return nil
}
