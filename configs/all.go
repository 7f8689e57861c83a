package configs

import (
	"fmt"
	"iter"
)

// All yields the value at path from every config file that sets it, in lookup order.
// Load and decode failures panic, as in First.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("decode config %s at %v: %w", path, value.Pos(), err))
			}
			if !yield(v) {
				return
			}
		}
	}
}
