package array

import (
	"errors"
	"fmt"

	"github.com/benz9527/xcontainer/lib/infra"
)

var (
	ErrIndexOutOfRange = errors.New("[array] index out of range")
	ErrLengthMismatch  = errors.New("[array] length mismatch")
)

// Array is a fixed-size sequence over contiguous storage.
// The length is decided at construction and never changes.
type Array[T any] struct {
	data []T
}

// New returns an array of n zero values.
func New[T any](n int) *Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("[array] negative length %d", n))
	}
	return &Array[T]{data: make([]T, n)}
}

// Of returns an array holding a copy of values, in order.
func Of[T any](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Array[T]{data: data}
}

func (arr *Array[T]) Len() int {
	return len(arr.data)
}

func (arr *Array[T]) Empty() bool {
	return len(arr.data) == 0
}

func (arr *Array[T]) checkIndex(pos int) error {
	if pos < 0 || pos >= len(arr.data) {
		return infra.WrapErrorStackWithMessage(ErrIndexOutOfRange,
			fmt.Sprintf("pos %d, len %d", pos, len(arr.data)))
	}
	return nil
}

// At is the bounds checked access.
func (arr *Array[T]) At(pos int) (T, error) {
	if err := arr.checkIndex(pos); err != nil {
		var zero T
		return zero, err
	}
	return arr.data[pos], nil
}

func (arr *Array[T]) RefAt(pos int) (*T, error) {
	if err := arr.checkIndex(pos); err != nil {
		return nil, err
	}
	return &arr.data[pos], nil
}

func (arr *Array[T]) SetAt(pos int, v T) error {
	if err := arr.checkIndex(pos); err != nil {
		return err
	}
	arr.data[pos] = v
	return nil
}

// Index is unchecked, out of range positions panic like a slice index.
func (arr *Array[T]) Index(pos int) T {
	return arr.data[pos]
}

func (arr *Array[T]) Set(pos int, v T) {
	arr.data[pos] = v
}

func (arr *Array[T]) Front() T {
	return arr.data[0]
}

func (arr *Array[T]) Back() T {
	return arr.data[len(arr.data)-1]
}

// Data shares the underlying storage.
func (arr *Array[T]) Data() []T {
	return arr.data
}

// Values returns a copy of the elements.
func (arr *Array[T]) Values() []T {
	res := make([]T, len(arr.data))
	copy(res, arr.data)
	return res
}

// MoveOut returns the elements and leaves zero values behind.
func (arr *Array[T]) MoveOut() []T {
	res := arr.Values()
	arr.Fill(*new(T))
	return res
}

func (arr *Array[T]) Fill(v T) {
	for i := range arr.data {
		arr.data[i] = v
	}
}

// Swap exchanges the elements of two arrays with the same length.
func (arr *Array[T]) Swap(other *Array[T]) error {
	if other == nil || len(other.data) != len(arr.data) {
		return infra.WrapErrorStack(ErrLengthMismatch)
	}
	for i := range arr.data {
		arr.data[i], other.data[i] = other.data[i], arr.data[i]
	}
	return nil
}

// Foreach stops at the first error returned by fn.
func (arr *Array[T]) Foreach(fn func(idx int, v T) error) error {
	for i, v := range arr.data {
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

func (arr *Array[T]) ReverseForeach(fn func(idx int, v T)) {
	for i := len(arr.data) - 1; i >= 0; i-- {
		fn(i, arr.data[i])
	}
}

func Equal[T comparable](lhs, rhs *Array[T]) bool {
	if lhs.Len() != rhs.Len() {
		return false
	}
	for i := range lhs.data {
		if lhs.data[i] != rhs.data[i] {
			return false
		}
	}
	return true
}

// Compare is the lexicographic three-way comparison.
// A shorter array that is a prefix of the longer one orders first.
func Compare[T infra.OrderedKey](lhs, rhs *Array[T]) int {
	n := min(lhs.Len(), rhs.Len())
	for i := 0; i < n; i++ {
		if res := infra.Compare(lhs.data[i], rhs.data[i]); res != 0 {
			return res
		}
	}
	return infra.Compare(lhs.Len(), rhs.Len())
}
