// Package option содержит тип результата "ноль или одно значение".
//
// Одиночные выборки из хранилища возвращают Option, чтобы вызывающий код
// обязательно обработал отсутствие записи до обращения к значению.
package option

// Option хранит либо значение, либо ничего.
type Option[T any] struct {
	value T
	ok    bool
}

// Some оборачивает значение.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None возвращает пустой Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromSlice берет первый элемент среза, если он есть.
func FromSlice[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[0])
}

// Get возвращает значение и признак его наличия.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome сообщает, есть ли значение.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Slice возвращает срез из нуля или одного элемента, никогда не nil.
func (o Option[T]) Slice() []T {
	if !o.ok {
		return []T{}
	}
	return []T{o.value}
}
