package parser

// Parser consumes a prefix of input and produces a value of type T.
//
// offset is the absolute position of input within the original source, so
// spans produced by the parser address the source rather than the remainder.
// On success the unconsumed suffix of input is returned alongside the value.
// On failure the returned remainder is input unchanged.
type Parser[T any] interface {
	ParseAt(offset int, input string) (T, string, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(offset int, input string) (T, string, error)

// ParseAt calls f(offset, input).
func (f Func[T]) ParseAt(offset int, input string) (T, string, error) {
	return f(offset, input)
}

// Parse runs p from the start of input.
func Parse[T any](p Parser[T], input string) (T, string, error) {
	return p.ParseAt(0, input)
}

// consumed returns how many bytes of before were taken to leave after.
func consumed(before, after string) int {
	return len(before) - len(after)
}
