package parser

// MapParser transforms the value produced by another parser. See Map.
type MapParser[I, O any] struct {
	parser Parser[I]
	fn     func(I) O
}

// Map returns a parser that runs p and applies fn to its value.
// The remainder is unchanged and failures from p propagate as is.
func Map[I, O any](p Parser[I], fn func(I) O) MapParser[I, O] {
	return MapParser[I, O]{parser: p, fn: fn}
}

// ParseAt implements Parser.
func (p MapParser[I, O]) ParseAt(offset int, input string) (O, string, error) {
	v, rest, err := p.parser.ParseAt(offset, input)
	if err != nil {
		var zero O
		return zero, input, err
	}
	return p.fn(v), rest, nil
}

// OneOfParser tries alternatives in order. See OneOf.
type OneOfParser[T any] struct {
	options []Parser[T]
}

// OneOf returns a parser that tries each option at the same position and
// returns the first success. Order matters for ambiguous grammars.
//
// When every option fails the individual reasons are dropped and the
// result is ErrExpectedOneOfToParse.
func OneOf[T any](options ...Parser[T]) OneOfParser[T] {
	return OneOfParser[T]{options: options}
}

// ParseAt implements Parser.
func (p OneOfParser[T]) ParseAt(offset int, input string) (T, string, error) {
	for _, option := range p.options {
		v, rest, err := option.ParseAt(offset, input)
		if err == nil {
			return v, rest, nil
		}
	}
	var zero T
	return zero, input, newError(ErrExpectedOneOfToParse, offset)
}

// RepeatParser applies a parser a bounded number of times. See Between.
type RepeatParser[T any] struct {
	lower  uint
	upper  Limit
	parser Parser[T]
}

// Between returns a parser that applies p at least lower and at most upper times.
func Between[T any](lower, upper uint, p Parser[T]) RepeatParser[T] {
	return BetweenLimits(lower, At(upper), p)
}

// AtLeast returns a parser that applies p lower or more times.
func AtLeast[T any](lower uint, p Parser[T]) RepeatParser[T] {
	return BetweenLimits(lower, Infinity, p)
}

// Many returns a parser that applies p zero or more times.
func Many[T any](p Parser[T]) RepeatParser[T] {
	return AtLeast(0, p)
}

// Optional returns a parser that applies p zero or one time.
func Optional[T any](p Parser[T]) RepeatParser[T] {
	return Between(0, 1, p)
}

// BetweenLimits is Between with an explicit upper Limit.
//
// The first lower applications must all succeed; any failure among them is
// returned. After that p is applied while the repeat count is less than
// upper, stopping without error on the first failure. Under an unbounded
// limit, a success that consumes no input also stops the repetition.
func BetweenLimits[T any](lower uint, upper Limit, p Parser[T]) RepeatParser[T] {
	return RepeatParser[T]{lower: lower, upper: upper, parser: p}
}

// ParseAt implements Parser.
func (p RepeatParser[T]) ParseAt(offset int, input string) ([]T, string, error) {
	values := make([]T, 0, p.lower)
	pos, rest := offset, input

	var count uint
	for ; count < p.lower; count++ {
		v, next, err := p.parser.ParseAt(pos, rest)
		if err != nil {
			return nil, input, err
		}
		values = append(values, v)
		pos += consumed(rest, next)
		rest = next
	}

	for At(count).Less(p.upper) {
		v, next, err := p.parser.ParseAt(pos, rest)
		if err != nil {
			break
		}
		n := consumed(rest, next)
		values = append(values, v)
		pos += n
		rest = next
		count++
		if n == 0 && p.upper.IsInfinite() {
			break
		}
	}

	return values, rest, nil
}

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// SequenceParser runs two parsers one after the other. See Sequence2.
type SequenceParser[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

// Sequence2 returns a parser that runs first and then second on what first
// left, producing both values. A failure in either fails the whole.
func Sequence2[A, B any](first Parser[A], second Parser[B]) SequenceParser[A, B] {
	return SequenceParser[A, B]{first: first, second: second}
}

// ParseAt implements Parser.
func (p SequenceParser[A, B]) ParseAt(offset int, input string) (Pair[A, B], string, error) {
	a, rest, err := p.first.ParseAt(offset, input)
	if err != nil {
		return Pair[A, B]{}, input, err
	}
	b, rest, err := p.second.ParseAt(offset+consumed(input, rest), rest)
	if err != nil {
		return Pair[A, B]{}, input, err
	}
	return Pair[A, B]{First: a, Second: b}, rest, nil
}

// DelimitedParser keeps the value of a parser surrounded by two others. See Delimited.
type DelimitedParser[L, T, R any] struct {
	left  Parser[L]
	inner Parser[T]
	right Parser[R]
}

// Delimited returns a parser that runs left, inner and right in sequence and
// produces the value of inner. A failure in any part fails the whole.
func Delimited[L, T, R any](left Parser[L], inner Parser[T], right Parser[R]) DelimitedParser[L, T, R] {
	return DelimitedParser[L, T, R]{left: left, inner: inner, right: right}
}

// ParseAt implements Parser.
func (p DelimitedParser[L, T, R]) ParseAt(offset int, input string) (T, string, error) {
	var zero T

	_, rest, err := p.left.ParseAt(offset, input)
	if err != nil {
		return zero, input, err
	}
	pos := offset + consumed(input, rest)

	v, after, err := p.inner.ParseAt(pos, rest)
	if err != nil {
		return zero, input, err
	}
	pos += consumed(rest, after)

	_, rest, err = p.right.ParseAt(pos, after)
	if err != nil {
		return zero, input, err
	}
	return v, rest, nil
}
