package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Map
// =============================================================================

func TestMap(t *testing.T) {
	p := Map(Any(isAlpha), func(s Span) int { return s.End() })

	end, rest, err := Parse[int](p, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, end)
	assert.Equal(t, "bc", rest)
}

func TestMap_PropagatesError(t *testing.T) {
	called := false
	p := Map(Literal("x"), func(s Span) string {
		called = true
		return "mapped"
	})

	_, rest, err := Parse[string](p, "abc")
	require.ErrorIs(t, err, ErrExpectedLiteral)
	assert.False(t, called)
	assert.Equal(t, "abc", rest)
}

// =============================================================================
// OneOf
// =============================================================================

func TestOneOf(t *testing.T) {
	p := OneOf[Span](Literal("c"), Literal("b"), Literal("a"))

	span, rest, err := Parse[Span](p, "abc")
	require.NoError(t, err)
	assert.Equal(t, NewSpan(0, 1), span)
	assert.Equal(t, "bc", rest)
}

func TestOneOf_FirstMatchWins(t *testing.T) {
	p := OneOf[Span](Literal("a"), Literal("ab"))

	span, rest, err := Parse[Span](p, "abc")
	require.NoError(t, err)
	assert.Equal(t, NewSpan(0, 1), span)
	assert.Equal(t, "bc", rest)
}

func TestOneOf_AllFail(t *testing.T) {
	p := OneOf[Span](Literal("x"), Any(isAlpha))

	_, rest, err := p.ParseAt(4, "123")
	require.ErrorIs(t, err, ErrExpectedOneOfToParse)
	assert.NotErrorIs(t, err, ErrExpectedLiteral)
	assert.NotErrorIs(t, err, ErrUnexpectedCharacter)
	assert.Equal(t, "123", rest)
	assert.Contains(t, err.Error(), "offset 4")
}

func TestOneOf_NoOptions(t *testing.T) {
	_, _, err := Parse[Span](OneOf[Span](), "abc")
	require.ErrorIs(t, err, ErrExpectedOneOfToParse)
}

// =============================================================================
// Repetition
// =============================================================================

func TestBetween(t *testing.T) {
	tests := []struct {
		name      string
		lower     uint
		upper     uint
		input     string
		wantCount int
		wantRest  string
		wantErr   error
	}{
		{
			name:      "stops at upper bound",
			lower:     2,
			upper:     4,
			input:     "abcde",
			wantCount: 4,
			wantRest:  "e",
		},
		{
			name:      "stops at first failure above floor",
			lower:     2,
			upper:     4,
			input:     "abc1",
			wantCount: 3,
			wantRest:  "1",
		},
		{
			name:      "exactly the floor",
			lower:     2,
			upper:     4,
			input:     "ab",
			wantCount: 2,
			wantRest:  "",
		},
		{
			name:    "below the floor at end of input",
			lower:   2,
			upper:   4,
			input:   "a",
			wantErr: ErrUnexpectedEOF,
		},
		{
			name:    "below the floor on bad character",
			lower:   2,
			upper:   4,
			input:   "a1",
			wantErr: ErrUnexpectedCharacter,
		},
		{
			name:      "zero upper bound consumes nothing",
			lower:     0,
			upper:     0,
			input:     "abc",
			wantCount: 0,
			wantRest:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, rest, err := Parse[[]Span](Between[Span](tt.lower, tt.upper, Any(isAlpha)), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.input, rest)
				return
			}
			require.NoError(t, err)
			assert.Len(t, values, tt.wantCount)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestMany(t *testing.T) {
	values, rest, err := Parse[[]Span](Many[Span](Any(isAlpha)), "abc{{subject}}")
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan(0, 1), NewSpan(1, 1), NewSpan(2, 1)}, values)
	assert.Equal(t, "{{subject}}", rest)
}

func TestMany_NoMatchIsEmptySuccess(t *testing.T) {
	values, rest, err := Parse[[]Span](Many[Span](Any(isAlpha)), "123")
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, "123", rest)
}

func TestMany_OffsetsStartFromCaller(t *testing.T) {
	values, _, err := Many[Span](Literal("ab")).ParseAt(10, "ababx")
	require.NoError(t, err)
	assert.Equal(t, []Span{NewSpan(10, 2), NewSpan(12, 2)}, values)
}

func TestMany_StopsOnEmptyMatch(t *testing.T) {
	values, rest, err := Parse[[]Span](Many[Span](Literal("")), "abc")
	require.NoError(t, err)
	assert.Len(t, values, 1)
	assert.Equal(t, "abc", rest)
}

func TestAtLeast(t *testing.T) {
	p := AtLeast[Span](1, Any(isAlpha))

	values, rest, err := Parse[[]Span](p, strings.Repeat("a", 100)+"!")
	require.NoError(t, err)
	assert.Len(t, values, 100)
	assert.Equal(t, "!", rest)

	_, _, err = Parse[[]Span](p, "!")
	require.ErrorIs(t, err, ErrUnexpectedCharacter)
}

func TestOptional(t *testing.T) {
	p := Optional[Span](Literal("-"))

	values, rest, err := Parse[[]Span](p, "-1")
	require.NoError(t, err)
	assert.Len(t, values, 1)
	assert.Equal(t, "1", rest)

	values, rest, err = Parse[[]Span](p, "1")
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, "1", rest)
}

func TestBetweenLimits_Infinity(t *testing.T) {
	values, rest, err := Parse[[]Span](BetweenLimits[Span](0, Infinity, Literal("a")), "aaaa")
	require.NoError(t, err)
	assert.Len(t, values, 4)
	assert.Empty(t, rest)
}

// =============================================================================
// Sequence2
// =============================================================================

func TestSequence2(t *testing.T) {
	p := Sequence2[Span, Span](Literal("ab"), Avoid(";"))

	got, rest, err := Parse[Pair[Span, Span]](p, "abcd;e")
	require.NoError(t, err)
	assert.Equal(t, Pair[Span, Span]{First: NewSpan(0, 2), Second: NewSpan(2, 2)}, got)
	assert.Equal(t, ";e", rest)
}

func TestSequence2_SecondFails(t *testing.T) {
	p := Sequence2[Span, Span](Literal("ab"), Literal("x"))

	_, rest, err := Parse[Pair[Span, Span]](p, "abc")
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Offset)
	assert.Equal(t, "abc", rest)
}

// =============================================================================
// Delimited
// =============================================================================

func TestDelimited(t *testing.T) {
	p := Delimited[Span, Span, Span](Literal("{{"), Avoid("}}"), Literal("}}"))

	source := "say {{name}}!"
	span, rest, err := p.ParseAt(4, source[4:])
	require.NoError(t, err)
	assert.Equal(t, NewSpan(6, 4), span)
	assert.Equal(t, "name", span.Text(source))
	assert.Equal(t, "!", rest)
}

func TestDelimited_MissingRight(t *testing.T) {
	p := Delimited[Span, Span, Span](Literal("{{"), Avoid("}}"), Literal("}}"))

	_, rest, err := Parse[Span](p, "{{name")
	require.ErrorIs(t, err, ErrExpectedLiteral)
	assert.Equal(t, "{{name", rest)
}

// =============================================================================
// Func
// =============================================================================

func TestFunc(t *testing.T) {
	digits := Func[int](func(offset int, input string) (int, string, error) {
		spans, rest, err := AtLeast[Span](1, Any(func(r rune) bool { return r >= '0' && r <= '9' })).ParseAt(offset, input)
		if err != nil {
			return 0, input, err
		}
		return len(spans), rest, nil
	})

	n, rest, err := Parse[int](digits, "2024-10")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "-10", rest)
}
