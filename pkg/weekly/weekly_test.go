package weekly

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdziat/simple-days-schedules/pkg/core"
)

func TestFromByte_RoundTrip(t *testing.T) {
	for b := 0; b <= MaxMask; b++ {
		s, err := FromByte(b)
		require.NoError(t, err)
		assert.Equal(t, uint8(b), s.Byte())
	}
}

func TestFromByte_OutOfRange(t *testing.T) {
	for _, b := range []int{-1, 128, 255, 1 << 20} {
		_, err := FromByte(b)
		assert.ErrorIs(t, err, core.ErrInvalidMask, "mask %d", b)
	}
}

func TestFromByte_List(t *testing.T) {
	assert.Equal(t, []string{"M", "T", "W", "R", "F", "S", "U"}, MustNew(Mask(127)).List())
	assert.Equal(t, []string{"M", "T"}, MustNew(Mask(3)).List())
	assert.Equal(t, []string{"R"}, MustNew(Mask(8)).List())
	assert.Equal(t, []string{}, MustNew(Mask(0)).List())
}

func TestNames_ToByte(t *testing.T) {
	cases := []struct {
		names []string
		want  uint8
	}{
		{[]string{"M"}, 1},
		{[]string{"T", "W"}, 6},
		{[]string{"T", "R"}, 10},
		{[]string{"M", "F"}, 17},
		{[]string{"F", "S"}, 48},
		{[]string{"U"}, 64},
		{[]string{"M", "T", "W", "R", "F", "S", "U"}, 127},
	}
	for _, c := range cases {
		s, err := New(Names(c.names))
		require.NoError(t, err)
		assert.Equal(t, c.want, s.Byte(), "%v", c.names)
	}
}

func TestNames_MixedTables(t *testing.T) {
	s, err := New(Names{"Monday", "Th", "F", "Su"})
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "R", "F", "U"}, s.List())

	s, err = New(Names{"Mon", "TUE", "Wed"})
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "T", "W"}, s.List())
}

func TestNames_Duplicates(t *testing.T) {
	s, err := New(Names{"M", "Mon", "Monday"})
	require.NoError(t, err)
	assert.Equal(t, uint8(1), s.Byte())
	assert.Equal(t, 1, s.Len())
}

func TestNames_InvalidToken(t *testing.T) {
	_, err := New(Names{"M", "Funday"})
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	var parseErr *core.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Funday", parseErr.Input)

	_, err = New(Names{"monday"})
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestIndexes(t *testing.T) {
	s, err := New(Indexes{0, 6})
	require.NoError(t, err)
	assert.Equal(t, uint8(65), s.Byte())

	_, err = New(Indexes{7})
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	_, err = New(Indexes{-1})
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestTokens_Mixed(t *testing.T) {
	s, err := New(Tokens{Index(0), Name("Fri"), Index(6)})
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "F", "U"}, s.List())

	_, err = New(Tokens{Name("Fri"), nil})
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestText_Digits(t *testing.T) {
	s, err := Parse("10")
	require.NoError(t, err)
	assert.Equal(t, uint8(10), s.Byte())

	s, err = Parse(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), s.Byte())

	_, err = Parse("128")
	assert.ErrorIs(t, err, core.ErrInvalidMask)

	_, err = Parse("99999999999999999999999")
	assert.ErrorIs(t, err, core.ErrInvalidMask)
}

func TestText_ListLiteral(t *testing.T) {
	s, err := Parse("['Tue','Wed','Mon']")
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "T", "W"}, s.List())

	s, err = Parse(`["Fri", 1, ]`)
	require.NoError(t, err)
	assert.Equal(t, uint8(18), s.Byte())

	s, err = Parse("[]")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	s, err = Parse("[ 'U' ]")
	require.NoError(t, err)
	assert.Equal(t, uint8(64), s.Byte())
}

func TestText_ListLiteral_InvalidSyntax(t *testing.T) {
	for _, text := range []string{
		"[M, Tu]",
		"['M'",
		"['M']x",
		"['Mon' 'Tue']",
		"[,]",
		"['M',,]",
		"['M]",
		"[-]",
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, core.ErrInvalidListSyntax, text)
	}
}

func TestText_ListLiteral_InvalidToken(t *testing.T) {
	_, err := Parse("['Funday']")
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	_, err = Parse("[7]")
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	_, err = Parse("[-1]")
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestText_CommaSeparated(t *testing.T) {
	s, err := Parse("M, Tu, Fri")
	require.NoError(t, err)
	assert.Equal(t, uint8(19), s.Byte())

	s, err = Parse(" ,Monday,, ")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), s.Byte())

	s, err = Parse("Sat")
	require.NoError(t, err)
	assert.Equal(t, uint8(32), s.Byte())

	_, err = Parse("Mon Tue")
	assert.ErrorIs(t, err, core.ErrInvalidToken)
}

func TestText_CommaSeparatedIndexes(t *testing.T) {
	s, err := Parse("0, 6")
	require.NoError(t, err)
	assert.Equal(t, uint8(65), s.Byte())

	fromList, err := Parse("[0, 6]")
	require.NoError(t, err)
	assert.Equal(t, fromList, s)

	s, err = Parse("Fri, 0")
	require.NoError(t, err)
	assert.Equal(t, []string{"M", "F"}, s.List())

	_, err = Parse("0, 7")
	assert.ErrorIs(t, err, core.ErrInvalidToken)

	// A single digit string stays a mask.
	s, err = Parse("6")
	require.NoError(t, err)
	assert.Equal(t, uint8(6), s.Byte())
}

func TestText_Empty(t *testing.T) {
	s, err := Parse("")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	s, err = Parse("   ")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestNew_Nil(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, Schedule{}, s)
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(Mask(200))
	})
}

func TestList_RenderAndReparse(t *testing.T) {
	for b := 0; b <= MaxMask; b++ {
		s := MustNew(Mask(b))
		for _, table := range core.Tables {
			again, err := New(Names(s.List(WithTable(table))))
			require.NoError(t, err)
			assert.True(t, s.Equal(again))
		}
	}
}

func TestString_RoundTrip(t *testing.T) {
	s := MustNew(Names{"M", "T", "W"})
	assert.Equal(t, "['M', 'T', 'W']", s.String())
	assert.Equal(t, "[]", Schedule{}.String())

	for b := 0; b <= MaxMask; b++ {
		s := MustNew(Mask(b))
		again, err := Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, again)
	}
}

func TestWords(t *testing.T) {
	s := MustNew(Names{"F", "M"})
	assert.Equal(t, "Monday, Friday", s.Words())
	assert.Equal(t, "Mon, Fri", s.Words(WithTable(core.Abbr3)))
	assert.Equal(t, "Mo/Fr", s.Words(WithTable(core.Abbr2), WithSeparator("/")))
	assert.Equal(t, "", Schedule{}.Words())
}

func TestDays(t *testing.T) {
	s := MustNew(Names{"U", "W"})
	assert.Equal(t, []core.Weekday{core.Wednesday, core.Sunday}, s.Days())
}

func TestContains(t *testing.T) {
	s := MustNew(Names{"M", "T", "W"})

	someThursday := time.Date(2009, 7, 2, 0, 0, 0, 0, time.UTC)
	someMonday := time.Date(2009, 8, 31, 18, 30, 0, 0, time.UTC)
	assert.False(t, s.ContainsDate(someThursday))
	assert.True(t, s.ContainsDate(someMonday))

	assert.True(t, s.ContainsIndex(0))
	assert.True(t, s.ContainsIndex(1))
	assert.False(t, s.ContainsIndex(3))
	assert.False(t, s.ContainsIndex(-1))
	assert.False(t, s.ContainsIndex(42))

	assert.True(t, s.ContainsToken("M"))
	assert.True(t, s.ContainsToken("Monday"))
	assert.True(t, s.ContainsToken("TUE"))
	assert.False(t, s.ContainsToken("Saturday"))
	assert.False(t, s.ContainsToken("Invalid string"))

	assert.True(t, s.ContainsTimeWeekday(time.Wednesday))
	assert.False(t, s.ContainsTimeWeekday(time.Sunday))
}

func TestContainsToken_LogsUnrecognized(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	assert.False(t, MustNew(Mask(127)).ContainsToken("Funday"))
	assert.Contains(t, buf.String(), "unrecognized weekday token")
	assert.Contains(t, buf.String(), "Funday")
}

func TestEqual_OrderIndependent(t *testing.T) {
	a := MustNew(Names{"M", "T", "W"})
	b := MustNew(Text("['Tue','Wed','Mon']"))
	assert.True(t, a.Equal(b))
	assert.True(t, a == b)
	assert.True(t, a.Matches(Text("['Tue','Wed','Mon']")))
}

func TestMatches_EmptyForms(t *testing.T) {
	empty := MustNew(Mask(0))
	assert.True(t, empty.Matches(nil))
	assert.True(t, empty.Matches(Names{}))
	assert.True(t, empty.Matches(Text("")))
	assert.True(t, empty.Matches(Mask(0)))
	assert.False(t, MustNew(Mask(1)).Matches(nil))
}

func TestMatches_NeverFails(t *testing.T) {
	s := MustNew(Mask(3))
	assert.True(t, s.Matches(Mask(3)))
	assert.True(t, s.Matches(Text("3")))
	assert.True(t, s.Matches(Names{"Mo", "Tu"}))
	assert.False(t, s.Matches(Mask(500)))
	assert.False(t, s.Matches(Text("[M, T]")))
	assert.False(t, s.Matches(Names{"bogus"}))
}

func TestOf(t *testing.T) {
	s := Of(core.Friday, core.Monday, core.Weekday(9))
	assert.Equal(t, uint8(17), s.Byte())

	s = FromTimeWeekdays(time.Sunday, time.Monday)
	assert.Equal(t, uint8(65), s.Byte())
}

func TestSetAlgebra(t *testing.T) {
	weekdays := MustNew(Names{"M", "T", "W", "R", "F"})
	weekend := MustNew(Names{"S", "U"})

	assert.Equal(t, weekend, weekdays.Complement())
	assert.Equal(t, uint8(127), weekdays.Union(weekend).Byte())
	assert.True(t, weekdays.Intersect(weekend).IsEmpty())
	assert.Equal(t, uint8(127), Schedule{}.Complement().Byte())
}
