package tape_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SingleBlankCell(t *testing.T) {
	tp := tape.New()

	assert.True(t, tp.Read().IsBlank())
	assert.Equal(t, 0, tp.Position())
	assert.Len(t, tp.Cells(), 1)
	assert.Equal(t, "", tp.String())
}

func TestFromString_RoundTrip(t *testing.T) {
	for _, input := range []string{"", "a", "aaa", "0101", "héllo"} {
		t.Run(input, func(t *testing.T) {
			tp := tape.FromString(input)
			require.Equal(t, 0, tp.Position(), "head must be back at the first cell")

			for _, r := range input {
				assert.Equal(t, domain.Sym(r), tp.Read())
				tp.MoveRight()
			}
			// Beyond the input only blanks remain
			for i := 0; i < 3; i++ {
				assert.True(t, tp.Read().IsBlank())
				tp.MoveRight()
			}
			assert.Equal(t, input, tape.FromString(input).String())
		})
	}
}

func TestFromSymbols_AllowsBlanks(t *testing.T) {
	tp := tape.FromSymbols(domain.Sym('x'), domain.Blank, domain.Sym('y'))

	assert.Equal(t, "x_y", tp.String())
	assert.Equal(t, domain.Sym('x'), tp.At(0))
	assert.True(t, tp.At(1).IsBlank())
	assert.Equal(t, domain.Sym('y'), tp.At(2))
}

func TestWrite_Overwrites(t *testing.T) {
	tp := tape.FromString("abc")
	tp.MoveRight()
	tp.Write(domain.Sym('X'))

	assert.Equal(t, "aXc", tp.String())
	assert.Len(t, tp.Cells(), 4, "write must not insert cells")
}

func TestMoveLeft_GrowsWithBlanks(t *testing.T) {
	tp := tape.FromString("ab")

	for i := 1; i <= 50; i++ {
		tp.MoveLeft()
		assert.Equal(t, -i, tp.Position())
		assert.True(t, tp.Read().IsBlank(), "new cell at %d must be blank", -i)
	}
	lo, hi := tp.Bounds()
	assert.Equal(t, -50, lo)
	assert.Equal(t, 2, hi)
	assert.Equal(t, "ab", tp.String())
	assert.Equal(t, domain.Sym('a'), tp.At(0))
}

func TestMoveRight_GrowsWithBlanks(t *testing.T) {
	tp := tape.New()

	for i := 1; i <= 50; i++ {
		tp.MoveRight()
		assert.Equal(t, i, tp.Position())
		assert.True(t, tp.Read().IsBlank())
	}
	_, hi := tp.Bounds()
	assert.Equal(t, 50, hi)
}

func TestMove_WriteLeftOfOrigin(t *testing.T) {
	tp := tape.FromString("b")
	tp.MoveLeft()
	tp.Write(domain.Sym('a'))
	tp.MoveRight()

	assert.Equal(t, "ab", tp.String())
	assert.Equal(t, 0, tp.Position())
	assert.Equal(t, domain.Sym('b'), tp.Read())
	assert.Equal(t, 1, tp.Head())
}

func TestMove_Directions(t *testing.T) {
	tp := tape.FromString("abc")

	tp.Move(domain.Right)
	assert.Equal(t, domain.Sym('b'), tp.Read())
	tp.Move(domain.Stay)
	assert.Equal(t, domain.Sym('b'), tp.Read())
	tp.Move(domain.Left)
	assert.Equal(t, domain.Sym('a'), tp.Read())
}

func TestClone_IsIndependent(t *testing.T) {
	orig := tape.FromString("abc")
	cp := orig.Clone()
	cp.Write(domain.Sym('z'))
	cp.MoveLeft()

	assert.Equal(t, "abc", orig.String())
	assert.Equal(t, 0, orig.Position())
	assert.Equal(t, "zbc", cp.String())
	assert.Equal(t, -1, cp.Position())
}

func TestEqual_IgnoresMaterializedBlanks(t *testing.T) {
	a := tape.FromString("ab")
	b := tape.FromString("ab")
	b.MoveLeft()
	b.MoveLeft()
	b.MoveRight()
	b.MoveRight()
	for i := 0; i < 5; i++ {
		b.MoveRight()
	}
	for i := 0; i < 5; i++ {
		b.MoveLeft()
	}

	assert.True(t, a.Equal(b))
	b.MoveRight()
	assert.False(t, a.Equal(b), "head position differs")
	b.MoveLeft()
	b.Write(domain.Sym('c'))
	assert.False(t, a.Equal(b))
}
