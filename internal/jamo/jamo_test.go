package jamo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsCopies(t *testing.T) {
	initials := AllInitial()
	initials[0] = H
	assert.Equal(t, G, AllInitial()[0])

	medials := AllMedial()
	medials[0] = I
	assert.Equal(t, A, AllMedial()[0])

	finals := AllFinal()
	finals[0] = H
	assert.Equal(t, G, AllFinal()[0])
}

func TestJamoCounts(t *testing.T) {
	assert.Len(t, All(), 51)
	assert.Len(t, AllInitial(), 19)
	assert.Len(t, AllMedial(), 21)
	assert.Len(t, AllFinal(), 27)
	assert.Equal(t, "ㄱ", G.String())
	assert.Equal(t, "ㅣ", I.String())
	assert.Equal(t, "ㅇ", Silent.String())
}

func TestIDs(t *testing.T) {
	assert.Equal(t, 0, InitialG.ID())
	assert.Equal(t, 18, InitialH.ID())
	assert.Equal(t, 0, MedialA.ID())
	assert.Equal(t, 20, MedialI.ID())
	assert.Equal(t, 1, FinalG.ID())
	assert.Equal(t, 27, FinalH.ID())
}

func TestNarrowingRoundTrip(t *testing.T) {
	for _, i := range AllInitials() {
		got, err := i.Jamo().Initial()
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	for _, m := range AllMedials() {
		got, err := m.Jamo().Medial()
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, f := range AllFinals() {
		got, err := f.Jamo().Final()
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestNarrowingFailure(t *testing.T) {
	tests := []struct {
		name   string
		narrow func() error
	}{
		{"vowel as initial", func() error { _, err := A.Initial(); return err }},
		{"cluster as initial", func() error { _, err := Lg.Initial(); return err }},
		{"consonant as medial", func() error { _, err := G.Medial(); return err }},
		{"double as final", func() error { _, err := Dd.Final(); return err }},
		{"vowel as final", func() error { _, err := Wa.Final(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.narrow()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedJamo)
		})
	}
}

func TestSilentPlaysBothConsonantRoles(t *testing.T) {
	assert.True(t, Silent.IsInitial())
	assert.True(t, Silent.IsFinal())
	assert.False(t, Silent.IsMedial())
	assert.True(t, Gg.IsInitial())
	assert.True(t, Gg.IsFinal())
	assert.False(t, Bb.IsFinal())
	assert.False(t, Gs.IsInitial())
}

func TestMedialCombineTable(t *testing.T) {
	tests := []struct {
		wide, tall, want Medial
	}{
		{MedialO, MedialA, MedialWa},
		{MedialO, MedialAe, MedialWae},
		{MedialO, MedialI, MedialOe},
		{MedialU, MedialEo, MedialWo},
		{MedialU, MedialE, MedialWe},
		{MedialU, MedialI, MedialWi},
		{MedialEu, MedialI, MedialUi},
	}
	for _, tt := range tests {
		got, err := tt.wide.Combine(tt.tall)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%#v + %#v", tt.wide, tt.tall)

		first, second, ok := got.Components()
		assert.True(t, ok)
		assert.Equal(t, tt.wide, first)
		assert.Equal(t, tt.tall, second)
	}
}

func TestMedialCombineOrderIndependent(t *testing.T) {
	for _, a := range AllMedials() {
		for _, b := range AllMedials() {
			if !(a.Kind() == Wide && b.Kind() == Tall) {
				continue
			}
			ab, errAB := a.Combine(b)
			ba, errBA := b.Combine(a)
			assert.Equal(t, ab, ba, "%#v %#v", a, b)
			assert.Equal(t, errAB == nil, errBA == nil, "%#v %#v", a, b)
		}
	}
}

func TestMedialCombineRejects(t *testing.T) {
	_, err := MedialA.Combine(MedialO)
	require.NoError(t, err)

	_, err = MedialA.Combine(MedialE)
	var ce *CombineError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, A, ce.First)
	assert.Equal(t, E, ce.Second)
	assert.ErrorIs(t, err, ErrIncompatibleCombine)

	_, err = MedialWa.Combine(MedialI)
	assert.ErrorIs(t, err, ErrIncompatibleCombine)

	_, err = MedialO.Combine(MedialO)
	assert.ErrorIs(t, err, ErrIncompatibleCombine)
}

func TestCombinePossibleAgreesWithCombine(t *testing.T) {
	for _, m := range AllMedials() {
		for _, other := range m.CombinePossible() {
			_, err := m.Combine(other)
			assert.NoError(t, err, "%#v + %#v", m, other)
		}
	}
	assert.Empty(t, MedialYa.CombinePossible())
	assert.Equal(t, []Medial{MedialO, MedialU, MedialEu}, MedialI.CombinePossible())
}

func TestFinalAppend(t *testing.T) {
	got, err := FinalR.Append(FinalG)
	require.NoError(t, err)
	assert.Equal(t, FinalLg, got)

	_, err = FinalR.Append(FinalN)
	assert.ErrorIs(t, err, ErrIncompatibleCombine)

	_, err = FinalS.Append(FinalG)
	assert.ErrorIs(t, err, ErrIncompatibleCombine)

	for _, f := range AllFinals() {
		for _, other := range f.AppendPossible() {
			c, err := f.Append(other)
			require.NoError(t, err)
			base, add, ok := c.Components()
			assert.True(t, ok)
			assert.Equal(t, f, base)
			assert.Equal(t, other, add)
		}
	}
}

func TestSimpleComponents(t *testing.T) {
	f, rest, ok := FinalG.Components()
	assert.False(t, ok)
	assert.Equal(t, FinalG, f)
	assert.Zero(t, rest)

	m, mrest, ok := MedialYa.Components()
	assert.False(t, ok)
	assert.Equal(t, MedialYa, m)
	assert.Zero(t, mrest)
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "Gg(0x3132)", Gg.GoString())
	assert.Equal(t, "Wae(0x116b)", MedialWae.GoString())
	assert.Equal(t, "Lph(0x11b5)", FinalLph.GoString())
}
