package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceMarkMine(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 2)

	s.MarkMine(Cell{0, 0})
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Has(Cell{0, 0}))

	// marking a cell the sentence does not mention is a no-op
	s.MarkMine(Cell{5, 5})
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())
}

func TestSentenceMarkSafe(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)

	s.MarkSafe(Cell{0, 1})
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Count())

	s.MarkSafe(Cell{5, 5})
	assert.Equal(t, 1, s.Len())
}

func TestSentenceEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Sentence
		want bool
	}{
		{
			name: "same cells same count",
			a:    NewSentence([]Cell{{0, 0}, {1, 1}}, 1),
			b:    NewSentence([]Cell{{1, 1}, {0, 0}}, 1),
			want: true,
		},
		{
			name: "same cells different count",
			a:    NewSentence([]Cell{{0, 0}, {1, 1}}, 1),
			b:    NewSentence([]Cell{{0, 0}, {1, 1}}, 2),
			want: false,
		},
		{
			name: "different cells",
			a:    NewSentence([]Cell{{0, 0}}, 1),
			b:    NewSentence([]Cell{{0, 1}}, 1),
			want: false,
		},
		{
			name: "subset is not equal",
			a:    NewSentence([]Cell{{0, 0}}, 1),
			b:    NewSentence([]Cell{{0, 0}, {0, 1}}, 1),
			want: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.a.Equal(test.b))
			assert.Equal(t, test.want, test.b.Equal(test.a))
		})
	}
}

func TestSentenceCopyIsIndependent(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {0, 1}}, 1)
	clone := s.Copy()
	require.True(t, s.Equal(clone))

	clone.MarkMine(Cell{0, 0})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Equal(clone))
}

func TestSentenceString(t *testing.T) {
	s := NewSentence([]Cell{{1, 0}, {0, 2}, {0, 1}}, 2)
	assert.Equal(t, "{(0,1) (0,2) (1,0)} = 2", s.String())
}
