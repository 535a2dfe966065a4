package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDateFormat = "01/02/06"

func newTestStore(t *testing.T, contents string) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flashcardz.txt")
	if contents != "" {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
	return NewStore(path, '|', ';', testDateFormat)
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse(testDateFormat, value)
	require.NoError(t, err)
	return date
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []Card
	}{
		{
			name: "well formed file with header",
			contents: "word|definition|date|viewed|tally\n" +
				"taza nf|(bol con asa)  cup n, mug n|09/17/24|3|2\n" +
				"correr vi|(moverse deprisa) run vi|01/05/25|0|0\n",
			want: []Card{
				{Word: "taza nf", Definition: "(bol con asa)  cup n, mug n", Created: mustDate(t, "09/17/24"), Viewed: 3, Tally: 2},
				{Word: "correr vi", Definition: "(moverse deprisa) run vi", Created: mustDate(t, "01/05/25"), Viewed: 0, Tally: 0},
			},
		},
		{
			name:     "no header",
			contents: "taza nf|cup|09/17/24|1|1\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup", Created: mustDate(t, "09/17/24"), Viewed: 1, Tally: 1},
			},
		},
		{
			name:     "short row is repaired with fresh statistics",
			contents: "taza nf|cup\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup"},
			},
		},
		{
			name:     "three field row drops the partial statistics",
			contents: "taza nf|cup|09/17/24\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup"},
			},
		},
		{
			name:     "extra fields are discarded",
			contents: "taza nf|cup|09/17/24|1|2|sixth\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup", Created: mustDate(t, "09/17/24"), Viewed: 1, Tally: 2},
			},
		},
		{
			name:     "unparseable date replaced with today",
			contents: "taza nf|cup|September 17|4|5\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup", Viewed: 4, Tally: 5},
			},
		},
		{
			name:     "non numeric counters become zero",
			contents: "taza nf|cup|09/17/24|often|-3\n",
			want: []Card{
				{Word: "taza nf", Definition: "cup", Created: mustDate(t, "09/17/24")},
			},
		},
		{
			name:     "empty file",
			contents: "word|definition|date|viewed|tally\n",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, tt.contents)
			got, err := store.Load()
			require.NoError(t, err)

			// Repaired fields default to today's date.
			for i := range tt.want {
				if tt.want[i].Created.IsZero() {
					tt.want[i].Created = store.Today()
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_Load_FormatError(t *testing.T) {
	store := newTestStore(t, "a line that was never delimited\nanother one\n")

	_, err := store.Load()
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 1, formatErr.Line)
	assert.Contains(t, formatErr.Error(), "single field")
}

func TestStore_Load_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.txt"), '|', ';', testDateFormat)

	cards, err := store.Load()
	require.Error(t, err)
	assert.Nil(t, cards)

	var formatErr *FormatError
	assert.False(t, errors.As(err, &formatErr))
}

func TestStore_Save(t *testing.T) {
	store := newTestStore(t, "")
	cards := []Card{
		{Word: "taza nf", Definition: "cup", Created: mustDate(t, "09/17/24"), Viewed: 3, Tally: 2},
	}
	require.NoError(t, store.Save(cards))

	contents, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t,
		"word|definition|date|viewed|tally\n"+
			"taza nf|cup|09/17/24|3|2\n",
		string(contents),
	)
}

func TestStore_Save_SubstitutesDelimiter(t *testing.T) {
	store := newTestStore(t, "")
	cards := []Card{
		{Word: "a|b", Definition: "c|d|e", Created: mustDate(t, "09/17/24")},
	}
	require.NoError(t, store.Save(cards))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a;b", loaded[0].Word)
	assert.Equal(t, "c;d;e", loaded[0].Definition)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t, "word|definition|date|viewed|tally\n"+
		"taza nf|(bol con asa)  cup n, mug n|09/17/24|3|2\n"+
		"correr vi|blah [go](https://example.com/go) blah|01/05/25|7|0\n")

	first, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.Save(first))
	second, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Loading again without any intervening mutation changes nothing.
	third, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second, third)
}
