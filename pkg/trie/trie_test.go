package trie

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tchap/go-patricia/v2/patricia"
)

func newTrie(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

func TestInsertAndLookup(t *testing.T) {
	tr := newTrie("hello", "help", "world")

	for _, w := range []string{"hello", "help", "world"} {
		node := tr.LookupPrefixNode(w)
		require.NotNil(t, node, w)
		assert.True(t, node.Terminal(), w)
	}

	node := tr.LookupPrefixNode("hel")
	require.NotNil(t, node)
	assert.False(t, node.Terminal())
	assert.NotNil(t, node.Child('l'))
	assert.NotNil(t, node.Child('P'))
	assert.Nil(t, node.Child('x'))
	assert.Nil(t, node.Child('-'))

	assert.Nil(t, tr.LookupPrefixNode("helix"))
	assert.Equal(t, 3, tr.Len())
}

func TestCaseInsensitive(t *testing.T) {
	tr := newTrie("Hello", "HELLO", "HELLO")

	assert.Equal(t, []string{"hello"}, tr.Complete("hel", 10))
	assert.Equal(t, 1, tr.Len())
	assert.NotNil(t, tr.LookupPrefixNode("HeLl"))
}

func TestCompleteKeepsTypedPrefix(t *testing.T) {
	tr := newTrie("hello", "help")
	assert.Equal(t, []string{"HEllo", "HElp"}, tr.Complete("HE", 10))
}

func TestNonLetterAsymmetry(t *testing.T) {
	tr := newTrie("a-b")

	node := tr.LookupPrefixNode("ab")
	require.NotNil(t, node)
	assert.True(t, node.Terminal())
	assert.Nil(t, tr.LookupPrefixNode("a-b"))
	assert.Empty(t, tr.Complete("a-b", 10))

	same := newTrie("ab")
	assert.Equal(t, same.Complete("", 10), tr.Complete("", 10))
	assert.Equal(t, same.Nodes(), tr.Nodes())
}

func TestNonLettersSkippedMidWord(t *testing.T) {
	tr := newTrie("don't", "r2d2", "naïve")

	assert.Equal(t, []string{"dont"}, tr.Complete("d", 10))
	assert.Equal(t, []string{"rd"}, tr.Complete("r", 10))
	assert.Equal(t, []string{"nave"}, tr.Complete("na", 10))
}

func TestBoundedEnumeration(t *testing.T) {
	tr := newTrie("apply", "application", "apple", "app")

	assert.Equal(t, []string{"app", "apple"}, tr.Complete("app", 2))
	assert.Equal(t, []string{"app", "apple", "application", "apply"}, tr.Complete("app", 10))
	assert.Equal(t, []string{"apple", "application", "apply"}, tr.Complete("appl", 10))
}

func TestCompleteLimits(t *testing.T) {
	tr := New()
	for c := 'a'; c <= 'z'; c++ {
		tr.Insert("x" + string(c))
	}

	assert.Len(t, tr.Complete("x", 100), MaxResults)
	assert.Len(t, tr.Complete("x", MaxResults), MaxResults)
	assert.Len(t, tr.Complete("x", 3), 3)
	assert.Equal(t, []string{"xa", "xb", "xc"}, tr.Complete("x", 3))

	empty := tr.Complete("x", 0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Empty(t, tr.Complete("x", -4))
}

func TestCompleteMissingPrefix(t *testing.T) {
	tr := newTrie("cat")

	res := tr.Complete("dog", 10)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	assert.Empty(t, tr.Complete("cat1", 10))
}

func TestCompleteEmptyPrefix(t *testing.T) {
	tr := newTrie("banana", "apple", "cherry", "band")

	assert.Equal(t, []string{"apple", "banana", "band", "cherry"}, tr.Complete("", 10))
	assert.Equal(t, []string{"apple", "banana"}, tr.Complete("", 2))
}

func TestIdempotentInsert(t *testing.T) {
	tr := newTrie("cat", "car")
	before := tr.Complete("ca", 10)
	nodes := tr.Nodes()

	tr.Insert("cat")
	tr.Insert("CAR")
	tr.Insert("c.a.t")

	assert.Equal(t, before, tr.Complete("ca", 10))
	assert.Equal(t, nodes, tr.Nodes())
	assert.Equal(t, 2, tr.Len())
}

func TestEmptyWordMarksRoot(t *testing.T) {
	tr := New()
	assert.False(t, tr.Root().Terminal())
	assert.Empty(t, tr.Complete("", 10))

	tr.Insert("")
	assert.True(t, tr.Root().Terminal())
	assert.Equal(t, []string{""}, tr.Complete("", 10))

	other := newTrie("1234", "go")
	assert.True(t, other.Root().Terminal())
	assert.Equal(t, []string{"", "go"}, other.Complete("", 10))
}

func TestMaxWordLength(t *testing.T) {
	longest := strings.Repeat("a", MaxWordLength)
	tooLong := strings.Repeat("a", MaxWordLength+20)
	tr := newTrie(longest, tooLong)

	assert.Equal(t, []string{longest}, tr.Complete("a", 10))
	assert.Equal(t, []string{longest}, tr.Complete(longest, 10))
	assert.Empty(t, tr.Complete(longest+"a", 10))
	assert.NotNil(t, tr.LookupPrefixNode(tooLong))
}

func TestPrefixMonotonicity(t *testing.T) {
	words := []string{"trie", "tree", "treat", "trip", "tram"}
	tr := newTrie(words...)

	for _, w := range words {
		for i := 0; i <= len(w); i++ {
			assert.Contains(t, tr.Complete(w[:i], MaxResults), w, "prefix %q", w[:i])
		}
	}
}

// TestCompleteMatchesPatricia checks pre-order enumeration against a sorted
// subtree walk of a patricia trie holding the same words.
func TestCompleteMatchesPatricia(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const alphabet = "abcd"

	tr := New()
	oracle := patricia.NewTrie()
	for i := 0; i < 400; i++ {
		n := 1 + rng.Intn(6)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		w := sb.String()
		tr.Insert(w)
		oracle.Insert(patricia.Prefix(w), true)
	}

	prefixes := []string{""}
	for _, a := range alphabet {
		prefixes = append(prefixes, string(a))
		for _, b := range alphabet {
			prefixes = append(prefixes, string(a)+string(b))
			prefixes = append(prefixes, string(a)+string(b)+"c")
		}
	}

	for _, p := range prefixes {
		var expected []string
		err := oracle.VisitSubtree(patricia.Prefix(p), func(key patricia.Prefix, _ patricia.Item) error {
			expected = append(expected, string(key))
			return nil
		})
		require.NoError(t, err)
		sort.Strings(expected)

		for _, limit := range []int{1, 3, MaxResults} {
			want := expected
			if len(want) > limit {
				want = want[:limit]
			}
			if want == nil {
				want = []string{}
			}
			assert.Equal(t, want, tr.Complete(p, limit), "prefix %q limit %d", p, limit)
		}
	}
}

func BenchmarkComplete(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	tr := New()
	for i := 0; i < 30000; i++ {
		n := 3 + rng.Intn(8)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = byte('a' + rng.Intn(AlphabetSize))
		}
		tr.Insert(string(buf))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Complete("th", MaxResults)
	}
}
