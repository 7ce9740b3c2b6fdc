package listview

import (
	"cmp"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names of the built-in comparators.
const (
	ComparatorText    = "text"
	ComparatorNumber  = "number"
	ComparatorVersion = "version"
)

// Comparator orders two cell values: negative when a sorts before b, zero when
// they are equal and positive otherwise.
type Comparator func(a, b Value) int

// Registry holds the comparators available to sortable columns.
//
// Strings are ordered with a locale-aware collator. Columns whose values do not
// share a single kind are coerced through their text form and compared with the
// same collator, so a column never mixes numeric and string ordering.
type Registry struct {
	tag language.Tag

	// collateMu guards collator, which is not safe for concurrent use.
	collateMu sync.Mutex
	collator  *collate.Collator

	mu    sync.RWMutex
	named map[string]Comparator
}

// NewRegistry creates a registry collating strings for the given language and
// registers the built-in text, number and version comparators.
func NewRegistry(tag language.Tag) *Registry {
	r := &Registry{
		tag:      tag,
		collator: collate.New(tag),
		named:    make(map[string]Comparator),
	}
	r.named[ComparatorText] = r.compareText
	r.named[ComparatorNumber] = compareNumbers
	r.named[ComparatorVersion] = r.compareVersions
	return r
}

// Language returns the collation language.
func (r *Registry) Language() language.Tag {
	return r.tag
}

// Register adds or replaces a named comparator.
func (r *Registry) Register(name string, fn Comparator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = fn
}

// Lookup returns the comparator registered under name.
func (r *Registry) Lookup(name string) (Comparator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.named[name]
	return fn, ok
}

// Names returns the registered comparator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.named))
	for name := range r.named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompareStrings collates two strings.
func (r *Registry) CompareStrings(a, b string) int {
	r.collateMu.Lock()
	defer r.collateMu.Unlock()
	return r.collator.CompareString(a, b)
}

// comparatorFor picks the comparator for a column. A named comparator wins;
// otherwise the default for a uniform kind is used, and mixed kinds fall back
// to text comparison.
func (r *Registry) comparatorFor(name string, kind Kind, uniform bool) Comparator {
	if name != "" {
		if fn, ok := r.Lookup(name); ok {
			return fn
		}
	}
	if uniform && kind == KindNumber {
		return compareNumbers
	}
	return r.compareText
}

func (r *Registry) compareText(a, b Value) int {
	return r.CompareStrings(a.String(), b.String())
}

func compareNumbers(a, b Value) int {
	return cmp.Compare(a.Number(), b.Number())
}

// compareVersions orders semantic versions. Values that do not parse sort
// before those that do; ties fall back to collation of the text form.
func (r *Registry) compareVersions(a, b Value) int {
	va, errA := semver.NewVersion(a.String())
	vb, errB := semver.NewVersion(b.String())

	switch {
	case errA != nil && errB != nil:
		return r.compareText(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}

	if c := va.Compare(vb); c != 0 {
		return c
	}
	return r.compareText(a, b)
}
