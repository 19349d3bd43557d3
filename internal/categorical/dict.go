package categorical

import "fmt"

// Dictionary interns a fixed vocabulary of strings, assigning each distinct
// string a dense integer code in first-seen order. Codes are stable for the
// lifetime of the dictionary, which is read-only once loading finishes.
//
// An ordered dictionary additionally treats the code order as a rank relation
// among the categories (e.g. seeded standings); an unordered one does not.
type Dictionary struct {
	ordered bool
	codes   map[string]int
	names   []string
}

func New() *Dictionary {
	return &Dictionary{codes: make(map[string]int)}
}

// NewOrdered builds a dictionary whose rank relation is the order of names.
// Duplicate names keep their first rank.
func NewOrdered(names ...string) *Dictionary {
	d := &Dictionary{ordered: true, codes: make(map[string]int, len(names))}
	for _, n := range names {
		d.Intern(n)
	}
	return d
}

// Intern returns the code for name, assigning the next free code on first use.
func (d *Dictionary) Intern(name string) int {
	if code, ok := d.codes[name]; ok {
		return code
	}
	code := len(d.names)
	d.codes[name] = code
	d.names = append(d.names, name)
	return code
}

// Code returns the code for name without interning it.
func (d *Dictionary) Code(name string) (int, bool) {
	code, ok := d.codes[name]
	return code, ok
}

// Name returns the string for code. Unknown codes panic: a code can only come
// from Intern/Code on this dictionary, so an out-of-range one is a caller bug.
func (d *Dictionary) Name(code int) string {
	if code < 0 || code >= len(d.names) {
		panic(fmt.Sprintf("categorical: code %d out of range [0,%d)", code, len(d.names)))
	}
	return d.names[code]
}

func (d *Dictionary) Len() int { return len(d.names) }

func (d *Dictionary) Ordered() bool { return d.ordered }

// Names returns the vocabulary in code order. The slice is a copy.
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
