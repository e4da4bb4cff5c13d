package interaction

import "sort"

// Flags is the shared set of named story conditions scripts read and write.
type Flags struct {
	values map[string]bool
}

func NewFlags() *Flags {
	return &Flags{values: map[string]bool{}}
}

func (f *Flags) Get(name string) bool {
	if f == nil {
		return false
	}
	return f.values[name]
}

func (f *Flags) Set(name string, value bool) {
	if f == nil || name == "" {
		return
	}
	f.values[name] = value
}

// Names returns the flags currently set to true, sorted.
func (f *Flags) Names() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.values))
	for k, v := range f.values {
		if v {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
