package utils

// Fl is the scalar type used for all geometry values.
type Fl = float32

var Has = struct{}{}

type Set map[string]struct{}

func (s Set) Add(key string) {
	s[key] = Has
}

func (s Set) Extend(keys []string) {
	for _, key := range keys {
		s[key] = Has
	}
}

func (s Set) Has(key string) bool {
	_, in := s[key]
	return in
}

// IsSupersetOf reports whether every key of other is also in s.
func (s Set) IsSupersetOf(other Set) bool {
	for k := range other {
		if _, in := s[k]; !in {
			return false
		}
	}
	return true
}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}
