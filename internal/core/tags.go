package core

import "strings"

// Tags label models and structure pairs, e.g. "rod" or "muscle".
type Tags []string

func (t Tags) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	c := make(Tags, len(t))
	copy(c, t)
	return c
}

func (t Tags) String() string {
	return strings.Join(t, " ")
}
