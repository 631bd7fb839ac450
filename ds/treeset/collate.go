package treeset

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collate returns a greater/equal callback pair that orders strings by the
// collation rules of tag, for building locale-aware string sets:
//
//	gt, eq := treeset.Collate(language.Danish)
//	s := treeset.NewFunc(gt, eq, nil)
//
// The two callbacks share one collator; like the set itself, they are not
// safe for concurrent use.
func Collate(tag language.Tag) (GreaterFunc[string], EqualFunc[string]) {
	c := collate.New(tag)
	greater := func(a, b string) bool { return c.CompareString(a, b) > 0 }
	equal := func(a, b string) bool { return c.CompareString(a, b) == 0 }
	return greater, equal
}
