package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Strings orders strings by Unicode collation under the root locale. See
// StringsIn for the concurrency caveat. Any Comparator[string] can serve as
// a custom collation delegate wherever one of these fits.
func Strings() Comparator[string] {
	return StringsIn(language.Und)
}

// StringsIn orders strings by the collation rules of the given locale. The
// returned comparator owns a collator with internal buffers and must not be
// called from concurrent sorts; build one per goroutine instead.
func StringsIn(tag language.Tag, opts ...collate.Option) Comparator[string] {
	return collate.New(tag, opts...).CompareString
}
