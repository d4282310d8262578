package token

var keywords = map[string]Kind{
	"abstract": KwAbstract,
	"extern":   KwExtern,
	"false":    KwFalse,
	"node":     KwNode,
	"null":     KwNull,
	"root":     KwRoot,
	"target":   KwTarget,
	"true":     KwTrue,
	"visitor":  KwVisitor,
	"weak":     KwWeak,
	"list":     KwList,
	"bool":     KwBool,
	"float":    KwFloat,
	"int":      KwInt,
	"string":   KwString,
}

// LookupKeyword returns the reserved-word Kind for ident, if any. Keywords
// are case-sensitive; only the lowercase spellings above are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
