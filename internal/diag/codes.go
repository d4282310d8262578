package diag

import "fmt"

// Code is a compact, stable diagnostic identifier. Codes are grouped into
// bands by the error kind they belong to (spec.md §7): lexical, syntactic,
// duplicate-name, unresolved-reference, schema-violation, target
// resolution, and internal.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000s)
	LexIllegalChar Code = 1001

	// Syntactic (2000s)
	SyntaxInvalid Code = 2001

	// Duplicate-name (3000s)
	DuplicateNode      Code = 3001
	DuplicateOption    Code = 3002
	DuplicateTarget    Code = 3003
	DuplicateCtorField Code = 3004
	DuplicateField     Code = 3005
	DuplicateExtern    Code = 3006

	// Unresolved-reference (4000s)
	UnresolvedField  Code = 4001
	UnresolvedList   Code = 4002
	UnresolvedBase   Code = 4003
	UnresolvedRoot   Code = 4004
	UnresolvedExtern Code = 4005
	UnresolvedCtorArg Code = 4006
	BaseCycle        Code = 4007

	// Schema-violation (5000s)
	SchemaUnknownOption   Code = 5001
	SchemaBadKind         Code = 5002
	SchemaMissingRequired Code = 5003

	// Target resolution (6000s)
	TargetMissing Code = 6001
	TargetUnknown Code = 6002

	// Internal (9000s)
	Internal Code = 9001
)

var codeTitle = map[Code]string{
	UnknownCode:           "unknown error",
	LexIllegalChar:        "illegal character",
	SyntaxInvalid:         "invalid syntax",
	DuplicateNode:         "duplicate node name",
	DuplicateOption:       "duplicate option key",
	DuplicateTarget:       "duplicate target name",
	DuplicateCtorField:    "duplicate constructor argument",
	DuplicateField:        "duplicate field name",
	DuplicateExtern:       "duplicate extern declaration",
	UnresolvedField:       "unresolved field type",
	UnresolvedList:        "unresolved list element type",
	UnresolvedBase:        "unresolved base type",
	UnresolvedRoot:        "unresolved root type",
	UnresolvedExtern:      "unresolved extern type",
	UnresolvedCtorArg:     "constructor argument is not a reachable field",
	BaseCycle:             "base reference cycle",
	SchemaUnknownOption:   "unknown option",
	SchemaBadKind:         "option value has the wrong kind",
	SchemaMissingRequired: "missing required option",
	TargetMissing:         "target not declared in spec",
	TargetUnknown:         "unknown target name",
	Internal:              "internal error",
}

// ID renders the code as a banded string such as "RES4001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DUP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("SCH%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("TGT%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

// Title is the short, human-readable description of the code.
func (c Code) Title() string {
	if t, ok := codeTitle[c]; ok {
		return t
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
