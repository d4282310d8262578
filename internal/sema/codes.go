package sema

import "treegen/internal/diag"

const (
	codeDuplicateExtern    = diag.DuplicateExtern
	codeDuplicateNode      = diag.DuplicateNode
	codeUnresolvedField    = diag.UnresolvedField
	codeUnresolvedList     = diag.UnresolvedList
	codeUnresolvedBase     = diag.UnresolvedBase
	codeUnresolvedRoot     = diag.UnresolvedRoot
	codeBaseCycle          = diag.BaseCycle
	codeUnresolvedCtorArg  = diag.UnresolvedCtorArg
	codeDuplicateCtorField = diag.DuplicateCtorField
	codeDuplicateTarget    = diag.DuplicateTarget
)
