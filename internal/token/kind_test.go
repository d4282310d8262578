package token

import "testing"

func TestLookupKeywordIsCaseSensitive(t *testing.T) {
	if k, ok := LookupKeyword("node"); !ok || k != KwNode {
		t.Fatalf("LookupKeyword(%q) = %v, %v; want KwNode, true", "node", k, ok)
	}
	if _, ok := LookupKeyword("Node"); ok {
		t.Fatalf("LookupKeyword(%q) should not match a keyword", "Node")
	}
	if _, ok := LookupKeyword("radius"); ok {
		t.Fatalf("LookupKeyword(%q) should not match a keyword", "radius")
	}
}

func TestKindIsKeywordCoversPrimitivesAndReservedWords(t *testing.T) {
	for _, k := range []Kind{KwAbstract, KwExtern, KwNode, KwRoot, KwTarget, KwVisitor, KwWeak, KwList, KwBool, KwFloat, KwInt, KwString} {
		if !k.IsKeyword() {
			t.Errorf("Kind(%d).IsKeyword() = false, want true", k)
		}
	}
	if Ident.IsKeyword() {
		t.Errorf("Ident.IsKeyword() = true, want false")
	}
}

func TestKindIsLiteral(t *testing.T) {
	for _, k := range []Kind{IntLit, FloatLit, CharLit, StringLit} {
		if !k.IsLiteral() {
			t.Errorf("Kind(%d).IsLiteral() = false, want true", k)
		}
	}
	if Colon.IsLiteral() {
		t.Errorf("Colon.IsLiteral() = true, want false")
	}
}
