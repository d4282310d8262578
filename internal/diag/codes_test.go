package diag

import "testing"

func TestCodeIDBanding(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexIllegalChar, "LEX1001"},
		{SyntaxInvalid, "SYN2001"},
		{DuplicateNode, "DUP3001"},
		{UnresolvedField, "RES4001"},
		{SchemaUnknownOption, "SCH5001"},
		{TargetMissing, "TGT6001"},
		{Internal, "INT9001"},
	}
	for _, c := range cases {
		if got := c.code.ID(); got != c.want {
			t.Errorf("Code(%d).ID() = %q, want %q", c.code, got, c.want)
		}
	}
}

func TestCodeTitleFallsBackToUnknown(t *testing.T) {
	var stray Code = 7777
	if stray.Title() != codeTitle[UnknownCode] {
		t.Errorf("Title() for an unmapped code = %q, want the unknown-error fallback", stray.Title())
	}
}
