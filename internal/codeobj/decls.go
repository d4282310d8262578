package codeobj

import "treegen/internal/emit"

// Namespace wraps Items in "namespace Name { ... }". An empty Name renders
// the items with no wrapping at all, for targets that opt out of a
// namespace.
type Namespace struct {
	Name  string
	Items []Node
}

func (n Namespace) Codegen(e *emit.Emitter) {
	if n.Name == "" {
		for _, item := range n.Items {
			item.Codegen(e)
		}
		return
	}
	e.WriteLine("namespace " + n.Name + " {")
	e.Blank()
	for _, item := range n.Items {
		item.Codegen(e)
	}
	e.WriteLine("} // namespace " + n.Name)
}

// Include is a single "#include <Path>" or "#include \"Path\"" directive.
type Include struct {
	Path   string
	Angled bool
}

func (i Include) Codegen(e *emit.Emitter) {
	if i.Angled {
		e.WritePPLine("#include <" + i.Path + ">")
		return
	}
	e.WritePPLine("#include \"" + i.Path + "\"")
}

// ClassDecl is one node's generated class: an optional forward-declaration
// form (Forward==true, rendered as "struct Name;", body ignored) or the full
// definition with bases, fields, and members.
type ClassDecl struct {
	Name     string
	Bases    []string // base class names, already qualified
	Abstract bool
	Forward  bool
	Members  []Node
	Extra    []Node // class_extra raw lines from the target options, if any
}

func (c ClassDecl) Codegen(e *emit.Emitter) {
	if c.Forward {
		e.WriteLine("struct " + c.Name + ";")
		return
	}
	header := "class " + c.Name
	for i, base := range c.Bases {
		if i == 0 {
			header += " : public " + base
		} else {
			header += ", public " + base
		}
	}
	header += " {"
	e.WriteLine(header)
	e.WriteLine("public:")
	e.Indent()
	for _, m := range c.Members {
		m.Codegen(e)
	}
	for _, x := range c.Extra {
		x.Codegen(e)
	}
	e.Unindent()
	e.WriteLine("};")
	e.Blank()
}

// Field is a single "Type name;" class member.
type Field struct {
	Type Node
	Name string
}

func (f Field) Codegen(e *emit.Emitter) {
	f.Type.Codegen(e)
	e.WriteLine(" " + f.Name + ";")
}

func writeParams(e *emit.Emitter, params []Param) {
	e.Write("(")
	for i, p := range params {
		if i > 0 {
			e.Write(", ")
		}
		p.Codegen(e)
	}
	e.Write(")")
}

// MethodDecl is a member-function declaration with no body, as it appears
// inside a class: a pure-virtual method, an override signature, or a
// plain accessor declaration paired with an out-of-line MethodDef.
type MethodDecl struct {
	ReturnType Node
	Name       string
	Params     []Param
	Const      bool
	Virtual    bool
	Override   bool
	Pure       bool
}

func (m MethodDecl) Codegen(e *emit.Emitter) {
	if m.Virtual {
		e.Write("virtual ")
	}
	m.ReturnType.Codegen(e)
	e.Write(" " + m.Name)
	writeParams(e, m.Params)
	if m.Const {
		e.Write(" const")
	}
	if m.Override {
		e.Write(" override")
	}
	if m.Pure {
		e.Write(" = 0")
	}
	e.WriteLine(";")
}

// MethodDef is an out-of-line member-function definition:
// "Type ClassName::name(params) const { body }".
type MethodDef struct {
	ReturnType Node
	ClassName  string
	Name       string
	Params     []Param
	Const      bool
	Body       []Node
}

func (m MethodDef) Codegen(e *emit.Emitter) {
	m.ReturnType.Codegen(e)
	e.Write(" " + m.ClassName + "::" + m.Name)
	writeParams(e, m.Params)
	if m.Const {
		e.Write(" const")
	}
	e.WriteLine(" {")
	e.Indent()
	for _, stmt := range m.Body {
		stmt.Codegen(e)
	}
	e.Unindent()
	e.WriteLine("}")
	e.Blank()
}

// InlineMethod is a member-function definition given in full inside the
// class body: "Type name(params) const { body }".
type InlineMethod struct {
	ReturnType Node
	Name       string
	Params     []Param
	Const      bool
	Virtual    bool
	Body       []Node
}

func (m InlineMethod) Codegen(e *emit.Emitter) {
	if m.Virtual {
		e.Write("virtual ")
	}
	m.ReturnType.Codegen(e)
	e.Write(" " + m.Name)
	writeParams(e, m.Params)
	if m.Const {
		e.Write(" const")
	}
	e.WriteLine(" {")
	e.Indent()
	for _, stmt := range m.Body {
		stmt.Codegen(e)
	}
	e.Unindent()
	e.WriteLine("}")
}

// Ctor is a constructor given in full inside the class body, with an
// optional base/member initializer list.
type Ctor struct {
	ClassName string
	Params    []Param
	Inits     []Node // BaseInit / InitExpr entries
	Body      []Node
}

func (c Ctor) Codegen(e *emit.Emitter) {
	e.Write(c.ClassName)
	writeParams(e, c.Params)
	if len(c.Inits) > 0 {
		e.Write(" : ")
		for i, init := range c.Inits {
			if i > 0 {
				e.Write(", ")
			}
			init.Codegen(e)
		}
	}
	e.WriteLine(" {")
	e.Indent()
	for _, stmt := range c.Body {
		stmt.Codegen(e)
	}
	e.Unindent()
	e.WriteLine("}")
}

// DtorDecl is a destructor declaration with no body, paired with an
// out-of-line DtorDef.
type DtorDecl struct {
	ClassName string
	Virtual   bool
}

func (d DtorDecl) Codegen(e *emit.Emitter) {
	if d.Virtual {
		e.Write("virtual ")
	}
	e.WriteLine("~" + d.ClassName + "();")
}

// DtorDef is an out-of-line destructor definition, body typically a
// sequence of ownership-aware DeleteStmt entries releasing owning fields.
type DtorDef struct {
	ClassName string
	Body      []Node
}

func (d DtorDef) Codegen(e *emit.Emitter) {
	e.WriteLine(d.ClassName + "::~" + d.ClassName + "() {")
	e.Indent()
	for _, stmt := range d.Body {
		stmt.Codegen(e)
	}
	e.Unindent()
	e.WriteLine("}")
	e.Blank()
}
