package lang

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// typeLexer tokenizes C++ type spellings. Qualified names are folded
// into a single Ident token so the grammar never sees "::" on its own.
var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Const", Pattern: `\bconst\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*(::[a-zA-Z_][a-zA-Z0-9_]*)*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[<>,*&]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// typeExpr is the participle grammar for a (possibly template) C++ type.
type typeExpr struct {
	LeadConst bool       `parser:"@Const?"`
	Name      []string   `parser:"@Ident+"`
	Args      []*typeArg `parser:"('<' @@ (',' @@)* '>')?"`
	Suffixes  []string   `parser:"@('*' | '&' | Const)*"`
}

// typeArg is one template argument, either a nested type or an
// integral constant such as the extent in std::array<T, N>.
type typeArg struct {
	Int  *string   `parser:"@Int"`
	Type *typeExpr `parser:"| @@"`
}

var typeParser = participle.MustBuild[typeExpr](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseType parses a C++ type spelling into its canonical form.
// Top-level const is split off into the Const flag; const applied to a
// pointee stays inside the spelling.
func ParseType(spelling string, headers ...string) (Type, error) {
	expr, err := typeParser.ParseString("", spelling)
	if err != nil {
		return Type{}, err
	}

	canonical, isConst := expr.normalize()

	t := Type{Spelling: canonical, Const: isConst}
	for _, h := range headers {
		t.Headers = append(t.Headers, ParseHeader(h))
	}
	return t, nil
}

// MustParseType is ParseType for spellings known to be valid, such as
// literals in generator code.
func MustParseType(spelling string, headers ...string) Type {
	t, err := ParseType(spelling, headers...)
	if err != nil {
		panic(err)
	}
	return t
}

// normalize renders the canonical spelling and decides where const
// qualification lives. With no declarator suffixes a leading const
// qualifies the type itself; with pointer suffixes it qualifies the
// pointee and is kept in the spelling.
func (t *typeExpr) normalize() (string, bool) {
	var b strings.Builder

	hasPointer := false
	for _, s := range t.Suffixes {
		if s == "*" {
			hasPointer = true
		}
	}

	topConst := false
	if t.LeadConst {
		if hasPointer {
			b.WriteString("const ")
		} else {
			topConst = true
		}
	}

	b.WriteString(strings.Join(t.Name, " "))

	if len(t.Args) > 0 {
		b.WriteString("< ")
		for i, arg := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.render())
		}
		b.WriteString(" >")
	}

	for _, s := range t.Suffixes {
		switch s {
		case "*":
			b.WriteString(" *")
		case "&":
			b.WriteString(" &")
		case "const":
			// Trailing const binds to the declarator to its left; for
			// pointers this is pointer constness and stays in the
			// spelling. A trailing const with no pointer is top-level.
			if hasPointer {
				b.WriteString(" const")
			} else {
				topConst = true
			}
		}
	}

	return b.String(), topConst
}

func (a *typeArg) render() string {
	if a.Int != nil {
		return *a.Int
	}
	spelling, isConst := a.Type.normalize()
	if isConst {
		return "const " + spelling
	}
	return spelling
}
