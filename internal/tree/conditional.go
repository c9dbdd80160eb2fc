package tree

import (
	"strings"

	"sfgen/internal/config"
	"sfgen/internal/errors"
	"sfgen/internal/lang"
)

// Branch is a two-armed conditional. The arms are independent lexical
// scopes: no variable defined in one arm is visible to the other or to
// code following the branch.
type Branch struct {
	condition *lang.Expr
	trueArm   *Sequence
	falseArm  *Sequence // may be nil
}

// NewBranch creates a conditional. falseArm may be nil for a plain if.
func NewBranch(condition *lang.Expr, trueArm *Sequence, falseArm *Sequence) *Branch {
	return &Branch{condition: condition, trueArm: trueArm, falseArm: falseArm}
}

// Condition returns the branch condition expression.
func (b *Branch) Condition() *lang.Expr {
	return b.condition
}

func (b *Branch) Children() []Node {
	if b.falseArm == nil {
		return []Node{b.trueArm}
	}
	return []Node{b.trueArm, b.falseArm}
}

func (b *Branch) SetChild(i int, c Node) {
	switch i {
	case 0:
		b.trueArm = c.(*Sequence)
	case 1:
		if b.falseArm == nil {
			panic("branch has no else arm")
		}
		b.falseArm = c.(*Sequence)
	default:
		panic("branch has at most two children")
	}
}

func (b *Branch) Code(style *config.CodeStyle) string {
	var sb strings.Builder
	sb.WriteString("if(")
	sb.WriteString(b.condition.Code())
	sb.WriteString(") {\n")
	sb.WriteString(style.Indent(b.trueArm.Code(style)))
	sb.WriteString("\n}")
	if b.falseArm != nil {
		sb.WriteString(" else {\n")
		sb.WriteString(style.Indent(b.falseArm.Code(style)))
		sb.WriteString("\n}")
	}
	return sb.String()
}

func (b *Branch) RequiredIncludes() []lang.HeaderFile {
	return b.condition.Includes()
}

// SwitchCase is one case body of a switch. Each body is an independent
// lexical scope.
type SwitchCase struct {
	label     *lang.Expr // nil for the default case
	body      *Sequence
	isDefault bool
}

// NewSwitchCase creates a labeled case.
func NewSwitchCase(label *lang.Expr, body *Sequence) *SwitchCase {
	return &SwitchCase{label: label, body: body}
}

// NewDefaultCase creates the default case.
func NewDefaultCase(body *Sequence) *SwitchCase {
	return &SwitchCase{body: body, isDefault: true}
}

// IsDefault reports whether this is the default case.
func (c *SwitchCase) IsDefault() bool {
	return c.isDefault
}

// Label returns the case label expression; nil for the default case.
func (c *SwitchCase) Label() *lang.Expr {
	return c.label
}

// Body returns the case body sequence.
func (c *SwitchCase) Body() *Sequence {
	return c.body
}

// Switch dispatches on a discriminant expression over an ordered case
// list. At most one default case is allowed and it must be last.
type Switch struct {
	subject *lang.Expr
	cases   []*SwitchCase
}

// NewSwitch creates a switch node, validating case ordering.
func NewSwitch(subject *lang.Expr, cases ...*SwitchCase) (*Switch, error) {
	for i, c := range cases {
		if c.isDefault && i != len(cases)-1 {
			return nil, errors.New(errors.ErrorMalformedSwitch,
				"default case must be the last case of a switch")
		}
	}
	return &Switch{subject: subject, cases: cases}, nil
}

// Subject returns the discriminant expression.
func (s *Switch) Subject() *lang.Expr {
	return s.subject
}

// Cases returns the ordered case list.
func (s *Switch) Cases() []*SwitchCase {
	return s.cases
}

func (s *Switch) Children() []Node {
	children := make([]Node, len(s.cases))
	for i, c := range s.cases {
		children[i] = c.body
	}
	return children
}

func (s *Switch) SetChild(i int, c Node) {
	s.cases[i].body = c.(*Sequence)
}

func (s *Switch) Code(style *config.CodeStyle) string {
	var sb strings.Builder
	sb.WriteString("switch(")
	sb.WriteString(s.subject.Code())
	sb.WriteString(") {\n")
	for _, c := range s.cases {
		if c.isDefault {
			sb.WriteString("default: {\n")
		} else {
			sb.WriteString("case " + c.label.Code() + ": {\n")
		}
		body := c.body.Code(style)
		if body != "" {
			sb.WriteString(style.Indent(body))
			sb.WriteString("\n")
		}
		if !c.isDefault {
			sb.WriteString(style.Indent("break;"))
			sb.WriteString("\n")
		}
		sb.WriteString("}\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *Switch) RequiredIncludes() []lang.HeaderFile {
	lists := [][]lang.HeaderFile{s.subject.Includes()}
	for _, c := range s.cases {
		if c.label != nil {
			lists = append(lists, c.label.Includes())
		}
	}
	return lang.MergeHeaders(lists...)
}
