package source

import (
	"sfgen/internal/errors"
	"sfgen/internal/lang"
)

// Visibility tags a class member block. The zero value is the default
// visibility of the class keyword and is printed without a label.
type Visibility string

const (
	VisDefault   Visibility = ""
	VisPublic    Visibility = "public"
	VisProtected Visibility = "protected"
	VisPrivate   Visibility = "private"
)

// ClassMember is one item inside a visibility block: a member
// variable, constructor, method, or raw in-class definition.
type ClassMember interface {
	classMember()
}

// MemberVariable is a class data member.
type MemberVariable struct {
	Var lang.Var
}

func (MemberVariable) classMember() {}

// Variable exposes the member as a canonical variable.
func (m MemberVariable) Variable() lang.Var {
	return m.Var
}

// MemberInit is one element of a constructor initializer list, in
// insertion order.
type MemberInit struct {
	Member string
	Args   string
}

// Constructor is a class constructor: an explicit parameter list, an
// ordered member initializer list, and an optional body text.
type Constructor struct {
	Params []lang.Var
	Inits  []MemberInit
	Body   string
}

func (*Constructor) classMember() {}

func (m *Method) classMember() {}

// InClassDefinition is verbatim text placed inside the class body.
type InClassDefinition struct {
	Text string
}

func (InClassDefinition) classMember() {}

// VisibilityBlock groups members printed under one visibility keyword.
type VisibilityBlock struct {
	class      *Class
	visibility Visibility
	members    []ClassMember
}

// Visibility returns the block's tag.
func (b *VisibilityBlock) Visibility() Visibility {
	return b.visibility
}

// Members returns the block's items in insertion order.
func (b *VisibilityBlock) Members() []ClassMember {
	return b.members
}

// AddVar adds a member variable. Duplicate member names anywhere in
// the class are a fatal registration error.
func (b *VisibilityBlock) AddVar(v lang.Var) error {
	if b.class.memberNames[v.Name] {
		return errors.New(errors.ErrorDuplicateMember,
			"class %q already has a member named %q", b.class.name, v.Name)
	}
	b.class.memberNames[v.Name] = true
	b.class.memberVars = append(b.class.memberVars, v)
	b.members = append(b.members, MemberVariable{Var: v})
	return nil
}

// AddConstructor adds a constructor to the block.
func (b *VisibilityBlock) AddConstructor(c *Constructor) {
	b.members = append(b.members, c)
}

// AddMethod binds the method to the class and adds it to the block.
// The method's parameter set is computed here, with the class's member
// variables implicitly visible.
func (b *VisibilityBlock) AddMethod(m *Method) error {
	if err := m.bind(b.class); err != nil {
		return err
	}
	b.members = append(b.members, m)
	return nil
}

// AddDefinition adds verbatim in-class text.
func (b *VisibilityBlock) AddDefinition(text string) {
	b.members = append(b.members, InClassDefinition{Text: text})
}

// Class is an ordered list of visibility-tagged member blocks. Member
// binding is one-time: a member cannot be moved between classes.
type Class struct {
	name        string
	keyword     string
	bases       []string
	blocks      []*VisibilityBlock
	memberNames map[string]bool
	memberVars  []lang.Var
}

// NewClass creates a class with the `class` keyword and an unlabeled
// default block.
func NewClass(name string, bases ...string) *Class {
	return newClass(name, "class", bases)
}

// NewStruct creates a class with the `struct` keyword.
func NewStruct(name string, bases ...string) *Class {
	return newClass(name, "struct", bases)
}

func newClass(name string, keyword string, bases []string) *Class {
	c := &Class{
		name:        name,
		keyword:     keyword,
		bases:       bases,
		memberNames: make(map[string]bool),
	}
	c.blocks = append(c.blocks, &VisibilityBlock{class: c, visibility: VisDefault})
	return c
}

func (c *Class) Name() string    { return c.name }
func (c *Class) Keyword() string { return c.keyword }
func (c *Class) Bases() []string { return c.bases }

// Default returns the unlabeled leading block.
func (c *Class) Default() *VisibilityBlock {
	return c.blocks[0]
}

// AppendBlock appends a labeled visibility block.
func (c *Class) AppendBlock(v Visibility) *VisibilityBlock {
	b := &VisibilityBlock{class: c, visibility: v}
	c.blocks = append(c.blocks, b)
	return b
}

// Blocks returns the visibility blocks in declaration order.
func (c *Class) Blocks() []*VisibilityBlock {
	return c.blocks
}

// MemberVars returns the class's member variables, the set implicitly
// visible inside non-static method bodies.
func (c *Class) MemberVars() []lang.Var {
	return c.memberVars
}

// Methods returns all bound methods across blocks, in declaration order.
func (c *Class) Methods() []*Method {
	var methods []*Method
	for _, b := range c.blocks {
		for _, m := range b.members {
			if method, ok := m.(*Method); ok {
				methods = append(methods, method)
			}
		}
	}
	return methods
}
