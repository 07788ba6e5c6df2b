package ast

// Kind tags the node variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindRoot
	KindRule
	KindAtRule
	KindDecl
	KindComment
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindRoot:    "root",
	KindRule:    "rule",
	KindAtRule:  "atrule",
	KindDecl:    "decl",
	KindComment: "comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}
