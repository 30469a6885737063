package output

// Output is a sink for classified tokens. Implementations attach no meaning to a
// token beyond its kind.
type Output interface {
	// Write writes unclassified text.
	Write(text string)
	// WriteLine ends the current line.
	WriteLine()

	WriteKeyword(text string)
	WriteLiteral(text string)
	// WriteTextLiteral writes a string or character literal. The text is already
	// escaped and quoted.
	WriteTextLiteral(text string)
	WriteDelimiter(text string)
	WriteOperator(text string)
	WriteAttribute(text string)
	WriteLabel(text string)
	WriteComment(text string)
	WriteError(text string)

	// WriteDefinition writes the declaring occurrence of entity.
	WriteDefinition(text string, entity any, isLocal bool)
	// WriteReference writes a use of entity.
	WriteReference(text string, entity any, isLocal bool)

	Indent()
	Unindent()
}

// TokenKind classifies a token written to an Output.
type TokenKind uint8

const (
	TokenText TokenKind = iota
	TokenKeyword
	TokenLiteral
	TokenTextLiteral
	TokenDelimiter
	TokenOperator
	TokenAttribute
	TokenLabel
	TokenComment
	TokenError
	TokenDefinition
	TokenReference
	TokenNewLine
)

var tokenKindNames = [...]string{
	TokenText:        "text",
	TokenKeyword:     "keyword",
	TokenLiteral:     "literal",
	TokenTextLiteral: "text_literal",
	TokenDelimiter:   "delimiter",
	TokenOperator:    "operator",
	TokenAttribute:   "attribute",
	TokenLabel:       "label",
	TokenComment:     "comment",
	TokenError:       "error",
	TokenDefinition:  "definition",
	TokenReference:   "reference",
	TokenNewLine:     "newline",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}
