package output

import "strings"

// Token is one classified write.
type Token struct {
	Entity  any
	Text    string
	Kind    TokenKind
	IsLocal bool
	// Level is the indentation level at the time of the write.
	Level int
}

// Recorder is an Output that keeps every token. It is the sink used to check how
// a writer classified its output.
type Recorder struct {
	Tokens []Token
	level  int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(kind TokenKind, text string, entity any, isLocal bool) {
	r.Tokens = append(r.Tokens, Token{Kind: kind, Text: text, Entity: entity, IsLocal: isLocal, Level: r.level})
}

func (r *Recorder) Write(text string)            { r.add(TokenText, text, nil, false) }
func (r *Recorder) WriteLine()                   { r.add(TokenNewLine, "\n", nil, false) }
func (r *Recorder) WriteKeyword(text string)     { r.add(TokenKeyword, text, nil, false) }
func (r *Recorder) WriteLiteral(text string)     { r.add(TokenLiteral, text, nil, false) }
func (r *Recorder) WriteTextLiteral(text string) { r.add(TokenTextLiteral, text, nil, false) }
func (r *Recorder) WriteDelimiter(text string)   { r.add(TokenDelimiter, text, nil, false) }
func (r *Recorder) WriteOperator(text string)    { r.add(TokenOperator, text, nil, false) }
func (r *Recorder) WriteAttribute(text string)   { r.add(TokenAttribute, text, nil, false) }
func (r *Recorder) WriteLabel(text string)       { r.add(TokenLabel, text, nil, false) }
func (r *Recorder) WriteComment(text string)     { r.add(TokenComment, text, nil, false) }
func (r *Recorder) WriteError(text string)       { r.add(TokenError, text, nil, false) }

func (r *Recorder) WriteDefinition(text string, entity any, isLocal bool) {
	r.add(TokenDefinition, text, entity, isLocal)
}

func (r *Recorder) WriteReference(text string, entity any, isLocal bool) {
	r.add(TokenReference, text, entity, isLocal)
}

func (r *Recorder) Indent() { r.level++ }

func (r *Recorder) Unindent() {
	if r.level > 0 {
		r.level--
	}
}

// String concatenates the text of every token without indentation.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, t := range r.Tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Kinds returns the kind of every token, in order.
func (r *Recorder) Kinds() []TokenKind {
	kinds := make([]TokenKind, len(r.Tokens))
	for i, t := range r.Tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

// OfKind returns the text of every token of the given kind, in order.
func (r *Recorder) OfKind(kind TokenKind) []string {
	var texts []string
	for _, t := range r.Tokens {
		if t.Kind == kind {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

// Reset discards all recorded tokens.
func (r *Recorder) Reset() {
	r.Tokens = r.Tokens[:0]
	r.level = 0
}

// Replay writes every recorded token to out in order. Indentation changes are
// replayed relative to the level out is at.
func (r *Recorder) Replay(out Output) {
	level := 0
	for _, t := range r.Tokens {
		for ; level < t.Level; level++ {
			out.Indent()
		}
		for ; level > t.Level; level-- {
			out.Unindent()
		}

		switch t.Kind {
		case TokenText:
			out.Write(t.Text)
		case TokenNewLine:
			out.WriteLine()
		case TokenKeyword:
			out.WriteKeyword(t.Text)
		case TokenLiteral:
			out.WriteLiteral(t.Text)
		case TokenTextLiteral:
			out.WriteTextLiteral(t.Text)
		case TokenDelimiter:
			out.WriteDelimiter(t.Text)
		case TokenOperator:
			out.WriteOperator(t.Text)
		case TokenAttribute:
			out.WriteAttribute(t.Text)
		case TokenLabel:
			out.WriteLabel(t.Text)
		case TokenComment:
			out.WriteComment(t.Text)
		case TokenError:
			out.WriteError(t.Text)
		case TokenDefinition:
			out.WriteDefinition(t.Text, t.Entity, t.IsLocal)
		case TokenReference:
			out.WriteReference(t.Text, t.Entity, t.IsLocal)
		}
	}
	for ; level > 0; level-- {
		out.Unindent()
	}
}
