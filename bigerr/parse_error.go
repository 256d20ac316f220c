package bigerr

import "fmt"

// Kind identifies one of the fixed set of ways Parse can fail. The
// numeric value is not part of the public contract; callers should
// compare against the exported Kind constants, not the underlying int.
type Kind int

const (
	// EmptyString: the input was the empty string.
	EmptyString Kind = iota
	// LoneMinus: the input was exactly "-".
	LoneMinus
	// LonePlus: the input was exactly "+".
	LonePlus
	// LeadingSeparator: a separator character occupied the first
	// digit position.
	LeadingSeparator
	// InvalidCharacter: a byte outside the parser's grammar, or a
	// sign character in a position other than the first.
	InvalidCharacter
	// NegativeZero: the parsed magnitude was zero but a '-' sign was
	// present.
	NegativeZero
)

// NoSymbol is the sentinel Symbol value used for errors that are not
// localised to a single offending character.
const NoSymbol = 0

// ParseError reports why Parse rejected an input string. Message is
// fixed text (see the Kind constants and NewXxx constructors below)
// that callers may match on verbatim. Index is a zero-based byte
// offset into the original input. Symbol is the offending byte, or
// NoSymbol when the error isn't localised to one character.
type ParseError struct {
	Kind    Kind
	Message string
	Index   int
	Symbol  byte
}

func (e *ParseError) Error() string {
	if e.Symbol == NoSymbol {
		return fmt.Sprintf("%s (at index %d)", e.Message, e.Index)
	}
	return fmt.Sprintf("%s (at index %d: %q)", e.Message, e.Index, e.Symbol)
}

// Is reports whether e is of the given Kind, e.g.
//
//	if pe, ok := err.(*bigerr.ParseError); ok && pe.Is(bigerr.NegativeZero) {
func (e *ParseError) Is(k Kind) bool {
	return e.Kind == k
}

func newErrorNoSymbol(kind Kind, message string, index int) *ParseError {
	return &ParseError{Kind: kind, Message: message, Index: index, Symbol: NoSymbol}
}

// NewEmptyString builds the ParseError for an empty input.
func NewEmptyString() *ParseError {
	return newErrorNoSymbol(EmptyString, "empty string is not valid", 0)
}

// NewLoneMinus builds the ParseError for an input that is exactly "-".
func NewLoneMinus() *ParseError {
	return newErrorNoSymbol(LoneMinus, "'-' alone is not valid", 0)
}

// NewLonePlus builds the ParseError for an input that is exactly "+".
func NewLonePlus() *ParseError {
	return newErrorNoSymbol(LonePlus, "'+' alone is not valid", 0)
}

// NewLeadingSeparator builds the ParseError for a separator found in
// the first digit position, at byte offset index.
func NewLeadingSeparator(index int, symbol byte) *ParseError {
	return &ParseError{
		Kind:    LeadingSeparator,
		Message: "separator not allowed at the start",
		Index:   index,
		Symbol:  symbol,
	}
}

// NewInvalidCharacter builds the ParseError for a byte outside the
// parser grammar (or a misplaced sign), at byte offset index.
func NewInvalidCharacter(index int, symbol byte) *ParseError {
	return &ParseError{
		Kind:    InvalidCharacter,
		Message: "invalid character",
		Index:   index,
		Symbol:  symbol,
	}
}

// NewNegativeZero builds the ParseError for "-0"-shaped input, where
// index is the length of the input (the error is detected only once
// the whole string has been consumed).
func NewNegativeZero(index int) *ParseError {
	return newErrorNoSymbol(NegativeZero, "-0 is not allowed", index)
}
