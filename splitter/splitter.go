// Package splitter provides split policies beyond the parser defaults: a
// comma tokenizer that keeps single quoted and {...} scoped fragments intact,
// and a first occurrence pair splitter with the same quoting rules.
package splitter

import (
	"github.com/viant/parsly"
	"github.com/viant/typarse"
)

// Standard splits comma separated values, honoring single quoted segments
// and {...} blocks (escape with '\'); quotes and braces are stripped from
// the returned fragments, a trailing separator yields no empty tail
type Standard struct{}

// Split implements typarse.SplitPolicy
func (s Standard) Split(input string, _ *typarse.SplitContext) ([]string, error) {
	if input == "" {
		return []string{""}, nil
	}
	cursor := parsly.NewCursor("", []byte(input), 0)
	var parts []string
	for {
		fragment, ok := nextFragment(cursor)
		if !ok {
			break
		}
		parts = append(parts, fragment)
	}
	return parts, nil
}

func (s Standard) String() string {
	return "splitter.Standard"
}

func nextFragment(cursor *parsly.Cursor) (string, bool) {
	if cursor.Pos >= len(cursor.Input) {
		return "", false
	}
	match := cursor.MatchAny(quotedMatcher, scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case quotedToken, scopeBlockToken:
		value := match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
		return value, true
	case comaTerminatorToken:
		value := match.Text(cursor)
		return value[:len(value)-1], true
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return value, true
}

// Pair splits on the first '=' only, any subsequent '=' stays in the value;
// a single quoted key may itself contain '='
type Pair struct{}

// Split implements typarse.SplitPolicy
func (p Pair) Split(input string, _ *typarse.SplitContext) ([]string, error) {
	cursor := parsly.NewCursor("", []byte(input), 0)
	var key string
	match := cursor.MatchAny(quotedMatcher, pairTerminatorMatcher)
	switch match.Code {
	case quotedToken:
		value := match.Text(cursor)
		key = value[1 : len(value)-1]
		if match = cursor.MatchAny(pairTerminatorMatcher); match.Code != pairTerminatorToken {
			return []string{key}, nil
		}
	case pairTerminatorToken:
		value := match.Text(cursor)
		key = value[:len(value)-1]
	default:
		return []string{input}, nil
	}
	value := string(cursor.Input[cursor.Pos:])
	cursor.Pos = len(cursor.Input)
	return []string{key, value}, nil
}

func (p Pair) String() string {
	return "splitter.Pair"
}
