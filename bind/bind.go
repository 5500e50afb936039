// Package bind populates struct fields from textual key/value sources by
// running each value through a typarse.Parser.
package bind

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/typarse"
	"github.com/viant/xunsafe"
)

type (
	// Binder populates struct fields from textual values
	Binder struct {
		parser     *typarse.Parser
		caseFormat text.CaseFormat
	}

	// Option customizes a binder
	Option func(b *Binder)
)

var timeType = reflect.TypeOf(time.Time{})

// WithCaseFormat sets the case format source keys use; field names are
// formatted from upper camel before lookup
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(b *Binder) {
		b.caseFormat = caseFormat
	}
}

// New creates a binder
func New(parser *typarse.Parser, opts ...Option) *Binder {
	ret := &Binder{parser: parser}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Bind populates target struct fields by parsing matching entries of values;
// the source key is the format tag name when present, otherwise the field
// name (case formatted when configured), with a case insensitive fallback.
// Fields without a matching entry keep their current value.
func (b *Binder) Bind(target interface{}, values map[string]string) error {
	rType := reflect.TypeOf(target)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a struct pointer, had: %T", target)
	}
	xStruct := xunsafe.NewStruct(rType.Elem())
	ptr := xunsafe.AsPointer(target)
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		tag := fieldTag(field)
		if tag.Ignore {
			continue
		}
		key := field.Name
		if tag.Name != "" {
			key = tag.Name
		} else if b.caseFormat != "" {
			key = text.CaseFormatUpperCamel.Format(field.Name, b.caseFormat)
		}
		raw, ok := lookup(values, key)
		if !ok {
			continue
		}
		value, err := b.fieldValue(field, tag, raw)
		if err != nil {
			return fmt.Errorf("failed to bind field %v, %w", field.Name, err)
		}
		field.SetValue(ptr, value)
	}
	return nil
}

// fieldValue parses raw into the field type; a per field timeLayout takes
// precedence over the parser's time converter
func (b *Binder) fieldValue(field *xunsafe.Field, tag *format.Tag, raw string) (interface{}, error) {
	if field.Type == timeType && tag.TimeLayout != "" {
		return time.Parse(tag.TimeLayout, raw)
	}
	return b.parser.Parse(raw, field.Type)
}

func lookup(values map[string]string, key string) (string, bool) {
	if value, ok := values[key]; ok {
		return value, true
	}
	for candidate, value := range values {
		if strings.EqualFold(candidate, key) {
			return value, true
		}
	}
	return "", false
}

func fieldTag(field *xunsafe.Field) *format.Tag {
	tag, _ := format.Parse(field.Tag)
	if tag == nil {
		tag = &format.Tag{}
	}
	if tag.TimeLayout == "" {
		tag.TimeLayout = field.Tag.Get("timeLayout")
	}
	return tag
}
