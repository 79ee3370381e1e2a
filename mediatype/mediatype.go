package mediatype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zostay/go-mediatype/internal/scanner"
)

const (
	// Charset is the name of the charset parameter.
	Charset = "charset"

	// Boundary is the name of the boundary parameter used by multipart types.
	Boundary = "boundary"
)

// Parameter is a single media type parameter. Name is always lowercase. Value
// is the raw value as written, so a quoted-string keeps its quotes and
// escapes.
type Parameter struct {
	Name  string
	Value string
}

// MediaType is a parsed media type. It is read-only.
type MediaType struct {
	typ     string
	subtype string

	params []Parameter     // in the order each name first appeared
	index  map[string]int // lowercase name to position in params
}

func newMediaType(typ, subtype string) *MediaType {
	return &MediaType{
		typ:     typ,
		subtype: subtype,
		index:   map[string]int{},
	}
}

// set records a parameter. When the name is already present the new value
// replaces the old one in its original position.
func (mt *MediaType) set(name, value string) {
	name = strings.ToLower(name)
	if ix, ok := mt.index[name]; ok {
		mt.params[ix].Value = value
		return
	}

	mt.index[name] = len(mt.params)
	mt.params = append(mt.params, Parameter{name, value})
}

// checkTypes returns an error unless typ and subtype are both tokens.
func checkTypes(typ, subtype string) error {
	if !scanner.IsTokenString(typ) {
		return fmt.Errorf("type %q: %w", typ, ErrInvalidToken)
	}

	if !scanner.IsTokenString(subtype) {
		return fmt.Errorf("subtype %q: %w", subtype, ErrInvalidToken)
	}

	return nil
}

// checkParameter returns an error unless name is a token and value is empty,
// a token, or exactly one quoted-string.
func checkParameter(name, value string) error {
	if !scanner.IsTokenString(name) {
		return fmt.Errorf("parameter name %q: %w", name, ErrInvalidToken)
	}

	if value == "" || scanner.IsTokenString(value) {
		return nil
	}

	r := strings.NewReader(value)
	if _, err := scanner.New(r).ReadQuotedString(); err != nil || r.Len() > 0 {
		return fmt.Errorf("parameter %q value %q: %w", name, value, ErrInvalidValue)
	}

	return nil
}

// New creates a MediaType from a type, a subtype, and name/value pairs of
// parameters. The values are used as given, so a value that is not a token
// should be passed through Quote first. It returns an error if an odd number
// of parameter strings is given, if the type, subtype, or any parameter name
// is not a token, or if a value is neither a token nor a quoted-string.
func New(typ, subtype string, ps ...string) (*MediaType, error) {
	if len(ps)%2 != 0 {
		return nil, errors.New("odd number of parameters when constructing media type")
	}

	if err := checkTypes(typ, subtype); err != nil {
		return nil, err
	}

	mt := newMediaType(typ, subtype)
	for i := 0; i < len(ps); i += 2 {
		if err := checkParameter(ps[i], ps[i+1]); err != nil {
			return nil, err
		}
		mt.set(ps[i], ps[i+1])
	}

	return mt, nil
}

// Modifier is a change to apply to a MediaType when calling Modify.
type Modifier func(*MediaType) error

// Change is a Modifier that replaces the type and subtype.
func Change(typ, subtype string) Modifier {
	return func(mt *MediaType) error {
		if err := checkTypes(typ, subtype); err != nil {
			return err
		}

		mt.typ, mt.subtype = typ, subtype
		return nil
	}
}

// Set is a Modifier that sets the named parameter. An existing parameter keeps
// its position. The value must be a token or a quoted-string, as with New.
func Set(name, value string) Modifier {
	return func(mt *MediaType) error {
		if err := checkParameter(name, value); err != nil {
			return err
		}

		mt.set(name, value)
		return nil
	}
}

// Delete is a Modifier that removes the named parameter, if present.
func Delete(name string) Modifier {
	return func(mt *MediaType) error {
		name = strings.ToLower(name)
		ix, ok := mt.index[name]
		if !ok {
			return nil
		}

		mt.params = append(mt.params[:ix], mt.params[ix+1:]...)
		delete(mt.index, name)
		for i := ix; i < len(mt.params); i++ {
			mt.index[mt.params[i].Name] = i
		}

		return nil
	}
}

// Modify clones mt, applies the given changes in order and returns the new
// MediaType. The original is never changed. If any change fails, the error is
// returned and no MediaType:
//
//	mt, _ := mediatype.ParseString("text/plain; charset=latin1; format=flowed")
//	nt, _ := mediatype.Modify(mt,
//		mediatype.Set(mediatype.Charset, "utf-8"),
//		mediatype.Delete("format"))
func Modify(mt *MediaType, changes ...Modifier) (*MediaType, error) {
	cp := mt.Clone()
	for _, change := range changes {
		if err := change(cp); err != nil {
			return nil, err
		}
	}
	return cp, nil
}

// Clone returns a deep copy of the MediaType.
func (mt *MediaType) Clone() *MediaType {
	cp := newMediaType(mt.typ, mt.subtype)
	cp.params = mt.Parameters()
	for k, v := range mt.index {
		cp.index[k] = v
	}
	return cp
}

// Type returns the top-level type, such as "text" in "text/html".
func (mt *MediaType) Type() string { return mt.typ }

// Subtype returns the subtype, such as "html" in "text/html".
func (mt *MediaType) Subtype() string { return mt.subtype }

// MediaType returns the type and subtype joined by a slash, without
// parameters.
func (mt *MediaType) MediaType() string {
	return mt.typ + "/" + mt.subtype
}

// ParameterCount returns the number of distinct parameters, including those
// with an empty value.
func (mt *MediaType) ParameterCount() int {
	return len(mt.params)
}

// Parameter returns the raw value of the named parameter. The name is matched
// without regard to case. The boolean is false if no such parameter was
// present.
func (mt *MediaType) Parameter(name string) (string, bool) {
	ix, ok := mt.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return mt.params[ix].Value, true
}

// Parameters returns a copy of the parameters in the order they will be
// written.
func (mt *MediaType) Parameters() []Parameter {
	ps := make([]Parameter, len(mt.params))
	copy(ps, mt.params)
	return ps
}

// unquoted returns the named parameter with any quoting removed.
func (mt *MediaType) unquoted(name string) (string, bool) {
	v, ok := mt.Parameter(name)
	if !ok {
		return "", false
	}
	return Unquote(v), true
}

// Charset returns the value of the charset parameter. Unlike Parameter, a
// quoted value is returned without its quotes and with escapes resolved. The
// boolean is false if there is no charset parameter.
func (mt *MediaType) Charset() (string, bool) {
	return mt.unquoted(Charset)
}

// Boundary returns the value of the boundary parameter, unquoted in the same
// way as Charset.
func (mt *MediaType) Boundary() (string, bool) {
	return mt.unquoted(Boundary)
}
