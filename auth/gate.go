// Package auth implements the mock identity gate shown before the catalog.
//
// Nothing here verifies credentials or stores passwords. The gate checks the
// shape of the form and hands back a display identity; treat it as a
// placeholder interface, never as a security boundary.
package auth

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"cinemax-cli/model"
)

const minPasswordLength = 6

type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

func (m Mode) String() string {
	if m == ModeSignUp {
		return "Sign Up"
	}
	return "Sign In"
}

type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Please enter a valid email"
	MsgPasswordRequired = "Password is required"
	MsgPasswordShort    = "Password must be at least 6 characters"
	MsgPasswordMismatch = "Passwords do not match"
)

// Whitespace includes Unicode space separators, vertical tab and the BOM.
var emailPattern = regexp.MustCompile(`[^\s\v\p{Z}\x{FEFF}]+@[^\s\v\p{Z}\x{FEFF}]+\.[^\s\v\p{Z}\x{FEFF}]+`)

type Form struct {
	Mode            Mode
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	default:
		return ""
	}
}

// ValidationErrors maps a form field to a human readable message.
type ValidationErrors map[Field]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[Field(field)])
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Validate checks every rule and returns all failures at once, or nil.
func Validate(form Form) ValidationErrors {
	errs := ValidationErrors{}

	if form.Mode == ModeSignUp && strings.TrimSpace(form.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(form.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(form.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if form.Password == "" {
		errs[FieldPassword] = MsgPasswordRequired
	} else if utf8.RuneCountInString(form.Password) < minPasswordLength {
		errs[FieldPassword] = MsgPasswordShort
	}

	if form.Mode == ModeSignUp && form.Password != form.ConfirmPassword {
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates the form and derives the identity. A blank name falls
// back to the local part of the email address.
func Submit(form Form) (model.Identity, ValidationErrors) {
	if errs := Validate(form); errs != nil {
		return model.Identity{}, errs
	}
	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = localPart(form.Email)
	}
	return model.Identity{Name: name, Email: form.Email}, nil
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// Gate holds the transient form and error state of the login screen.
type Gate struct {
	form Form
	errs ValidationErrors
}

func NewGate() *Gate {
	return &Gate{}
}

func (g *Gate) Mode() Mode {
	return g.form.Mode
}

func (g *Gate) Form() Form {
	return g.form
}

func (g *Gate) Errors() ValidationErrors {
	out := make(ValidationErrors, len(g.errs))
	for k, v := range g.errs {
		out[k] = v
	}
	return out
}

func (g *Gate) Error(field Field) string {
	return g.errs[field]
}

// Set updates a field and clears any error recorded for it.
func (g *Gate) Set(field Field, value string) {
	switch field {
	case FieldName:
		g.form.Name = value
	case FieldEmail:
		g.form.Email = value
	case FieldPassword:
		g.form.Password = value
	case FieldConfirmPassword:
		g.form.ConfirmPassword = value
	default:
		return
	}
	delete(g.errs, field)
}

// ToggleMode flips between sign in and sign up, clearing every field and error.
func (g *Gate) ToggleMode() {
	next := ModeSignUp
	if g.form.Mode == ModeSignUp {
		next = ModeSignIn
	}
	g.form = Form{Mode: next}
	g.errs = nil
}

// Submit validates the current form. On success the form state is discarded
// and the identity returned; otherwise the full error map is kept.
func (g *Gate) Submit() (model.Identity, bool) {
	identity, errs := Submit(g.form)
	if errs != nil {
		g.errs = errs
		return model.Identity{}, false
	}
	g.form = Form{Mode: g.form.Mode}
	g.errs = nil
	return identity, true
}
