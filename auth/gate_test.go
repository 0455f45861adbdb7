package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinemax-cli/model"
)

func TestSubmit_SignUpMissingName(t *testing.T) {
	_, errs := Submit(Form{
		Mode:            ModeSignUp,
		Name:            "",
		Email:           "a@b.com",
		Password:        "123456",
		ConfirmPassword: "123456",
	})

	require.NotNil(t, errs)
	assert.Equal(t, ValidationErrors{FieldName: MsgNameRequired}, errs)
}

func TestSubmit_SignInDerivesName(t *testing.T) {
	identity, errs := Submit(Form{
		Mode:     ModeSignIn,
		Email:    "foo@bar.com",
		Password: "abcdef",
	})

	require.Nil(t, errs)
	assert.Equal(t, model.Identity{Name: "foo", Email: "foo@bar.com"}, identity)
}

func TestSubmit_TrimsName(t *testing.T) {
	identity, errs := Submit(Form{
		Mode:            ModeSignUp,
		Name:            "  Ada Lovelace ",
		Email:           "ada@example.org",
		Password:        "engine",
		ConfirmPassword: "engine",
	})

	require.Nil(t, errs)
	assert.Equal(t, "Ada Lovelace", identity.Name)
}

func TestValidate_ReportsAllFields(t *testing.T) {
	errs := Validate(Form{
		Mode:            ModeSignUp,
		Name:            "   ",
		Email:           "not-an-email",
		Password:        "123",
		ConfirmPassword: "124",
	})

	assert.Equal(t, ValidationErrors{
		FieldName:            MsgNameRequired,
		FieldEmail:           MsgEmailInvalid,
		FieldPassword:        MsgPasswordShort,
		FieldConfirmPassword: MsgPasswordMismatch,
	}, errs)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		field Field
		want  string
	}{
		{"blank email", Form{Email: "   ", Password: "secret"}, FieldEmail, MsgEmailRequired},
		{"missing at", Form{Email: "foo.bar.com", Password: "secret"}, FieldEmail, MsgEmailInvalid},
		{"missing dot", Form{Email: "foo@bar", Password: "secret"}, FieldEmail, MsgEmailInvalid},
		{"empty password", Form{Email: "foo@bar.com"}, FieldPassword, MsgPasswordRequired},
		{"short password", Form{Email: "foo@bar.com", Password: "12345"}, FieldPassword, MsgPasswordShort},
		{"short multibyte password", Form{Email: "foo@bar.com", Password: "ééé"}, FieldPassword, MsgPasswordShort},
		{"non-breaking space around at", Form{Email: "a@\u00a0.\u00a0", Password: "abcdef"}, FieldEmail, MsgEmailInvalid},
		{"ideographic space domain", Form{Email: "foo@\u3000.com", Password: "abcdef"}, FieldEmail, MsgEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.form)
			require.NotNil(t, errs)
			assert.Equal(t, tt.want, errs[tt.field])
			assert.Len(t, errs, 1)
		})
	}
}

func TestValidate_SignInIgnoresNameAndConfirm(t *testing.T) {
	errs := Validate(Form{
		Mode:            ModeSignIn,
		Email:           "foo@bar.com",
		Password:        "abcdef",
		ConfirmPassword: "different",
	})
	assert.Nil(t, errs)
}

func TestValidate_AcceptsMultibyteInput(t *testing.T) {
	errs := Validate(Form{Email: "josé@exemplo.com.br", Password: "éééééé"})
	assert.Nil(t, errs)
}

func TestGate_SetClearsFieldError(t *testing.T) {
	gate := NewGate()
	gate.ToggleMode()

	_, ok := gate.Submit()
	require.False(t, ok)
	require.True(t, gate.Errors().Has(FieldName))
	require.True(t, gate.Errors().Has(FieldEmail))

	gate.Set(FieldName, "A")
	assert.False(t, gate.Errors().Has(FieldName))
	assert.Equal(t, "A", gate.Form().Value(FieldName))
	assert.Empty(t, gate.Form().Value(Field("unknown")))
	assert.Equal(t, MsgEmailRequired, gate.Error(FieldEmail))
}

func TestGate_ToggleModeClearsEverything(t *testing.T) {
	gate := NewGate()
	gate.Set(FieldEmail, "bad")
	gate.Set(FieldPassword, "1")
	_, ok := gate.Submit()
	require.False(t, ok)

	gate.ToggleMode()

	assert.Equal(t, ModeSignUp, gate.Mode())
	assert.Equal(t, Form{Mode: ModeSignUp}, gate.Form())
	assert.Empty(t, gate.Errors())

	gate.ToggleMode()
	assert.Equal(t, ModeSignIn, gate.Mode())
}

func TestGate_SubmitSuccessDiscardsForm(t *testing.T) {
	gate := NewGate()
	gate.Set(FieldEmail, "foo@bar.com")
	gate.Set(FieldPassword, "abcdef")

	identity, ok := gate.Submit()

	require.True(t, ok)
	assert.Equal(t, "foo", identity.Name)
	assert.Equal(t, Form{Mode: ModeSignIn}, gate.Form())
	assert.Empty(t, gate.Errors())
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{FieldPassword: MsgPasswordShort, FieldEmail: MsgEmailInvalid}
	assert.Equal(t, "email: Please enter a valid email; password: Password must be at least 6 characters", errs.Error())
}
