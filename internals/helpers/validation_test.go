package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title    string  `json:"title" validate:"required,max=10"`
	Email    string  `json:"email" validate:"required,email"`
	IconName string  `json:"icon_name" validate:"omitempty,max=5"`
	XURL     *string `json:"x_url" validate:"omitempty,url"`
}

func TestValidateStructValid(t *testing.T) {
	assert.Nil(t, ValidateStruct(&sampleRequest{Title: "hi", Email: "a@b.com"}))
}

func TestValidateStructCollectsAllErrors(t *testing.T) {
	bad := "not a url"
	errs := ValidateStruct(&sampleRequest{
		Title:    "",
		Email:    "nope",
		IconName: "toolong",
		XURL:     &bad,
	})
	require.NotNil(t, errs)

	assert.Equal(t, []string{"this field is required"}, errs["title"])
	assert.Equal(t, []string{"must be a valid email address"}, errs["email"])
	assert.Equal(t, []string{"must be at most 5 characters"}, errs["icon_name"])
	assert.Equal(t, []string{"must be a valid URL"}, errs["x_url"])
}

func TestValidateStructUsesJSONTagNames(t *testing.T) {
	errs := ValidateStruct(&sampleRequest{Title: "ok", Email: "a@b.com", IconName: "toolong"})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "icon_name")
	assert.NotContains(t, errs, "IconName")
}

// Acronym-heavy field names must still surface under their json tag, not a
// letter-by-letter derivation of the Go name.
func TestValidateStructAcronymFields(t *testing.T) {
	type linkRequest struct {
		XURL     *string `json:"x_url" validate:"omitempty,url"`
		EmbedURL string  `json:"embed_url" validate:"omitempty,max=5"`
	}

	bad := "not a url"
	errs := ValidateStruct(&linkRequest{XURL: &bad, EmbedURL: "toolong"})
	require.NotNil(t, errs)

	assert.Contains(t, errs, "x_url")
	assert.Contains(t, errs, "embed_url")
	assert.NotContains(t, errs, "x_u_r_l")
	assert.NotContains(t, errs, "embed_u_r_l")
	assert.NotContains(t, errs, "XURL")
	assert.NotContains(t, errs, "EmbedURL")
}

func TestValidateStructFieldWithoutJSONTag(t *testing.T) {
	type bare struct {
		Token string `validate:"required"`
	}
	errs := ValidateStruct(&bare{})
	require.NotNil(t, errs)
	assert.Contains(t, errs, "Token")
}
