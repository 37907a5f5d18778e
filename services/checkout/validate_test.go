package checkout

import (
	"errors"
	"testing"

	"stayfront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest() models.GuestDetails {
	return models.GuestDetails{
		FirstName:     "Ana",
		LastName:      "Silva",
		Email:         "ana.silva@example.com",
		Phone:         "+44 7911 123456",
		AcceptedTerms: true,
	}
}

func TestValidateGuestAccepts(t *testing.T) {
	require.NoError(t, ValidateGuest(validGuest()))
}

func TestValidateGuestDisposableEmail(t *testing.T) {
	cases := []string{
		"someone@mailinator.com",
		"someone@MAILINATOR.COM",
		"Someone@MailInator.Com",
		"x@yopmail.com",
	}
	for _, email := range cases {
		g := validGuest()
		g.Email = email
		err := ValidateGuest(g)
		require.Error(t, err, email)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "email", vErr.Field)
	}
}

func TestValidateGuestEmailFormat(t *testing.T) {
	for _, email := range []string{"", "nodomain", "a@b", "@example.com", "x@"} {
		g := validGuest()
		g.Email = email
		assert.Error(t, ValidateGuest(g), email)
	}
}

func TestValidateGuestPhoneBounds(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"123456", true},         // 6 digits, lower bound
		{"12345", false},         // 5 digits
		{"123456789012345", true},  // 15 digits, upper bound
		{"1234567890123456", false}, // 16 digits
		{"+44 7911 123456", true},   // country code stripped
		{"+1 23456", false},         // 5 local digits after code
		{"(020) 7946-0958", true},
		{"+49 1512 3456789", true},
		{"phone", false},
		{"12345x6", false},
	}
	for _, tc := range cases {
		g := validGuest()
		g.Phone = tc.phone
		err := ValidateGuest(g)
		if tc.ok {
			assert.NoError(t, err, tc.phone)
		} else {
			assert.Error(t, err, tc.phone)
		}
	}
}

func TestValidateGuestTermsRequired(t *testing.T) {
	g := validGuest()
	g.AcceptedTerms = false
	err := ValidateGuest(g)
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "acceptedTerms", vErr.Field)
}

func TestValidateGuestNamesRequired(t *testing.T) {
	g := validGuest()
	g.FirstName = "  "
	assert.Error(t, ValidateGuest(g))

	g = validGuest()
	g.LastName = ""
	assert.Error(t, ValidateGuest(g))
}
