package directory

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInterests(t *testing.T) {
	assert.Equal(t, []string{"Machine Learning", "NLP"}, FormatInterests(" Machine Learning , , NLP "))
	assert.Nil(t, FormatInterests(""))
}

func TestDepartmentAbbreviation(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"Biology":                 "BIO",
		"CS":                      "CS",
		"Computer Science":        "CS",
		"electrical and computer": "EAC",
	}
	for in, want := range tests {
		assert.Equal(t, want, DepartmentAbbreviation(in), "DepartmentAbbreviation(%q)", in)
	}
}

func TestProfileColor(t *testing.T) {
	hexColor := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	c := ProfileColor("Ada Lovelace")
	assert.Regexp(t, hexColor, c)
	assert.Equal(t, c, ProfileColor("Ada Lovelace"))
	assert.NotEqual(t, c, ProfileColor("Alan Turing"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("grace.hopper@navy.mil"))
	assert.False(t, IsValidEmail("grace@localhost"))
	assert.False(t, IsValidEmail("@campus.edu"))
}
