package collection

import (
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"10", 10},
		{" 10 ", 10},
		{"10.0", 10},
		{"1e1", 10},
		{"", 0},
		{"ten", 0},
		{"9.5", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1999", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.input))
		})
	}
}

func TestDecodeCoercesNumbers(t *testing.T) {
	raw := `{
		"books": [
			{"title":"Text","author":"A","year":"2001","comment":"c","rating":"10"},
			{"title":"Number","author":"A","year":2001,"comment":"c","rating":10},
			{"title":"Junk","author":null,"year":"soon","comment":7,"rating":"great"}
		],
		"movies": null
	}`

	c, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, []domain.Entry{
		{Title: "Text", Creator: "A", Year: 2001, Comment: "c", Rating: 10},
		{Title: "Number", Creator: "A", Year: 2001, Comment: "c", Rating: 10},
		{Title: "Junk", Creator: "", Year: 0, Comment: "7", Rating: 0},
	}, c.Books)
	assert.Empty(t, c.Movies)
	assert.NotNil(t, c.Movies)
}

func TestDecodeMalformed(t *testing.T) {
	c, err := Decode("not json")
	assert.ErrorIs(t, err, domain.ErrStorageDecode)
	assert.Equal(t, domain.EmptyCollection(), c)
}

func TestEncodeWritesText(t *testing.T) {
	raw, err := Encode(domain.Collection{
		Books: []domain.Entry{{Title: "Dune", Creator: "Herbert", Year: 1965, Comment: "", Rating: 10}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"books": [{"title":"Dune","author":"Herbert","year":"1965","comment":"","rating":"10"}],
		"movies": []
	}`, raw)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "", FormatNumber(0))
	assert.Equal(t, "7", FormatNumber(7))
}
