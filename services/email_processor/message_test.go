package email_processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DecodesHeaders(t *testing.T) {
	// Arrange
	raw := "From: =?UTF-8?Q?Mar=C3=ADa?= <maria@empresa.es>\r\n" +
		"To: me@example.com\r\n" +
		"Subject: =?UTF-8?B?Y2Fmw6k=?= jobs\r\n" +
		"Date: Mon, 10 Mar 2025 09:30:45 +0000\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"body\r\n"

	// Act
	parsed, err := Parse([]byte(raw))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "café jobs", parsed.Subject)
	assert.Equal(t, "María <maria@empresa.es>", parsed.From)
	assert.Equal(t, "2025-03-10 09:30:45", parsed.Date)
}

func TestParse_MissingHeadersStayEmpty(t *testing.T) {
	// Arrange
	raw := "To: me@example.com\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"body\r\n"

	// Act
	parsed, err := Parse([]byte(raw))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Subject)
	assert.Equal(t, "", parsed.From)
	assert.Equal(t, "", parsed.Date)
}

func TestParse_UnparseableDateKeptVerbatim(t *testing.T) {
	// Arrange
	raw := "From: a@b.com\r\n" +
		"Subject: hi\r\n" +
		"Date: not a date at all\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"body\r\n"

	// Act
	parsed, err := Parse([]byte(raw))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "not a date at all", parsed.Date)
}
