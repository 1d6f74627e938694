package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	entryID := "0190b5a2-14c3-7def-8000-0123456789ab"

	token := EncodeToken(transactionDate, entryID)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, transactionDate, decodedDate, "Transaction date should match after decode")
	assert.Equal(t, entryID, decodedID, "Entry ID should match after decode")

	// Zero time still round-trips.
	zeroToken := EncodeToken(time.Time{}, "id")
	decodedZeroDate, decodedZeroID, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, time.Time{}, decodedZeroDate)
	assert.Equal(t, "id", decodedZeroID)
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separator
	invalidToken := "MjAyNC0wNS0xNVQwMDowMDowMFo=" // encoded date without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split")

	// Invalid date portion
	invalidDateToken := "bm90YWRhdGV8ZW50cnktaWQ=" // encoded "notadate|entry-id"
	_, _, err = DecodeToken(invalidDateToken)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse")
}
