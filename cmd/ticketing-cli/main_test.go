package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/entity"
)

func TestQuoteCommand(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run([]string{
		"ticketing-cli", "quote",
		"--account-id", "123",
		"--ticket", "ADULT=2",
		"--ticket", "child=1",
		"--ticket", "INFANT=1",
	})
	require.NoError(t, err)

	assert.Equal(t, "total seats: 3\ntotal cost: 50\n", out.String())
}

func TestQuoteCommand_invalid_purchase(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run([]string{"ticketing-cli", "quote", "--account-id", "123", "--ticket", "ADULT=21"})
	assert.ErrorIs(t, err, entity.ErrInvalidPurchase)
	assert.Empty(t, out.String())
}

func TestParseTicketTypeRequests(t *testing.T) {
	requests, err := parseTicketTypeRequests([]string{"ADULT=2", "infant = 1"})
	require.NoError(t, err)
	assert.Equal(t, []entity.TicketTypeRequest{
		entity.NewTicketTypeRequest(entity.TicketTypeAdult, 2),
		entity.NewTicketTypeRequest(entity.TicketTypeInfant, 1),
	}, requests)

	for _, invalid := range []string{"ADULT", "SENIOR=1", "CHILD=two"} {
		_, err := parseTicketTypeRequests([]string{invalid})
		assert.Error(t, err, invalid)
	}
}
