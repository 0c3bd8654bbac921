package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	csvContent := "Price, Name ,bakery_id\n3.50,Croissant,1\n5,Cake,2\n"

	rows, err := parseCSV(strings.NewReader(csvContent))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].line)
	assert.Equal(t, "Croissant", rows[0].values.Get("name"))
	assert.Equal(t, "3.50", rows[0].values.Get("price"))
	assert.Equal(t, "1", rows[0].values.Get("bakery_id"))
	assert.Equal(t, 3, rows[1].line)
	assert.Equal(t, "Cake", rows[1].values.Get("name"))
}

func TestParseCSV_MissingColumn(t *testing.T) {
	_, err := parseCSV(strings.NewReader("name,price\nBun,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name, price, bakery_id")
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := parseCSV(strings.NewReader(""))
	assert.EqualError(t, err, "invalid CSV header")
}

func TestParseCSV_RaggedRow(t *testing.T) {
	_, err := parseCSV(strings.NewReader("name,price,bakery_id\nBun,1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSV read error")
}
