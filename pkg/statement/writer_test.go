package statement

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_CanonicalColumnOrder(t *testing.T) {
	// Input column order was Ref.#,Date,Description,Amount; output always
	// uses the canonical order.
	records := []Record{
		{"Ref.#": "12345", "Date": "2024-03-04", "Description": "COFFEE SHOP", "Amount": "4.50"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{}))

	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,COFFEE SHOP,4.50,12345\n",
		buf.String())
}

func TestWrite_SortsDescendingByDefault(t *testing.T) {
	records := []Record{
		{"Date": "2024-01-02", "Description": "OLD", "Amount": "1.00", "Ref.#": "1"},
		{"Date": "2024-03-04", "Description": "NEW", "Amount": "2.00", "Ref.#": "2"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{}))

	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,NEW,2.00,2\n"+
			"2024-01-02,OLD,1.00,1\n",
		buf.String())
}

func TestWrite_SortIsStable(t *testing.T) {
	// Records with equal keys keep their input order.
	first := Record{"Date": "2024-03-04", "Description": "SAME", "Amount": "1.00", "Ref.#": "1", "Memo": "first"}
	second := Record{"Date": "2024-03-04", "Description": "SAME", "Amount": "1.00", "Ref.#": "1", "Memo": "second"}

	var buf bytes.Buffer
	opts := WriteOptions{Columns: []string{"Memo"}}
	require.NoError(t, Write(&buf, []Record{first, second}, opts))

	assert.Equal(t, "Memo\nfirst\nsecond\n", buf.String())
}

func TestWrite_InputOrder(t *testing.T) {
	records := []Record{
		{"Date": "2024-01-02", "Description": "OLD", "Amount": "1.00", "Ref.#": "1"},
		{"Date": "2024-03-04", "Description": "NEW", "Amount": "2.00", "Ref.#": "2"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{Order: SortInput}))

	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-01-02,OLD,1.00,1\n"+
			"2024-03-04,NEW,2.00,2\n",
		buf.String())
}

func TestWrite_DoesNotReorderInput(t *testing.T) {
	records := []Record{
		{"Date": "2024-01-02", "Description": "OLD", "Amount": "1.00", "Ref.#": "1"},
		{"Date": "2024-03-04", "Description": "NEW", "Amount": "2.00", "Ref.#": "2"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{}))

	assert.Equal(t, "OLD", records[0]["Description"])
}

func TestWrite_FilterBlanks(t *testing.T) {
	records := []Record{
		{"Date": "2024-03-04", "Description": "COFFEE SHOP", "Amount": "4.50", "Ref.#": "12345"},
		{"Date": "", "Description": "", "Amount": "", "Ref.#": ""},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{FilterBlanks: true}))
	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,COFFEE SHOP,4.50,12345\n",
		buf.String())

	// Default keeps blank rows.
	buf.Reset()
	require.NoError(t, Write(&buf, records, WriteOptions{}))
	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,COFFEE SHOP,4.50,12345\n"+
			",,,\n",
		buf.String())
}

func TestWrite_QuotesSpecialCharacters(t *testing.T) {
	records := []Record{
		{"Date": "2024-03-04", "Description": `SMITH, "JONES" & CO`, "Amount": "4.50", "Ref.#": "12345"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{}))

	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,\"SMITH, \"\"JONES\"\" & CO\",4.50,12345\n",
		buf.String())
}

func TestWrite_MissingColumnsEmitEmpty(t *testing.T) {
	records := []Record{
		{"Date": "2024-03-04", "Description": "COFFEE SHOP"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records, WriteOptions{}))

	assert.Equal(t,
		"Date,Description,Amount,Ref.#\n"+
			"2024-03-04,COFFEE SHOP,,\n",
		buf.String())
}

func TestWrite_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, WriteOptions{}))

	assert.Equal(t, "Date,Description,Amount,Ref.#\n", buf.String())
}
