package entities

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersonName(t *testing.T) {
	t.Run("accepts letters and spaces", func(t *testing.T) {
		name, err := NewPersonName("abcxyz ABCXYZ")
		require.NoError(t, err)
		assert.Equal(t, "abcxyz ABCXYZ", name.String())
	})

	t.Run("accepts exactly the limit", func(t *testing.T) {
		raw := strings.Repeat("x", MaxPersonNameLength)
		name, err := NewPersonName(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, name.String())
	})

	t.Run("accepts the empty string", func(t *testing.T) {
		_, err := NewPersonName("")
		assert.NoError(t, err)
	})

	t.Run("preserves case and whitespace", func(t *testing.T) {
		name, err := NewPersonName("  jAnE   austen ")
		require.NoError(t, err)
		assert.Equal(t, "  jAnE   austen ", name.String())
	})

	t.Run("rejects one over the limit", func(t *testing.T) {
		_, err := NewPersonName(strings.Repeat("x", MaxPersonNameLength+1))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("rejects digits regardless of length", func(t *testing.T) {
		_, err := NewPersonName("abcxyz ABCXYZ 012789")
		assert.ErrorIs(t, err, ErrInvalidCharset)

		_, err = NewPersonName(strings.Repeat("x", 300) + "1")
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})

	t.Run("rejects non ASCII letters", func(t *testing.T) {
		_, err := NewPersonName("José")
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})

	t.Run("reports a validation error", func(t *testing.T) {
		_, err := NewPersonName("R2D2")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "person_name", verr.Field)
	})
}

func TestNewBookName(t *testing.T) {
	t.Run("accepts any character", func(t *testing.T) {
		raw := "abcxyz ABCXYZ 012789 ,!?([{ 👍"
		name, err := NewBookName(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, name.String())
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		raw := strings.Repeat("é", MaxBookNameLength)
		_, err := NewBookName(raw)
		assert.NoError(t, err)
	})

	t.Run("rejects one over the limit", func(t *testing.T) {
		_, err := NewBookName(strings.Repeat("x", MaxBookNameLength+1))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		_, err := NewBookName("bad \xff byte")
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})
}

func TestNewEditorName(t *testing.T) {
	t.Run("accepts ASCII punctuation and digits", func(t *testing.T) {
		_, err := NewEditorName("abcxyz ABCXYZ 012789 ,!?([{")
		assert.NoError(t, err)
	})

	t.Run("accepts exactly the limit", func(t *testing.T) {
		_, err := NewEditorName(strings.Repeat("x", MaxEditorNameLength))
		assert.NoError(t, err)
	})

	t.Run("rejects one over the limit", func(t *testing.T) {
		_, err := NewEditorName(strings.Repeat("x", MaxEditorNameLength+1))
		assert.ErrorIs(t, err, ErrTooLong)
	})

	t.Run("rejects non ASCII", func(t *testing.T) {
		_, err := NewEditorName("abcxyz ABCXYZ 012789 ,!?([{ 👍")
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})
}

func TestNewPersonDocument(t *testing.T) {
	t.Run("accepts eleven digits", func(t *testing.T) {
		doc, err := NewPersonDocument("12345678901")
		require.NoError(t, err)
		assert.Equal(t, "12345678901", doc.String())
	})

	t.Run("rejects ten digits", func(t *testing.T) {
		_, err := NewPersonDocument(strings.Repeat("0", 10))
		assert.ErrorIs(t, err, ErrWrongSize)
	})

	t.Run("rejects twelve digits", func(t *testing.T) {
		_, err := NewPersonDocument(strings.Repeat("0", 12))
		assert.ErrorIs(t, err, ErrWrongSize)
	})

	t.Run("rejects a letter", func(t *testing.T) {
		_, err := NewPersonDocument("a0000000000")
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})
}

func TestTextValues_JSON(t *testing.T) {
	t.Run("marshals as a plain string", func(t *testing.T) {
		name, err := NewPersonName("Jane Austen")
		require.NoError(t, err)

		data, err := json.Marshal(name)
		require.NoError(t, err)
		assert.JSONEq(t, `"Jane Austen"`, string(data))
	})

	t.Run("unmarshal validates", func(t *testing.T) {
		var doc PersonDocument
		err := json.Unmarshal([]byte(`"123"`), &doc)
		assert.ErrorIs(t, err, ErrWrongSize)

		err = json.Unmarshal([]byte(`"12345678901"`), &doc)
		require.NoError(t, err)
		assert.Equal(t, "12345678901", doc.String())
	})
}

func TestTextValues_Scan(t *testing.T) {
	t.Run("accepts string and bytes", func(t *testing.T) {
		var editor EditorName
		require.NoError(t, editor.Scan("Murray"))
		assert.Equal(t, "Murray", editor.String())

		var book BookName
		require.NoError(t, book.Scan([]byte("Emma")))
		assert.Equal(t, "Emma", book.String())
	})

	t.Run("flags values that no longer validate", func(t *testing.T) {
		var name PersonName
		err := name.Scan("Agent 47")
		assert.ErrorIs(t, err, ErrCorruptValue)
		assert.ErrorIs(t, err, ErrInvalidCharset)
	})

	t.Run("flags NULL", func(t *testing.T) {
		var doc PersonDocument
		assert.ErrorIs(t, doc.Scan(nil), ErrCorruptValue)
	})

	t.Run("value round trips", func(t *testing.T) {
		doc, err := NewPersonDocument("00000000000")
		require.NoError(t, err)

		v, err := doc.Value()
		require.NoError(t, err)

		var scanned PersonDocument
		require.NoError(t, scanned.Scan(v))
		assert.Equal(t, doc, scanned)
	})
}
