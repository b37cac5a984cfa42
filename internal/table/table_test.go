package table

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "people.csv", "name,age\nalice,30\nbob,25\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, tbl.Header)
	assert.Equal(t, [][]string{{"alice", "30"}, {"bob", "25"}}, tbl.Rows)
	assert.Equal(t, 2, tbl.Width())
	assert.Equal(t, 2, tbl.Len())
}

func TestLoad_RaggedRowsKeptAsIs(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\n1\n1,2,3,4\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3", "4"}, tbl.Rows[1])
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.True(t, tbl.Empty())
	assert.Equal(t, 0, tbl.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n\"unterminated,1\n")

	_, err := Load(path)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Greater(t, pe.Line, 0)
}

func TestSave_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"simple", "name,age\nalice,30\nbob,25\n"},
		{"quoted", "name,quote\nalice,\"hello, world\"\nbob,\"say \"\"hi\"\"\"\n"},
		{"ragged", "a,b,c\n1\n1,2,3,4\n"},
		{"header only", "a,b\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeFile(t, "in.csv", tt.content)
			tbl, err := Load(src)
			require.NoError(t, err)

			dst := filepath.Join(t.TempDir(), "out.csv")
			require.NoError(t, Save(dst, tbl))

			got, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(got))
		})
	}
}

func TestSave_BadPath(t *testing.T) {
	tbl := &Table{Header: []string{"a"}}
	err := Save(filepath.Join(t.TempDir(), "missing", "dir", "out.csv"), tbl)

	var ioe *IOError
	require.True(t, errors.As(err, &ioe))
}

func TestWrite_PreservesOrder(t *testing.T) {
	tbl := &Table{
		Header: []string{"z", "a"},
		Rows:   [][]string{{"3", "1"}, {"2", "9"}},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tbl))
	assert.Equal(t, "z,a\n3,1\n2,9\n", buf.String())
}

func TestSetCell(t *testing.T) {
	tbl := &Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}, {"3"}},
	}

	assert.True(t, tbl.SetCell(0, 1, "x"))
	assert.Equal(t, "x", tbl.Rows[0][1])

	assert.False(t, tbl.SetCell(0, 1, "x"), "unchanged value")
	assert.False(t, tbl.SetCell(1, 1, "y"), "ragged row has no second cell")
	assert.False(t, tbl.SetCell(5, 0, "y"))
	assert.Equal(t, []string{"3"}, tbl.Rows[1])
}

func TestColumnKinds(t *testing.T) {
	rows := [][]string{
		{"alice", "30", "1.5", "true", ""},
		{"bob", "25", "2", "false", ""},
		{"carol", "", "3.25", "TRUE"},
	}
	kinds := ColumnKinds(rows, 5)
	assert.Equal(t, []Kind{KindString, KindInt, KindFloat, KindBool, KindString}, kinds)
	assert.Equal(t, "float", KindFloat.String())
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		value string
		want  Kind
	}{
		{"42", KindInt},
		{" -7 ", KindInt},
		{"3.5", KindFloat},
		{"1e3", KindFloat},
		{"False", KindBool},
		{"  ", KindEmpty},
		{"Nan", KindString},
		{"NaN", KindString},
		{"Inf", KindString},
		{"-inf", KindString},
		{"infinity", KindString},
		{"Paris", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectKind(tt.value))
		})
	}
}

func TestFormatRow(t *testing.T) {
	line, err := FormatRow([]string{"a", "b, c", `say "hi"`})
	require.NoError(t, err)
	assert.Equal(t, `a,"b, c","say ""hi"""`, line)
}
