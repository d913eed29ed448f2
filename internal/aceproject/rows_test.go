package aceproject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowsDatasetFormat(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="utf-8"?>
<NewDataSet>
  <Table>
    <USER_ID>42</USER_ID>
    <USERNAME>jdoe</USERNAME>
  </Table>
  <Table>
    <USER_ID>43</USER_ID>
    <USERNAME>jdoe2</USERNAME>
  </Table>
</NewDataSet>`)

	rows, err := parseRows(body)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "42", rows[0].Get("USER_ID"))
	assert.Equal(t, "jdoe", rows[0].Get("USERNAME"))
	assert.Equal(t, "43", rows[1].Get("USER_ID"))
}

func TestParseRowsAttributeFormat(t *testing.T) {
	body := []byte(`<NewDataSet>
  <row TIMESHEET_LINE_ID="77" DATE_WORKED="2025-03-10T00:00:00" TOTAL="4.5" COMMENT="demo"/>
  <row TIMESHEET_LINE_ID="78" DATE_WORKED="2025-03-11T00:00:00" TOTAL="8" COMMENT=""/>
</NewDataSet>`)

	rows, err := parseRows(body)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "77", rows[0].Get("TIMESHEET_LINE_ID"))
	assert.Equal(t, "4.5", rows[0].Get("TOTAL"))
	assert.False(t, rows[1].Has("COMMENT"), "empty attribute should read as absent")
}

func TestParseRowsSkipsSchema(t *testing.T) {
	body := []byte(`<DataSet>
  <schema id="NewDataSet"><element name="Table" type="string"/></schema>
  <NewDataSet>
    <Table><GUID>abc-def</GUID></Table>
  </NewDataSet>
</DataSet>`)

	rows, err := parseRows(body)
	require.NoError(t, err)
	guid, ok := findField(rows, "GUID")
	require.True(t, ok)
	assert.Equal(t, "abc-def", guid)
	_, ok = findField(rows, "name")
	assert.False(t, ok, "schema attributes must not surface as rows")
}

func TestParseRowsMalformed(t *testing.T) {
	_, err := parseRows([]byte(`<open><unclosed>`))
	assert.Error(t, err)
}

func TestRemoteErrorIn(t *testing.T) {
	rows := []Row{
		{"ERRORNUMBER": "113", "ERRORDESCRIPTION": "Invalid project"},
	}
	err := remoteErrorIn("saveworkitem", rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid project")

	assert.NoError(t, remoteErrorIn("saveworkitem", []Row{{"GUID": "x"}}))
}
