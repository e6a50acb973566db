package csvnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeaderDiscovery(t *testing.T) {
	n := New()

	t.Run("header after preamble", func(t *testing.T) {
		raw := "Survey Export 2024\n" +
			"Generated by: admin\n" +
			"\"Submitted Date\",\"First Name\",\"Q1\"\n" +
			"\"2024-01-01\",\"Jane\",\"Agree\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, []string{"Submitted Date", "First Name", "Q1"}, ds.Columns)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "Jane", ds.Records[0]["First Name"])
	})

	t.Run("header on first line", func(t *testing.T) {
		raw := "Submitted Date,Q1\n2024-01-01,Agree\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, []string{"Submitted Date", "Q1"}, ds.Columns)
		assert.Len(t, ds.Records, 1)
	})

	t.Run("no anchor anywhere", func(t *testing.T) {
		raw := "a,b,c\n1,2,3\n"

		ds, err := n.Normalize(raw)

		assert.ErrorIs(t, err, ErrHeaderNotFound)
		assert.Nil(t, ds)
	})

	t.Run("empty input", func(t *testing.T) {
		ds, err := n.Normalize("")

		assert.ErrorIs(t, err, ErrHeaderNotFound)
		assert.Nil(t, ds)
	})

	t.Run("custom anchors", func(t *testing.T) {
		custom := New(WithAnchors("Respondent"))
		raw := "banner\nRespondent,Q1\nJane,Agree\n"

		ds, err := custom.Normalize(raw)

		require.NoError(t, err)
		assert.Equal(t, []string{"Respondent", "Q1"}, ds.Columns)
	})
}

func TestNormalizeRowExtraction(t *testing.T) {
	n := New()

	t.Run("row count and key set", func(t *testing.T) {
		raw := "export banner\n" +
			"\"Submitted Date\",\"First Name\",\"Q1\"\n" +
			"\"2024-01-01\",\"Jane\",\"Strongly Agree\"\n" +
			"\"2024-01-02\",\"Sam\",\"Agree\"\n" +
			"\"2024-01-03\",\"Ada\",\"Neutral\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		require.Len(t, ds.Records, 3)
		for _, record := range ds.Records {
			assert.Len(t, record, 3)
			for _, column := range ds.Columns {
				assert.Contains(t, record, column)
			}
		}
	})

	t.Run("blank rows dropped silently", func(t *testing.T) {
		raw := "\"Submitted Date\",\"Q1\"\n" +
			"\"2024-01-01\",\"Agree\"\n" +
			"\"2024-01-02\",\"Disagree\"\n" +
			"\"\",\"  \"\n" +
			"\"2024-01-03\",\"Neutral\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		assert.Len(t, ds.Records, 3)
	})

	t.Run("short row padded with empty strings", func(t *testing.T) {
		raw := "\"Submitted Date\",\"First Name\",\"Q1\"\n" +
			"\"2024-01-01\",\"Jane\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "", ds.Records[0]["Q1"])
	})

	t.Run("extra cells ignored", func(t *testing.T) {
		raw := "\"Submitted Date\",\"Q1\"\n" +
			"\"2024-01-01\",\"Agree\",\"spillover\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		require.Len(t, ds.Records, 1)
		assert.Len(t, ds.Records[0], 2)
	})

	t.Run("source order preserved", func(t *testing.T) {
		raw := "\"Submitted Date\",\"Q1\"\n" +
			"\"2024-01-03\",\"Agree\"\n" +
			"\"2024-01-01\",\"Neutral\"\n" +
			"\"2024-01-02\",\"Disagree\"\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		require.Len(t, ds.Records, 3)
		assert.Equal(t, "2024-01-03", ds.Records[0]["Submitted Date"])
		assert.Equal(t, "2024-01-01", ds.Records[1]["Submitted Date"])
		assert.Equal(t, "2024-01-02", ds.Records[2]["Submitted Date"])
	})

	t.Run("crlf line endings", func(t *testing.T) {
		raw := "\"Submitted Date\",\"Q1\"\r\n\"2024-01-01\",\"Agree\"\r\n"

		ds, err := n.Normalize(raw)

		require.NoError(t, err)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, "Agree", ds.Records[0]["Q1"])
	})
}

func TestCleanCell(t *testing.T) {
	t.Run("strips exactly one quote layer", func(t *testing.T) {
		assert.Equal(t, `"abc"`, cleanCell(`""abc""`))
		assert.Equal(t, "abc", cleanCell(`"abc"`))
		assert.Equal(t, "abc", cleanCell("abc"))
	})

	t.Run("trims whitespace before stripping", func(t *testing.T) {
		assert.Equal(t, "abc", cleanCell(`  "abc"  `))
		assert.Equal(t, "", cleanCell("   "))
	})

	t.Run("unbalanced quotes stripped independently", func(t *testing.T) {
		assert.Equal(t, "abc", cleanCell(`"abc`))
		assert.Equal(t, "abc", cleanCell(`abc"`))
		assert.Equal(t, "", cleanCell(`"`))
	})
}

func TestNormalizeEndToEnd(t *testing.T) {
	raw := strings.Join([]string{
		"Export banner line",
		`"Submitted Date","First Name","Q1"`,
		`"2024-01-01","Jane","Strongly Agree"`,
		`"2024-01-02","Sam","Agree"`,
	}, "\n")

	ds, err := New().Normalize(raw)

	require.NoError(t, err)
	require.Len(t, ds.Records, 2)
	assert.Equal(t, "Strongly Agree", ds.Records[0]["Q1"])
	assert.Equal(t, "Agree", ds.Records[1]["Q1"])
}

func TestNormalizeIsStateless(t *testing.T) {
	n := New()
	raw := "\"Submitted Date\",\"Q1\"\n\"2024-01-01\",\"Agree\"\n"

	first, err := n.Normalize(raw)
	require.NoError(t, err)
	second, err := n.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
