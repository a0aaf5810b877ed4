package goquery_test

import (
	"slices"
	"testing"

	"github.com/fwojciec/idscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plcPage = `<!DOCTYPE html>
<html>
<head>
	<title>Boiler status</title>
	<style>#t1 { color: red; }</style>
	<script>var updated = "1999-01-01 00:00:00";</script>
</head>
<body>
<!-- generated 2000-01-01 00:00:00 -->
<h1>Status</h1>
<table>
	<tr><td>Supply</td><td id="t1">21.5</td></tr>
	<tr><td>Return</td><td id="t2"><b>19</b>.8</td></tr>
	<tr><td>Pressure</td><td id="p1">nan</td></tr>
	<tr><td>Flow</td><td id="f1"></td></tr>
	<tr><td>Level</td><td id="l1"> 3 m </td></tr>
</table>
<p id="t1">duplicate</p>
<p>Last update: <span id="updated">2024-01-10 13:45:00</span></p>
</body>
</html>`

func TestPage_Lookup(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser().Parse(plcPage)
	require.NoError(t, err)

	t.Run("returns text of matching elements in request order", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"updated", "t1"})

		assert.Equal(t, []string{"updated", "t1"}, r.IDs())
		v, _ := r.Get("t1")
		assert.Equal(t, "21.5", v)
		v, _ = r.Get("updated")
		assert.Equal(t, "2024-01-10 13:45:00", v)
	})

	t.Run("concatenates descendant text", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"t2"})

		v, ok := r.Get("t2")
		require.True(t, ok)
		assert.Equal(t, "19.8", v)
	})

	t.Run("keeps surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"l1"})

		v, _ := r.Get("l1")
		assert.Equal(t, " 3 m ", v)
	})

	t.Run("uses first element with a repeated id", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"t1"})

		v, _ := r.Get("t1")
		assert.Equal(t, "21.5", v)
	})

	t.Run("omits null-like values", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"t1", "p1", "f1"})

		assert.Equal(t, []string{"t1"}, r.IDs())
		assert.Empty(t, r.Missing, "found elements are not missing")
	})

	t.Run("reports ids with no element as missing", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup([]string{"nope", "t1", "gone"})

		assert.Equal(t, []string{"t1"}, r.IDs())
		assert.Equal(t, []string{"nope", "gone"}, r.Missing)
		_, ok := r.Get("nope")
		assert.False(t, ok)
	})

	t.Run("empty id list yields empty result", func(t *testing.T) {
		t.Parallel()

		r := page.Lookup(nil)

		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Missing)
	})
}

func TestPage_Lookup_SkipsScriptStyleAndTemplate(t *testing.T) {
	t.Parallel()

	r, err := goquery.ExtractByIDs(`<div id="v">21.5<script>x=1</script><!--c--></div>
<p id="w">3.2<style>p{}</style><template>t</template> m/s</p>
<script id="s">var a = 1;</script>`, "v", "w", "s")
	require.NoError(t, err)

	v, _ := r.Get("v")
	assert.Equal(t, "21.5", v)
	w, _ := r.Get("w")
	assert.Equal(t, "3.2 m/s", w)
	s, _ := r.Get("s")
	assert.Equal(t, "var a = 1;", s)
}

func TestPage_Lookup_CustomNullValues(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser(goquery.WithNullValues("21.5")).Parse(plcPage)
	require.NoError(t, err)

	r := page.Lookup([]string{"t1", "p1", "f1"})

	assert.Equal(t, []string{"p1", "f1"}, r.IDs())
}

func TestPage_Strings(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser().Parse(plcPage)
	require.NoError(t, err)

	got := slices.Collect(page.Strings())

	assert.Equal(t, []string{
		"Boiler status",
		"Status",
		"Supply", "21.5",
		"Return", "19", ".8",
		"Pressure", "nan",
		"Flow",
		"Level", "3 m",
		"duplicate",
		"Last update:", "2024-01-10 13:45:00",
	}, got)
}

func TestPage_Strings_StopsEarly(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser().Parse(plcPage)
	require.NoError(t, err)

	var got []string
	for s := range page.Strings() {
		got = append(got, s)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"Boiler status", "Status"}, got)
}

func TestParser_Parse_Permissive(t *testing.T) {
	t.Parallel()

	page, err := goquery.NewParser().Parse(`<div id="a">one<span id="b">two</div>`)

	require.NoError(t, err)
	r := page.Lookup([]string{"a", "b"})
	assert.Equal(t, map[string]string{"a": "onetwo", "b": "two"}, r.Map())
}
