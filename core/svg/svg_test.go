package svg_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlegateit/monolith/core/svg"
)

var suffixFormat = regexp.MustCompile(`^_[0-9a-f]{64}$`)

// fixedRandom returns a reader yielding n repetitions of b, enough for
// one sanitize cycle per 32 bytes.
func fixedRandom(b byte, n int) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, n))
}

func TestParse_InfersViewBox(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg width="24" height="24"><path d="M0 0h24v24H0z"/></svg>`)

	assert.Contains(t, s.Embed(), `viewBox="0 0 24 24"`)
}

func TestParse_KeepsExistingViewBox(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg width="24" height="24" viewBox="0 0 10 10"></svg>`)

	out := s.Embed()
	assert.Contains(t, out, `viewBox="0 0 10 10"`)
	assert.Equal(t, 1, len(regexp.MustCompile(`viewBox=`).FindAllString(out, -1)))
}

func TestParse_SkipsViewBoxWithoutDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
	}{
		{"no dimensions", `<svg><circle r="5"/></svg>`},
		{"width only", `<svg width="24"><circle r="5"/></svg>`},
		{"height only", `<svg height="24"><circle r="5"/></svg>`},
		{"empty width", `<svg width="" height="24"><circle r="5"/></svg>`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := svg.Parse(tt.markup)
			assert.NotContains(t, s.Embed(), "viewBox")
		})
	}
}

func TestParse_SuffixFormat(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg></svg>`)

	assert.Regexp(t, suffixFormat, s.Suffix())
}

func TestParse_SuffixesIdentifierAttributes(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg><path id="foo" class="icon"/><use xlink:href="#foo"/></svg>`)
	sfx := s.Suffix()

	out := s.Embed()
	assert.Contains(t, out, `id="foo`+sfx+`"`)
	assert.Contains(t, out, `class="icon`+sfx+`"`)
	assert.Contains(t, out, `xlink:href="#foo`+sfx+`"`)
}

func TestParse_SuffixesWholeClassValue(t *testing.T) {
	t.Parallel()

	// The suffix lands on the whole attribute value, not on each
	// space-separated token.
	s := svg.Parse(`<svg><path class="icon large"/></svg>`)

	assert.Contains(t, s.Embed(), `class="icon large`+s.Suffix()+`"`)
}

func TestParse_SkipsEmptyIdentifierAttributes(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg><path id="" class=""/></svg>`)

	out := s.Embed()
	assert.Contains(t, out, `id=""`)
	assert.Contains(t, out, `class=""`)
}

func TestParse_RewritesURLReferences(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg>` +
		`<linearGradient id="gradient1"/>` +
		`<rect fill="url(#gradient1)"/>` +
		`<circle fill="url('#gradient1')"/>` +
		`</svg>`)
	sfx := s.Suffix()

	out := s.Embed()

	// The element carrying the id and the references to it share one suffix.
	assert.Contains(t, out, `id="gradient1`+sfx+`"`)
	assert.Contains(t, out, `url(#gradient1`+sfx+`)`)
	assert.Contains(t, out, `#gradient1`+sfx) // quoted form rewritten too
}

func TestParse_RewritesStyleSelectors(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg><style>.icon { fill: red; } #mark, .other { stroke: blue; }</style></svg>`)
	sfx := s.Suffix()

	out := s.Embed()
	assert.Contains(t, out, `.icon`+sfx+` {`)
	assert.Contains(t, out, `#mark`+sfx+`,`)
	assert.Contains(t, out, `.other`+sfx+` {`)
}

func TestParse_LeavesOtherSelectorPositionsAlone(t *testing.T) {
	t.Parallel()

	// A selector followed by a combinator is outside the rewrite pattern.
	s := svg.Parse(`<svg><style>.a path { fill: red; }</style></svg>`)

	assert.Contains(t, s.Embed(), `.a path {`)
}

func TestParse_DeterministicRandomSource(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg><path id="p"/></svg>`, svg.WithRandom(fixedRandom(0xab, 32)))

	assert.Equal(t, "_"+repeatHex("ab", 32), s.Suffix())
	assert.Contains(t, s.Embed(), `id="p_`+repeatHex("ab", 32)+`"`)
}

func TestReset_GeneratesFreshSuffix(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg><path id="p"/></svg>`)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		sfx := s.Suffix()
		_, dup := seen[sfx]
		require.False(t, dup, "suffix repeated across cycles: %s", sfx)
		seen[sfx] = struct{}{}
		s.Reset()
	}
}

func TestReset_DiscardsMutations(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg width="24" height="24"><path fill="red"/></svg>`)
	s.RemoveAttributes("viewBox")
	s.RemoveStyles("fill")
	require.NotContains(t, s.Embed(), "viewBox")
	require.NotContains(t, s.Embed(), "fill")

	s.Reset()

	out := s.Embed()
	assert.Contains(t, out, `viewBox="0 0 24 24"`)
	assert.Contains(t, out, `fill="red"`)
}

func TestEmbedSourceCode_ReturnsOriginalBytes(t *testing.T) {
	t.Parallel()

	raw := `<svg width="24" height="24"><path id="foo" fill="red"/></svg>`
	s := svg.Parse(raw)
	s.RemoveAttributes("width", "height")
	s.RemoveStyles("fill")
	s.Reset()
	s.RemoveStyles("fill")

	assert.Equal(t, raw, s.EmbedSourceCode())
}

func TestEmbedSourceDOM_CarriesNoSanitization(t *testing.T) {
	t.Parallel()

	s := svg.Parse(`<svg width="24" height="24"><path id="foo"/></svg>`)

	out := s.EmbedSourceDOM()
	assert.Contains(t, out, `id="foo"`)
	assert.NotContains(t, out, "viewBox")
}

func TestParse_MalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		markup string
	}{
		{"unclosed tag", `<svg><path d="M0 0`},
		{"stray close", `</svg><svg></p>`},
		{"not markup", `just some text`},
		{"empty", ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s *svg.Sanitizer
			require.NotPanics(t, func() {
				s = svg.Parse(tt.markup)
				s.RemoveAttributes("viewBox")
				s.RemoveStyles("fill")
				s.Reset()
				_ = s.Embed()
			})
			assert.Equal(t, tt.markup, s.EmbedSourceCode())
		})
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "icon.svg")
	raw := `<svg width="16" height="16"><path id="p"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	s, err := svg.Load(path)
	require.NoError(t, err)

	assert.Equal(t, raw, s.EmbedSourceCode())
	assert.Contains(t, s.Embed(), `viewBox="0 0 16 16"`)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	s, err := svg.Load(filepath.Join(t.TempDir(), "missing.svg"))

	require.ErrorIs(t, err, svg.ErrFileNotFound)
	assert.Nil(t, s)

	// A nil sanitizer stays inert rather than panicking.
	assert.Empty(t, s.Embed())
	assert.Empty(t, s.EmbedSourceCode())
	assert.Empty(t, s.EmbedSourceDOM())
	assert.NotPanics(t, func() {
		s.Reset()
		s.RemoveAttributes("viewBox")
		s.RemoveStyles("fill")
	})
}

func TestParse_NoRootElement(t *testing.T) {
	t.Parallel()

	// Root-targeted operations become no-ops without an <svg> element.
	s := svg.Parse(`<g id="group"><path/></g>`)

	require.NotPanics(t, func() {
		s.RemoveAttributes("viewBox")
	})
	assert.NotContains(t, s.Embed(), "viewBox")
}

func repeatHex(pair string, n int) string {
	out := make([]byte, 0, len(pair)*n)
	for i := 0; i < n; i++ {
		out = append(out, pair...)
	}
	return string(out)
}
