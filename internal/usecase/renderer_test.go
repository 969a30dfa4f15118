package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/naka-gawa/standups-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlainRenderer_RenderAuthor(t *testing.T) {
	testCases := []struct {
		name     string
		report   *domain.AuthorReport
		lookups  map[string]string
		prefix   string
		expected string
	}{
		{
			name:    "lines followed by issue links",
			report:  &domain.AuthorReport{Author: "bob", Lines: []string{"Fixed bug 54321 today"}},
			lookups: map[string]string{"54321": "Slow startup"},
			expected: "\n## bob ##\n" +
				"  * Fixed bug 54321 today\n" +
				"\n" +
				"  * https://bugzil.la/54321 Slow startup\n",
		},
		{
			name: "issues are deduplicated and string sorted",
			report: &domain.AuthorReport{Author: "alice", Lines: []string{
				"Bug 99999 landed",
				"Review bug 100000 and bug 99999",
			}},
			lookups: map[string]string{"99999": "Nine", "100000": "Hundred"},
			expected: "\n## alice ##\n" +
				"  * Bug 99999 landed\n" +
				"  * Review bug 100000 and bug 99999\n" +
				"\n" +
				"  * https://bugzil.la/100000 Hundred\n" +
				"  * https://bugzil.la/99999 Nine\n",
		},
		{
			name:     "no issues means no separator",
			report:   &domain.AuthorReport{Author: "carol", Lines: []string{"Meetings"}},
			expected: "\n## carol ##\n  * Meetings\n",
		},
		{
			name:     "custom link prefix",
			report:   &domain.AuthorReport{Author: "dave", Lines: []string{"Bug 7"}},
			lookups:  map[string]string{"7": "Typo"},
			prefix:   "https://github.com/o/r/issues/",
			expected: "\n## dave ##\n  * Bug 7\n\n  * https://github.com/o/r/issues/7 Typo\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := new(mockLookup)
			for id, summary := range tc.lookups {
				lookup.On("Describe", mock.Anything, id).Return(summary, nil).Once()
			}
			var buf bytes.Buffer

			err := NewPlainRenderer(lookup, tc.prefix).RenderAuthor(context.Background(), &buf, tc.report)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, buf.String())
			lookup.AssertExpectations(t)
		})
	}
}

func TestWikiRenderer_RenderAuthor(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Describe", mock.Anything, "100").Return("First", nil).Once()
	lookup.On("Describe", mock.Anything, "54321").Return("Second", nil).Once()
	report := &domain.AuthorReport{Author: "bob", Lines: []string{
		"Bug 54321 and bug 100",
		"Fixed bug 54321",
		"Meetings",
	}}
	var buf bytes.Buffer

	err := NewWikiRenderer(lookup).RenderAuthor(context.Background(), &buf, report)

	require.NoError(t, err)
	assert.Equal(t, "\n== bob ==\n"+
		"* {{100}} First\n"+
		"** Bug 54321 and bug 100\n"+
		"* {{54321}} Second\n"+
		"** Bug 54321 and bug 100\n"+
		"** Fixed bug 54321\n", buf.String())
	lookup.AssertExpectations(t)
}

func TestRenderers_LinesWithoutIssues(t *testing.T) {
	lookup := new(mockLookup)
	report := &domain.AuthorReport{Author: "carol", Lines: []string{"Team meeting"}}

	var wiki bytes.Buffer
	require.NoError(t, NewWikiRenderer(lookup).RenderAuthor(context.Background(), &wiki, report))
	assert.Equal(t, "\n== carol ==\n", wiki.String())

	var plain bytes.Buffer
	require.NoError(t, NewPlainRenderer(lookup, "").RenderAuthor(context.Background(), &plain, report))
	assert.Contains(t, plain.String(), "  * Team meeting\n")

	lookup.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
}

func TestRenderers_LookupFailure(t *testing.T) {
	report := &domain.AuthorReport{Author: "bob", Lines: []string{"Bug 1"}}
	lookupErr := &domain.LookupError{Op: "describe bug", ID: "1", Err: errors.New("no such bug")}

	renderers := map[string]func(l *mockLookup) Renderer{
		"plain": func(l *mockLookup) Renderer { return NewPlainRenderer(l, "") },
		"wiki":  func(l *mockLookup) Renderer { return NewWikiRenderer(l) },
	}
	for name, newRenderer := range renderers {
		t.Run(name, func(t *testing.T) {
			lookup := new(mockLookup)
			lookup.On("Describe", mock.Anything, "1").Return("", lookupErr)
			var buf bytes.Buffer

			err := newRenderer(lookup).RenderAuthor(context.Background(), &buf, report)

			var target *domain.LookupError
			assert.ErrorAs(t, err, &target)
			assert.Equal(t, "1", target.ID)
		})
	}
}

func TestRenderers_Trailer(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, NewPlainRenderer(nil, "").RenderTrailer(&plain))
	assert.Equal(t, "\n\n\n"+Attribution+"\n", plain.String())

	var wiki bytes.Buffer
	require.NoError(t, NewWikiRenderer(nil).RenderTrailer(&wiki))
	assert.Equal(t, "\n\n<small>\n"+Attribution+"\n</small>\n", wiki.String())
}
