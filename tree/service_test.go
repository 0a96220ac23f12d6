package tree

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestdotland/nest-analyzer/extract"
	"github.com/nestdotland/nest-analyzer/fetch"
	"github.com/nestdotland/nest-analyzer/location"
)

const baseURL = "https://example.com/mod/"

var errNotFound = errors.New("not found")

// graph maps module names to their import specifiers, missing modules fail to fetch
type graph map[string][]string

type fakeSource struct {
	graph   graph
	delay   time.Duration
	mux     sync.Mutex
	fetched map[string]int
	active  int32
	peak    int32
}

func newFakeSource(g graph) *fakeSource {
	return &fakeSource{graph: g, fetched: map[string]int{}}
}

func (f *fakeSource) fetch(ctx context.Context, loc string) (string, error) {
	active := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if active <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, active) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mux.Lock()
	f.fetched[loc]++
	f.mux.Unlock()
	deps, ok := f.graph[strings.TrimPrefix(loc, baseURL)]
	if !ok {
		return "", errNotFound
	}
	return strings.Join(deps, "\n"), nil
}

func (f *fakeSource) service() *Service {
	return New(fetch.Func(f.fetch), extract.Func(func(source string) ([]string, error) {
		if source == "" {
			return nil, nil
		}
		return strings.Split(source, "\n"), nil
	}))
}

// render prints node as name(child,child), sentinels use their display form
func render(node *Node) string {
	ret := strings.TrimPrefix(node.Path(), baseURL)
	children := node.Children()
	if len(children) == 0 {
		return ret
	}
	items := make([]string, len(children))
	for i, child := range children {
		items[i] = render(child)
	}
	return ret + "(" + strings.Join(items, ",") + ")"
}

func sentinels(t *testing.T, result *Result, kind Kind) int {
	unique := map[*Sentinel]bool{}
	err := result.Tree.Walk(func(node *Node, depth int, last bool) (bool, error) {
		if node.Sentinel != nil && node.Sentinel.Kind == kind {
			unique[node.Sentinel] = true
		}
		return true, nil
	})
	require.NoError(t, err)
	return len(unique)
}

func TestService_Build(t *testing.T) {
	var useCases = []struct {
		description    string
		graph          graph
		fullTree       bool
		expect         string
		expectCount    int
		expectCircular bool
		expectErrors   []string
	}{
		{
			description: "module without imports",
			graph:       graph{"root.js": nil},
			expect:      "root.js",
		},
		{
			description: "acyclic graph without duplicates",
			graph: graph{
				"root.js":  {"./a.js", "./lib/b.js"},
				"a.js":     {"./c.js"},
				"lib/b.js": {"../d.js"},
				"c.js":     nil,
				"d.js":     nil,
			},
			expect:      "root.js(a.js(c.js),lib/b.js(d.js))",
			expectCount: 4,
		},
		{
			description: "shared dependency is redundant on its second discovery",
			graph: graph{
				"root.js": {"./a.js", "./b.js"},
				"a.js":    {"./b.js"},
				"b.js":    nil,
			},
			expect:      "root.js(a.js(b.js([Redundant])),b.js)",
			expectCount: 2,
		},
		{
			description: "import back to root is circular",
			graph: graph{
				"root.js": {"./a.js"},
				"a.js":    {"./root.js"},
			},
			expect:         "root.js(a.js(root.js([Circular])))",
			expectCount:    1,
			expectCircular: true,
		},
		{
			description: "indirect cycle",
			graph: graph{
				"root.js": {"./a.js"},
				"a.js":    {"./b.js"},
				"b.js":    {"./a.js"},
			},
			expect:         "root.js(a.js(b.js(a.js([Circular]))))",
			expectCount:    2,
			expectCircular: true,
		},
		{
			description: "self import in summary mode is redundant",
			graph: graph{
				"root.js": {"./a.js"},
				"a.js":    {"./a.js"},
			},
			expect:      "root.js(a.js(a.js([Redundant])))",
			expectCount: 1,
		},
		{
			description: "self import in full tree mode is circular",
			graph: graph{
				"root.js": {"./a.js"},
				"a.js":    {"./a.js"},
			},
			fullTree:       true,
			expect:         "root.js(a.js(a.js([Circular])))",
			expectCount:    1,
			expectCircular: true,
		},
		{
			description: "full tree repeats shared subtree",
			graph: graph{
				"root.js": {"./a.js", "./b.js"},
				"a.js":    {"./b.js"},
				"b.js":    {"./c.js"},
				"c.js":    nil,
			},
			fullTree:    true,
			expect:      "root.js(a.js(b.js(c.js)),b.js(c.js))",
			expectCount: 3,
		},
		{
			description: "failed fetch becomes error leaf",
			graph: graph{
				"root.js": {"./a.js", "./missing.js"},
				"a.js":    nil,
			},
			expect:       "root.js(a.js,missing.js([Error: not found]))",
			expectCount:  2,
			expectErrors: []string{baseURL + "missing.js"},
		},
		{
			description: "malformed specifier fails its node only",
			graph: graph{
				"root.js": {"./a.js", "./b.js"},
				"a.js":    {"./ok.js", "%zz"},
				"b.js":    nil,
				"ok.js":   nil,
			},
			expect:       `root.js(a.js([Error: location: failed to parse "%zz": parse "%zz": invalid URL escape "%zz"]),b.js)`,
			expectCount:  2,
			expectErrors: []string{baseURL + "a.js"},
		},
		{
			description: "duplicated specifier within one module",
			graph: graph{
				"root.js": {"./a.js", "./a.js"},
				"a.js":    nil,
			},
			expect:      "root.js(a.js,a.js([Redundant]))",
			expectCount: 1,
		},
	}

	for _, useCase := range useCases {
		source := newFakeSource(useCase.graph)
		var found, resolved int
		result, err := source.service().Build(context.Background(), baseURL+"root.js", WithFullTree(useCase.fullTree),
			WithOnDependencyFound(func(count int) { found = count }),
			WithOnDependencyResolved(func(count int) { resolved = count }),
		)
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		require.Len(t, result.Tree, 1, useCase.description)
		assert.Equal(t, useCase.expect, render(result.Tree.Root()), useCase.description)
		assert.Equal(t, useCase.expectCount, result.Count, useCase.description)
		assert.Equal(t, useCase.expectCircular, result.Circular, useCase.description)
		var failed []string
		for _, failure := range result.Errors {
			failed = append(failed, failure.Location)
		}
		assert.Equal(t, useCase.expectErrors, failed, useCase.description)
		assert.Equal(t, found, resolved, useCase.description)
	}
}

func TestService_Build_FetchesOnce(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js", "./b.js", "./c.js"},
		"a.js":    {"./c.js", "./d.js"},
		"b.js":    {"./c.js", "./d.js"},
		"c.js":    {"./d.js"},
		"d.js":    nil,
	})
	result, err := source.service().Build(context.Background(), baseURL+"root.js")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Count)
	assert.Len(t, source.fetched, 5)
	for loc, count := range source.fetched {
		assert.Equal(t, 1, count, loc)
	}
	assert.Equal(t, 4, sentinels(t, result, KindRedundant))
}

func TestService_Build_FullTreeSharesImports(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js", "./b.js"},
		"a.js":    {"./b.js"},
		"b.js":    {"./c.js"},
		"c.js":    nil,
	})
	result, err := source.service().Build(context.Background(), baseURL+"root.js", WithFullTree(true))
	require.NoError(t, err)
	root := result.Tree.Root()
	viaRoot := root.Children()[1]
	viaA := root.Children()[0].Children()[0]
	assert.Equal(t, baseURL+"b.js", viaRoot.Location)
	assert.Equal(t, baseURL+"b.js", viaA.Location)
	assert.Same(t, viaRoot.Imports, viaA.Imports)
	assert.Equal(t, 1, viaA.Imports.Len())
}

func TestService_Build_MutualImports(t *testing.T) {
	g := graph{
		"root.js": {"./a.js", "./b.js"},
		"a.js":    {"./b.js"},
		"b.js":    {"./a.js"},
	}

	t.Run("full tree", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			result, err := newFakeSource(g).service().Build(context.Background(), baseURL+"root.js", WithFullTree(true))
			require.NoError(t, err)
			assert.True(t, result.Circular)
			assert.Equal(t, 2, result.Count)
			assert.Equal(t, 1, sentinels(t, result, KindCircular))
		}
	})

	t.Run("summary", func(t *testing.T) {
		result, err := newFakeSource(g).service().Build(context.Background(), baseURL+"root.js")
		require.NoError(t, err)
		assert.False(t, result.Circular)
		assert.Equal(t, 2, result.Count)
		assert.Equal(t, 2, sentinels(t, result, KindRedundant))
		assert.Equal(t, "root.js(a.js(b.js([Redundant])),b.js(a.js([Redundant])))", render(result.Tree.Root()))
	})
}

func TestService_Build_Callbacks(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js", "./b.js", "./c.js"},
		"a.js":    {"./b.js", "./c.js"},
		"b.js":    {"./c.js", "./missing.js"},
		"c.js":    nil,
	})
	var found, resolved []int
	result, err := source.service().Build(context.Background(), baseURL+"root.js",
		WithOnDependencyFound(func(count int) { found = append(found, count) }),
		WithOnDependencyResolved(func(count int) { resolved = append(resolved, count) }),
	)
	require.NoError(t, err)
	expect := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, expect, found)
	assert.Equal(t, expect, resolved)
	assert.Len(t, result.Errors, 1)
}

func TestService_Build_CallbacksWithMalformedSpecifier(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js"},
		"a.js":    {"./ok.js", "%zz"},
		"ok.js":   nil,
	})
	var found, resolved []int
	result, err := source.service().Build(context.Background(), baseURL+"root.js",
		WithOnDependencyFound(func(count int) { found = append(found, count) }),
		WithOnDependencyResolved(func(count int) { resolved = append(resolved, count) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, found)
	assert.Equal(t, []int{1}, resolved)
	assert.Equal(t, 1, result.Count)
	assert.Zero(t, source.fetched[baseURL+"ok.js"])
}

func TestService_Build_Root(t *testing.T) {
	t.Run("malformed root", func(t *testing.T) {
		result, err := newFakeSource(graph{}).service().Build(context.Background(), "https://[::1/root.js")
		require.Error(t, err)
		assert.Nil(t, result)
		parseErr := &location.ParseError{}
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("unavailable root", func(t *testing.T) {
		result, err := newFakeSource(graph{}).service().Build(context.Background(), baseURL+"root.js")
		require.NoError(t, err)
		assert.Equal(t, "root.js([Error: not found])", render(result.Tree.Root()))
		require.Len(t, result.Errors, 1)
		assert.Equal(t, baseURL+"root.js", result.Errors[0].Location)
		assert.ErrorIs(t, result.Errors[0], errNotFound)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("extraction failure", func(t *testing.T) {
		service := New(fetch.Func(func(ctx context.Context, loc string) (string, error) {
			return "import", nil
		}), extract.Func(func(source string) ([]string, error) {
			return nil, errors.New("unexpected end of input")
		}))
		result, err := service.Build(context.Background(), baseURL+"root.js")
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		extractErr := &extract.ExtractionError{}
		require.True(t, errors.As(result.Errors[0], &extractErr))
		assert.Equal(t, baseURL+"root.js", extractErr.Location)
	})
}

func TestService_Build_Concurrency(t *testing.T) {
	g := graph{"root.js": nil}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		g["root.js"] = append(g["root.js"], "./"+name+".js")
		g[name+".js"] = nil
	}
	source := newFakeSource(g)
	source.delay = 10 * time.Millisecond
	result, err := source.service().Build(context.Background(), baseURL+"root.js", WithConcurrency(2))
	require.NoError(t, err)
	assert.Equal(t, 8, result.Count)
	assert.LessOrEqual(t, atomic.LoadInt32(&source.peak), int32(2))
}

func TestResult_Locations(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js", "./b.js"},
		"a.js":    {"./b.js"},
		"b.js":    nil,
	})
	result, err := source.service().Build(context.Background(), baseURL+"root.js")
	require.NoError(t, err)
	expect := []string{baseURL + "root.js", baseURL + "a.js", baseURL + "b.js"}
	for i := 0; i < 2; i++ {
		var actual []string
		for loc := range result.Locations() {
			actual = append(actual, loc)
		}
		assert.Equal(t, expect, actual)
	}
}

func TestTree_Walk(t *testing.T) {
	source := newFakeSource(graph{
		"root.js": {"./a.js", "./b.js"},
		"a.js":    {"./c.js"},
		"b.js":    nil,
		"c.js":    nil,
	})
	result, err := source.service().Build(context.Background(), baseURL+"root.js")
	require.NoError(t, err)

	var visited []string
	err = result.Tree.Walk(func(node *Node, depth int, last bool) (bool, error) {
		visited = append(visited, strings.Repeat(".", depth)+strings.TrimPrefix(node.Path(), baseURL))
		return node.Location != baseURL+"a.js", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"root.js", ".a.js", ".b.js"}, visited)
}
