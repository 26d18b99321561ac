package gitstatus

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/bral/lsnote/internal/fsinfo"
	"github.com/bral/lsnote/internal/gitcmd"
	"github.com/bral/lsnote/internal/types"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		code string
		want types.StatusKind
	}{
		{"??", types.StatusUntracked},
		{"!!", types.StatusIgnored},
		{" M", types.StatusModified},
		{" D", types.StatusModified},
		{" A", types.StatusModified},
		{"MM", types.StatusModified}, // working tree side wins over index side
		{"AM", types.StatusModified},
		{"M ", types.StatusStaged},
		{"A ", types.StatusStaged},
		{"D ", types.StatusStaged},
		{"R ", types.StatusStaged},
		{"C ", types.StatusStaged},
		{"RT", types.StatusStaged},
		{"UU", types.StatusClean},
		{"?!", types.StatusClean},
		{"  ", types.StatusClean},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			if got := Classify(tc.code[0], tc.code[1]); got != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.code, got, tc.want)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	valid := map[types.StatusKind]bool{
		types.StatusModified:  true,
		types.StatusStaged:    true,
		types.StatusUntracked: true,
		types.StatusIgnored:   true,
		types.StatusClean:     true,
	}
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			if got := Classify(byte(x), byte(y)); !valid[got] {
				t.Fatalf("Classify(%d, %d) returned unknown kind %q", x, y, got)
			}
		}
	}
}

func TestPropagate(t *testing.T) {
	root := filepath.FromSlash("/work/repo")
	p := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }

	testCases := []struct {
		name    string
		entries []types.StatusEntry
		want    types.StatusMap
	}{
		{
			name: "Modified beats staged in shared ancestors",
			entries: []types.StatusEntry{
				{X: 'A', Y: ' ', Path: "a.txt"},
				{X: ' ', Y: 'M', Path: "b/c.txt"},
			},
			want: types.StatusMap{
				p("a.txt"):   types.StatusStaged,
				p("b/c.txt"): types.StatusModified,
				p("b"):       types.StatusModified,
				root:         types.StatusModified,
			},
		},
		{
			name: "Lower priority never downgrades an ancestor",
			entries: []types.StatusEntry{
				{X: ' ', Y: 'M', Path: "src/x/one.go"},
				{X: '?', Y: '?', Path: "src/x/two.go"},
				{X: 'M', Y: ' ', Path: "src/three.go"},
			},
			want: types.StatusMap{
				p("src/x/one.go"): types.StatusModified,
				p("src/x/two.go"): types.StatusUntracked,
				p("src/three.go"): types.StatusStaged,
				p("src/x"):        types.StatusModified,
				p("src"):          types.StatusModified,
				root:              types.StatusModified,
			},
		},
		{
			name: "Equal priority keeps the first writer",
			entries: []types.StatusEntry{
				{X: '!', Y: '!', Path: "out/build.log"},
				{X: 'U', Y: 'U', Path: "out/conflict.txt"},
			},
			want: types.StatusMap{
				p("out/build.log"):    types.StatusIgnored,
				p("out/conflict.txt"): types.StatusClean,
				p("out"):              types.StatusIgnored,
				root:                  types.StatusIgnored,
			},
		},
		{
			name: "Ignored directory with trailing slash",
			entries: []types.StatusEntry{
				{X: '!', Y: '!', Path: "node_modules/"},
			},
			want: types.StatusMap{
				p("node_modules"): types.StatusIgnored,
				root:              types.StatusIgnored,
			},
		},
		{
			name: "Direct path status is overwritten by later lines",
			entries: []types.StatusEntry{
				{X: ' ', Y: 'M', Path: "dup.txt"},
				{X: 'A', Y: ' ', Path: "dup.txt"},
			},
			want: types.StatusMap{
				p("dup.txt"): types.StatusStaged,
				root:         types.StatusModified,
			},
		},
		{
			name:    "No entries",
			entries: nil,
			want:    types.StatusMap{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Propagate(root, tc.entries)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Propagate() mismatch (-want +got):\n%s", diff)
			}
			if _, ok := got[filepath.Dir(root)]; ok {
				t.Errorf("Propagate() recorded a path above the root: %s", filepath.Dir(root))
			}
		})
	}
}

func TestPropagateStopsAtSiblingPrefix(t *testing.T) {
	// "/work/repo-other" shares a string prefix with "/work/repo" but is not inside it.
	if within(filepath.FromSlash("/work/repo"), filepath.FromSlash("/work/repo-other")) {
		t.Error("within() treated a sibling directory as inside the root")
	}
	if !within(filepath.FromSlash("/"), filepath.FromSlash("/etc")) {
		t.Error("within() should accept children of the filesystem root")
	}
}

// mockGit swaps gitcmd.Runner for a function answering the three queries the resolver makes.
func mockGit(t *testing.T, answer func(args []string) (string, error)) (calls *int) {
	t.Helper()
	original := gitcmd.Runner
	n := 0
	gitcmd.Runner = func(_ context.Context, args ...string) (string, error) {
		n++
		return answer(args)
	}
	t.Cleanup(func() { gitcmd.Runner = original })
	return &n
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	canonical := fsinfo.Canonical(dir)

	t.Run("Not A Work Tree", func(t *testing.T) {
		calls := mockGit(t, func(args []string) (string, error) {
			return "", errors.New("fatal: not a git repository")
		})

		got := NewResolver(false, zerolog.Nop()).Resolve(ctx, dir)
		if len(got) != 0 {
			t.Errorf("Expected empty map outside a work tree, got %v", got)
		}
		if *calls != 1 {
			t.Errorf("Expected a single git call, got %d", *calls)
		}
	})

	t.Run("Resolves From Toplevel", func(t *testing.T) {
		root := filepath.Dir(canonical)
		rel, _ := filepath.Rel(root, canonical)
		rel = filepath.ToSlash(rel)

		mockGit(t, func(args []string) (string, error) {
			switch {
			case cmp.Equal(args, []string{"-C", canonical, "rev-parse", "--is-inside-work-tree"}):
				return "true\n", nil
			case cmp.Equal(args, []string{"-C", canonical, "rev-parse", "--show-toplevel"}):
				return root + "\n", nil
			case cmp.Equal(args, []string{"-C", root, "status", "--porcelain", "-uall"}):
				return "A  " + rel + "/a.txt\n M " + rel + "/b/c.txt\n", nil
			}
			t.Fatalf("unexpected git call %v", args)
			return "", nil
		})

		resolver := NewResolver(false, zerolog.Nop())
		first := resolver.Resolve(ctx, dir)

		want := types.StatusMap{
			filepath.Join(canonical, "a.txt"):      types.StatusStaged,
			filepath.Join(canonical, "b", "c.txt"): types.StatusModified,
			filepath.Join(canonical, "b"):          types.StatusModified,
			canonical:                              types.StatusModified,
			root:                                   types.StatusModified,
		}
		if diff := cmp.Diff(want, first); diff != "" {
			t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
		}

		second := resolver.Resolve(ctx, dir)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Resolve() is not idempotent (-first +second):\n%s", diff)
		}
	})

	t.Run("Toplevel Failure Falls Back To Directory", func(t *testing.T) {
		mockGit(t, func(args []string) (string, error) {
			switch args[3] {
			case "--is-inside-work-tree":
				return "true", nil
			case "--show-toplevel":
				return "", errors.New("boom")
			}
			if args[1] != canonical {
				t.Errorf("status should run in the directory itself, ran in %s", args[1])
			}
			return "?? new.txt\n", nil
		})

		got := NewResolver(false, zerolog.Nop()).Resolve(ctx, dir)
		want := types.StatusMap{
			filepath.Join(canonical, "new.txt"): types.StatusUntracked,
			canonical:                           types.StatusUntracked,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Status Failure Yields Empty Map", func(t *testing.T) {
		mockGit(t, func(args []string) (string, error) {
			switch args[3] {
			case "--is-inside-work-tree":
				return "true", nil
			case "--show-toplevel":
				return canonical, nil
			}
			return "", errors.New("status exploded")
		})

		if got := NewResolver(false, zerolog.Nop()).Resolve(ctx, dir); len(got) != 0 {
			t.Errorf("Expected empty map when status fails, got %v", got)
		}
	})

	t.Run("Ignored Flag Is Forwarded", func(t *testing.T) {
		var sawIgnored bool
		mockGit(t, func(args []string) (string, error) {
			switch args[3] {
			case "--is-inside-work-tree":
				return "true", nil
			case "--show-toplevel":
				return canonical, nil
			}
			sawIgnored = args[len(args)-1] == "--ignored"
			return "!! tmp/\n", nil
		})

		got := NewResolver(true, zerolog.Nop()).Resolve(ctx, dir)
		if !sawIgnored {
			t.Error("Expected --ignored to be passed to git status")
		}
		if got[filepath.Join(canonical, "tmp")] != types.StatusIgnored {
			t.Errorf("Expected tmp to be Ignored, got %v", got)
		}
	})
}
