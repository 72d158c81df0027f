package sheaf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sheaflearn/sheaf"
)

// namedPatches builds bare named patches; Components only reads names and
// gluings, so samples are irrelevant here.
func namedPatches(names ...string) []sheaf.Patch {
	patches := make([]sheaf.Patch, len(names))
	for i, n := range names {
		patches[i] = sheaf.Patch{Name: n, Config: scalarCfg}
	}

	return patches
}

// glue builds a structural gluing between two names.
func glue(a, b string) sheaf.GluingConstraint {
	return sheaf.GluingConstraint{Patch1: a, Patch2: b, ConstraintData1: seq(1), ConstraintData2: seq(1)}
}

// TestComponents_NoGluings yields one singleton per patch, in declaration
// order.
func TestComponents_NoGluings(t *testing.T) {
	p := sheaf.Problem{Patches: namedPatches("a", "b", "c")}
	require.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, p.Components())
}

// TestComponents_Chain links a-b-c into one component and leaves d alone.
func TestComponents_Chain(t *testing.T) {
	p := sheaf.Problem{
		Patches: namedPatches("a", "b", "c", "d"),
		Gluings: []sheaf.GluingConstraint{glue("a", "b"), glue("b", "c")},
	}
	require.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, p.Components())
}

// TestComponents_TwoPairs keeps disjoint gluing pairs in separate components.
func TestComponents_TwoPairs(t *testing.T) {
	p := sheaf.Problem{
		Patches: namedPatches("a", "b", "c", "d"),
		Gluings: []sheaf.GluingConstraint{glue("c", "d"), glue("a", "b")},
	}
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, p.Components())
}

// TestComponents_SelfGluing keeps a self-loop inside its own component.
func TestComponents_SelfGluing(t *testing.T) {
	p := sheaf.Problem{
		Patches: namedPatches("a", "b"),
		Gluings: []sheaf.GluingConstraint{glue("a", "a")},
	}
	require.Equal(t, [][]string{{"a"}, {"b"}}, p.Components())
}
