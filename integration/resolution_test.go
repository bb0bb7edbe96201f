package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gofidl/gofidl"
	"github.com/gofidl/gofidl/ast"
)

// FieldResolutionTestCase checks that a struct or union field type binds to
// the definition in the expected namespace.
type FieldResolutionTestCase struct {
	Type          string // struct or union in org.example.app.AppTypes
	Field         string
	WantTarget    string // definition name
	WantNamespace string // FQN of the defining namespace
}

var fieldResolutionTests = []FieldResolutionTestCase{
	{Type: "Derived", Field: "color", WantTarget: "Color", WantNamespace: commonPkg + ".Types"},
	{Type: "Derived", Field: "distance", WantTarget: "Meter", WantNamespace: unitsPkg + ".Units"},
}

func TestFieldResolution(t *testing.T) {
	p := loadCorpus(t)
	ns := namespace(t, p, appPkg+".AppTypes")

	for _, tc := range fieldResolutionTests {
		t.Run(tc.Type+"."+tc.Field, func(t *testing.T) {
			s := ns.Struct(tc.Type)
			require.NotNil(t, s)
			ref, ok := s.Field(tc.Field).Type.(*ast.Reference)
			require.True(t, ok, "field type is not a reference")
			require.True(t, ref.Resolved())
			require.Equal(t, tc.WantTarget, ref.Target.TypeName())
			require.Equal(t, tc.WantNamespace, ref.Namespace.FQN())
		})
	}
}

func TestExtends(t *testing.T) {
	p := loadCorpus(t)

	derived := namespace(t, p, appPkg+".AppTypes").Struct("Derived")
	require.Same(t, namespace(t, p, commonPkg+".Records").Struct("Base"), derived.Base)

	types := namespace(t, p, commonPkg+".Types")
	require.Same(t, types.Enumeration("Color"), types.Enumeration("ExtColor").Base)

	svc := namespace(t, p, appPkg+".Service")
	require.Same(t, namespace(t, p, appPkg+".BaseService"), svc.Base)
}

func TestCompositeTypes(t *testing.T) {
	p := loadCorpus(t)
	ns := namespace(t, p, appPkg+".AppTypes")
	types := namespace(t, p, commonPkg+".Types")

	ids := ns.Array("Ids")
	require.Same(t, types.Typedef("Id"), ids.Element.(*ast.Reference).Target)

	m := ns.Map("ColorNames")
	require.Same(t, types.Enumeration("Color"), m.Key.(*ast.Reference).Target)
	require.Equal(t, ast.TypeString, m.Value.TypeName())

	path := ns.Typedef("Path").Type.(*ast.Array)
	require.Equal(t, "Meter[]", path.TypeName())
	require.True(t, path.Element.(*ast.Reference).Resolved())

	names := ns.Constant("names")
	require.Same(t, m, names.Type.(*ast.Reference).Target)
}

func TestInterfaceMembers(t *testing.T) {
	p := loadCorpus(t)
	svc := namespace(t, p, appPkg+".Service")
	app := namespace(t, p, appPkg+".AppTypes")
	types := namespace(t, p, commonPkg+".Types")

	require.Same(t, app.Struct("Derived"), svc.Attribute("last").Type.(*ast.Reference).Target)

	lookup := svc.Method("lookup")
	require.Same(t, types.Typedef("Id"), lookup.InArg("id").Type.(*ast.Reference).Target)
	require.Same(t, types.Enumeration("Color"), lookup.OutArg("color").Type.(*ast.Reference).Target)
	require.Same(t, app.Enumeration("Errors"), lookup.Error.Target)

	changed := svc.Broadcast("changed")
	require.Same(t, app.Array("Ids"), changed.OutArg("ids").Type.(*ast.Reference).Target)

	base := namespace(t, p, appPkg+".BaseService")
	require.True(t, base.Attribute("current").Type.(*ast.Reference).Resolved())
}

func TestStandaloneResolve(t *testing.T) {
	p := loadCorpus(t)
	app := namespace(t, p, appPkg+".AppTypes")

	typ, err := gofidl.Resolve(app, "Meter")
	require.NoError(t, err)
	require.Same(t, namespace(t, p, unitsPkg+".Units").Typedef("Meter"), typ)

	typ, err = gofidl.Resolve(app, commonPkg+".Types.Id")
	require.NoError(t, err)
	require.Equal(t, "Id", typ.TypeName())

	c, err := gofidl.ResolveValue(app, "earth")
	require.NoError(t, err)
	require.Equal(t, "6371000.0", c.Value.String())

	_, err = gofidl.Resolve(app, "Secret")
	require.ErrorIs(t, err, gofidl.ErrUnresolvedReference)

	_, err = gofidl.Resolve(app, "a")
	require.ErrorIs(t, err, gofidl.ErrInvalidTypeReference)

	ns, err := gofidl.ResolveNamespace(p.Package(appPkg), "BaseService")
	require.NoError(t, err)
	require.Equal(t, appPkg+".BaseService", ns.FQN())

	ns, err = gofidl.ResolveNamespace(p.Package(appPkg), commonPkg+".Records")
	require.NoError(t, err)
	require.Same(t, namespace(t, p, commonPkg+".Records"), ns)

	_, err = gofidl.ResolveNamespace(p.Package(appPkg), unitsPkg+".Hidden")
	require.ErrorIs(t, err, gofidl.ErrUnresolvedNamespaceReference)
}

func TestVisibility(t *testing.T) {
	p := loadCorpus(t)
	app := namespace(t, p, appPkg+".AppTypes")

	visible := make(map[string]int)
	for _, ns := range app.Visible {
		visible[ns.FQN()]++
	}
	for fqn, n := range visible {
		require.Equal(t, 1, n, "%s listed twice", fqn)
	}
	require.Contains(t, visible, commonPkg+".Types")
	require.Contains(t, visible, commonPkg+".Limits")
	require.Contains(t, visible, commonPkg+".Records")
	require.Contains(t, visible, unitsPkg+".Units")
	require.Contains(t, visible, appPkg+".Service")
	require.NotContains(t, visible, unitsPkg+".Hidden")
	require.NotContains(t, visible, appPkg+".AppTypes")
}
