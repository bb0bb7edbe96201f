package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gofidl/gofidl"
)

// ConstantTestCase checks the folded value and type of a scalar constant.
type ConstantTestCase struct {
	Namespace string // namespace FQN
	Name      string // constant name
	WantValue string // printed literal
	WantType  string // declared or inferred Franca type
}

var constantTests = []ConstantTestCase{
	{Namespace: commonPkg + ".Types", Name: "a", WantValue: "4", WantType: "UInt32"},
	{Namespace: commonPkg + ".Types", Name: "pi", WantValue: "3.14159", WantType: "Double"},
	{Namespace: commonPkg + ".Limits", Name: "max8", WantValue: "255", WantType: "UInt8"},
	{Namespace: commonPkg + ".Limits", Name: "min8", WantValue: "-128", WantType: "Int8"},
	{Namespace: commonPkg + ".Limits", Name: "fromTypes", WantValue: "400", WantType: "UInt16"},
	{Namespace: unitsPkg + ".Units", Name: "earth", WantValue: "6371000.0", WantType: "Double"},
	{Namespace: appPkg + ".AppTypes", Name: "c", WantValue: "9", WantType: "UInt32"},
	{Namespace: appPkg + ".AppTypes", Name: "u3", WantValue: "14", WantType: "UInt32"},
	{Namespace: appPkg + ".AppTypes", Name: "u4", WantValue: "false", WantType: "Boolean"},
	{Namespace: appPkg + ".AppTypes", Name: "ratio", WantValue: "3.0", WantType: "Float"},
	{Namespace: appPkg + ".AppTypes", Name: "big", WantValue: "1e+40", WantType: "Double"},
	{Namespace: appPkg + ".AppTypes", Name: "neg", WantValue: "-3", WantType: "Int64"},
	{Namespace: appPkg + ".AppTypes", Name: "greeting", WantValue: "hello world", WantType: "String"},
	{Namespace: appPkg + ".AppTypes", Name: "far", WantValue: "12742000.0", WantType: "Double"},
	{Namespace: appPkg + ".AppTypes", Name: "inferred", WantValue: "-191", WantType: "Int16"},
	{Namespace: appPkg + ".Service", Name: "version", WantValue: "2", WantType: "UInt8"},
}

func TestConstantValues(t *testing.T) {
	p := loadCorpus(t)

	for _, tc := range constantTests {
		t.Run(tc.Namespace+"."+tc.Name, func(t *testing.T) {
			c := namespace(t, p, tc.Namespace).Constant(tc.Name)
			require.NotNil(t, c, "constant not found")
			require.True(t, c.Resolved)
			require.NotNil(t, c.Value, "scalar constant has no value")
			require.Equal(t, tc.WantValue, c.Value.String())
			require.Equal(t, tc.WantType, c.Type.TypeName())
		})
	}
}

// PrintTestCase checks the printed form of a constant.
type PrintTestCase struct {
	Name string
	Want string
}

var printTests = []PrintTestCase{
	{Name: "u3", Want: "u3 = ( ( 3 + 4 * 5 ) / 3 * ( 5 + -3 ) )"},
	{Name: "u4", Want: "u4 = a + 3 * b - 3 > 23"},
	{Name: "greeting", Want: "greeting = hello +  world"},
	{Name: "ids", Want: "ids = [ 1, 2, c ]"},
	{Name: "names", Want: "names = [ 1 => red ]"},
	{Name: "origin", Want: "origin = { id: 1, color: 2 }"},
}

func TestPrintConstant(t *testing.T) {
	p := loadCorpus(t)
	ns := namespace(t, p, appPkg+".AppTypes")

	for _, tc := range printTests {
		t.Run(tc.Name, func(t *testing.T) {
			c := ns.Constant(tc.Name)
			require.NotNil(t, c)
			require.Equal(t, tc.Want, gofidl.PrintConstant(c))
		})
	}
}

func TestCompositeConstants(t *testing.T) {
	p := loadCorpus(t)
	ns := namespace(t, p, appPkg+".AppTypes")

	for _, name := range []string{"ids", "names", "origin"} {
		c := ns.Constant(name)
		require.True(t, c.Resolved, name)
		require.Nil(t, c.Value, "%s is composite", name)
	}

	ref := ns.Constant("ids").Expression
	require.Equal(t, "[ 1, 2, c ]", gofidl.PrintExpression(ref))
}
