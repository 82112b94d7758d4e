package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosolid/capability"
	"gosolid/errors"
	"gosolid/principles/ocp"
)

func TestDefault(t *testing.T) {
	doc := Default()

	require.Len(t, doc.Shapes, 3)
	assert.Equal(t, "circle", doc.Shapes[0].Kind)

	require.Len(t, doc.Payments, 4)
	assert.Equal(t, 100.0, doc.Payments[0].Amount)
	assert.Equal(t, "4111111111111111", doc.Payments[0].Params["card_number"])
	assert.Equal(t, 0.005, doc.Payments[2].Amount)
	assert.Equal(t, "0x71C7656EC7ab88b098defB751B7401B5f6d8976F", doc.Payments[3].Params["wallet"])
}

func TestBuild_DefaultShapes(t *testing.T) {
	shapes, err := Build(ocp.ShapeRegistry(), Default().Shapes)
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	want := []float64{78.5398, 24, 6}
	for i, s := range shapes {
		assert.InDelta(t, want[i], s.Value.Area(), 1e-4)
	}
	assert.Equal(t, "rectangle", shapes[1].Label)
}

func TestBuild_DefaultPayments(t *testing.T) {
	doc := Default()
	methods, err := Build(ocp.PaymentRegistry(), doc.PaymentVariants())
	require.NoError(t, err)

	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Value.Name()
	}
	assert.Equal(t, []string{"Credit Card", "PayPal", "Bitcoin Crypto", "Ethereum Crypto"}, names)
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`
shapes:
  - kind: circle
    label: small
    params: {radius: 1.5}
`))
	require.NoError(t, err)
	require.Len(t, doc.Shapes, 1)
	assert.Equal(t, "small", doc.Shapes[0].DisplayName())
	assert.Empty(t, doc.Payments)

	_, err = Parse([]byte("shapes: [{params: {radius: 1}}]"))
	assert.True(t, errors.IsValidation(err))

	_, err = Parse([]byte("shapes: {not: a list"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidInput))
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build[ocp.Shape](nil, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidInput))

	specs := []VariantSpec{
		{Kind: "circle", Params: map[string]any{"radius": 1}},
		{Kind: "hexagon"},
	}
	built, err := Build(ocp.ShapeRegistry(), specs)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Len(t, built, 1)
}

func TestBuild_RegisteredVariant(t *testing.T) {
	reg := capability.NewRegistry[ocp.Shape]("shape")
	reg.MustRegister("square", func(p capability.Params) (ocp.Shape, error) {
		side, err := p.GetFloat("side")
		if err != nil {
			return nil, err
		}
		return ocp.NewRectangle(side, side), nil
	})

	doc, err := Parse([]byte("shapes: [{kind: square, params: {side: 3}}]"))
	require.NoError(t, err)

	shapes, err := Build(reg, doc.Shapes)
	require.NoError(t, err)
	assert.Equal(t, 9.0, shapes[0].Value.Area())
}

func TestLoad(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)
	assert.Len(t, doc.Shapes, 3)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payments: [{kind: paypal, amount: 5, params: {email: a@b.co}}]"), 0o600))

	doc, err = Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Payments, 1)
	assert.Equal(t, 5.0, doc.Payments[0].Amount)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}
