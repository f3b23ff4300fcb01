package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/simonhull/lyrebird/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoWriting(lines ...string) catalog.DemoFunc {
	return func(ctx context.Context, w io.Writer) error {
		for _, line := range lines {
			fmt.Fprintf(w, "%s\n", line)
		}
		return nil
	}
}

func TestRegister(t *testing.T) {
	reg := catalog.NewRegistry()

	err := reg.Register(catalog.Descriptor{
		Name:        "singleton",
		Category:    catalog.Creational,
		Description: "one shared instance",
	}, demoWriting("hello"))
	require.NoError(t, err)

	desc, ok := reg.Get("singleton")
	require.True(t, ok)
	assert.Equal(t, catalog.Creational, desc.Category)
	assert.Equal(t, "one shared instance", desc.Description)
}

func TestRegisterDuplicateName(t *testing.T) {
	reg := catalog.NewRegistry()

	desc := catalog.Descriptor{Name: "adapter", Category: catalog.Structural}
	require.NoError(t, reg.Register(desc, demoWriting()))

	err := reg.Register(desc, demoWriting())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrDuplicate)
}

func TestRegisterRejectsBadEntries(t *testing.T) {
	reg := catalog.NewRegistry()

	err := reg.Register(catalog.Descriptor{Name: "", Category: catalog.Creational}, demoWriting())
	assert.Error(t, err, "empty name must be rejected")

	err = reg.Register(catalog.Descriptor{Name: "observer", Category: catalog.Behavioral}, nil)
	assert.Error(t, err, "nil demo must be rejected")

	err = reg.Register(catalog.Descriptor{Name: "observer", Category: "decorational"}, demoWriting())
	assert.Error(t, err, "unknown category must be rejected")
}

func TestListFollowsRegistrationOrder(t *testing.T) {
	reg := catalog.NewRegistry()

	names := []string{"singleton", "factory-method", "adapter", "observer"}
	categories := []catalog.Category{catalog.Creational, catalog.Creational, catalog.Structural, catalog.Behavioral}
	for i, name := range names {
		require.NoError(t, reg.Register(catalog.Descriptor{Name: name, Category: categories[i]}, demoWriting()))
	}

	listed := reg.List()
	require.Len(t, listed, len(names))
	for i, desc := range listed {
		assert.Equal(t, names[i], desc.Name)
	}
	assert.Equal(t, names, reg.Names())
}

func TestRunCapturesOutput(t *testing.T) {
	reg := catalog.NewRegistry()
	require.NoError(t, reg.Register(
		catalog.Descriptor{Name: "adapter", Category: catalog.Structural},
		demoWriting("first line", "second line"),
	))

	res, err := reg.Run(context.Background(), "adapter")
	require.NoError(t, err)
	assert.True(t, res.Succeeded())
	assert.Equal(t, []string{"first line", "second line"}, res.Output)
	assert.Equal(t, "adapter", res.Descriptor.Name)
}

func TestRunUnknownName(t *testing.T) {
	reg := catalog.NewRegistry()

	_, err := reg.Run(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRunRecordsDemoFailure(t *testing.T) {
	reg := catalog.NewRegistry()
	boom := errors.New("contract violated")
	require.NoError(t, reg.Register(
		catalog.Descriptor{Name: "broken", Category: catalog.Behavioral},
		func(ctx context.Context, w io.Writer) error {
			fmt.Fprintln(w, "partial output")
			return boom
		},
	))

	res, err := reg.Run(context.Background(), "broken")
	require.NoError(t, err, "demo failure belongs in the Result, not the Run error")
	assert.False(t, res.Succeeded())
	assert.ErrorIs(t, res.Err, boom)
	assert.Equal(t, []string{"partial output"}, res.Output)
}

func TestRunAll(t *testing.T) {
	reg := catalog.NewRegistry()
	require.NoError(t, reg.Register(catalog.Descriptor{Name: "a", Category: catalog.Creational}, demoWriting("a")))
	require.NoError(t, reg.Register(catalog.Descriptor{Name: "b", Category: catalog.Structural}, demoWriting("b")))

	results, err := reg.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Descriptor.Name)
	assert.Equal(t, "b", results[1].Descriptor.Name)
}

func TestDefaultRegistry(t *testing.T) {
	catalog.Reset()
	t.Cleanup(catalog.Reset)

	require.NoError(t, catalog.Register(
		catalog.Descriptor{Name: "singleton", Category: catalog.Creational},
		demoWriting("shared"),
	))

	_, ok := catalog.Get("singleton")
	assert.True(t, ok)
	assert.Len(t, catalog.List(), 1)

	res, err := catalog.Run(context.Background(), "singleton")
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, res.Output)
}
