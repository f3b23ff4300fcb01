// Package patterns contains the runnable pattern demonstrations and
// their catalog registrations.
package patterns

import (
	"fmt"

	"github.com/simonhull/lyrebird/internal/catalog"
)

// registrations lists every demo in catalog order. RegisterAll and the
// CLI both follow this order.
var registrations = []struct {
	desc catalog.Descriptor
	demo catalog.DemoFunc
}{
	{
		desc: catalog.Descriptor{
			Name:        "singleton",
			Category:    catalog.Creational,
			Description: "One shared instance, constructed lazily on first access",
		},
		demo: DemoSingleton,
	},
	{
		desc: catalog.Descriptor{
			Name:        "factory-method",
			Category:    catalog.Creational,
			Description: "Products from a closed set, selected by discriminator",
		},
		demo: DemoFactoryMethod,
	},
	{
		desc: catalog.Descriptor{
			Name:        "adapter",
			Category:    catalog.Structural,
			Description: "An incompatible component behind the expected interface",
		},
		demo: DemoAdapter,
	},
	{
		desc: catalog.Descriptor{
			Name:        "observer",
			Category:    catalog.Behavioral,
			Description: "Ordered state-change fan-out to attached observers",
		},
		demo: DemoObserver,
	},
}

// RegisterAll registers every pattern demo with reg. It is called once
// at process start; the registry is read-only afterwards.
func RegisterAll(reg *catalog.Registry) error {
	for _, r := range registrations {
		if err := reg.Register(r.desc, r.demo); err != nil {
			return fmt.Errorf("registering built-in patterns: %w", err)
		}
	}
	return nil
}
