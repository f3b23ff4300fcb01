package patterns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrInvalidSelector is returned when NewProduct is given a selector
// outside the known product set.
var ErrInvalidSelector = errors.New("invalid product selector")

// Product is the common capability every concrete product implements.
type Product interface {
	Operation() string
}

type concreteProductA struct{}

func (concreteProductA) Operation() string { return "ConcreteProductA operation." }

type concreteProductB struct{}

func (concreteProductB) Operation() string { return "ConcreteProductB operation." }

// productConstructors is the closed set of products, keyed by selector.
var productConstructors = map[string]func() Product{
	"A": func() Product { return concreteProductA{} },
	"B": func() Product { return concreteProductB{} },
}

// NewProduct constructs the product registered under selector.
// Unknown selectors fail with ErrInvalidSelector.
func NewProduct(selector string) (Product, error) {
	construct, ok := productConstructors[selector]
	if !ok {
		return nil, fmt.Errorf("selector %q: %w", selector, ErrInvalidSelector)
	}
	return construct(), nil
}

// Selectors returns the valid selectors in sorted order.
func Selectors() []string {
	selectors := make([]string, 0, len(productConstructors))
	for s := range productConstructors {
		selectors = append(selectors, s)
	}
	sort.Strings(selectors)
	return selectors
}

// DemoFactoryMethod constructs each known product through the factory
// and shows an unknown selector being rejected.
func DemoFactoryMethod(ctx context.Context, w io.Writer) error {
	for _, selector := range Selectors() {
		product, err := NewProduct(selector)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", product.Operation())
	}

	if _, err := NewProduct("Z"); !errors.Is(err, ErrInvalidSelector) {
		return fmt.Errorf("selector \"Z\" was not rejected")
	}
	fmt.Fprintf(w, "selector \"Z\" rejected: %s\n", ErrInvalidSelector)

	return nil
}
