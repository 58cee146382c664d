package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// via NewOrderItem.
var ErrOrderItemIsNotConstructed = errs.NewValueIsRequiredError(
	"order item must be created via NewOrderItem constructor")

// OrderItem is one line of an order: a named product, a quantity and a unit
// price, with optional category and physical measurements.
type OrderItem struct { //nolint:recvcheck //using for validation
	itemName string
	quantity int
	price    kernel.Money
	category string
	weight   *kernel.Weight
	volume   *kernel.Volume
	guard    guard.ConstructorGuard
}

// NewOrderItem creates an OrderItem. The item name must be non-blank, the
// quantity at least 1 and the price properly constructed. Weight and volume
// are optional.
func NewOrderItem(
	itemName string,
	quantity int,
	price kernel.Money,
	category string,
	weight *kernel.Weight,
	volume *kernel.Volume,
) (OrderItem, error) {
	item := OrderItem{
		category: category,
		weight:   weight,
		volume:   volume,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setItemName(itemName),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.validateMeasures(),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate checks that the OrderItem was created through its constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ItemName returns the product name.
func (i OrderItem) ItemName() string {
	return i.itemName
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i OrderItem) Price() kernel.Money {
	return i.price
}

// Category returns the optional product category.
func (i OrderItem) Category() string {
	return i.category
}

// Weight returns the optional item weight. Nil when unknown.
func (i OrderItem) Weight() *kernel.Weight {
	return i.weight
}

// Volume returns the optional item volume. Nil when unknown.
func (i OrderItem) Volume() *kernel.Volume {
	return i.volume
}

// TotalPrice returns the unit price multiplied by the quantity.
func (i OrderItem) TotalPrice() kernel.Money {
	return i.price.Multiply(i.quantity)
}

func (i *OrderItem) setItemName(itemName string) error {
	if strings.TrimSpace(itemName) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.itemName = itemName
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *OrderItem) validateMeasures() error {
	if i.weight != nil {
		if err := i.weight.Validate(); err != nil {
			return err
		}
	}
	if i.volume != nil {
		if err := i.volume.Validate(); err != nil {
			return err
		}
	}
	return nil
}
