// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The identity is assigned by the database on insert; the version column
// backs optimistic concurrency on updates.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber string `gorm:"uniqueIndex;size:32"`
	Status      int    `gorm:"index"`
	Version     int64

	Origin      LocationDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination LocationDTO `gorm:"embedded;embeddedPrefix:destination_"`

	AlcoholDelivery     bool
	ContactlessDelivery bool
	Reserved            bool
	ReservedStartTime   *time.Time
	PickupRequestTime   time.Time

	OrderedAt   time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents an embedded pickup or drop-off location within the
// order table.
type LocationDTO struct {
	ContactName            string
	ContactPhone           string
	JibunAddress           string
	RoadAddress            string
	DetailAddress          string
	Latitude               float64
	Longitude              float64
	EntrancePassword       string
	EntranceGuide          string
	EntranceRequestMessage string
}

// OrderItemDTO represents one order line in the order_items table.
type OrderItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"index"`
	ItemName string
	Quantity int
	Price    int64
	Category string

	WeightGrams *int64
	LengthMm    *int64
	WidthMm     *int64
	HeightMm    *int64
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDraft converts a validated order draft to its database representation.
// The ID is left zero so the database assigns it on insert.
func fromDraft(draft *order.Draft) OrderDTO {
	return OrderDTO{
		OrderNumber:         draft.OrderNumber().Value(),
		Status:              int(order.Created),
		Version:             0,
		Origin:              locationToDTO(draft.Origin()),
		Destination:         locationToDTO(draft.Destination()),
		AlcoholDelivery:     draft.Policy().IsAlcoholDelivery(),
		ContactlessDelivery: draft.Policy().IsContactlessDelivery(),
		Reserved:            draft.Policy().IsReserved(),
		ReservedStartTime:   draft.Policy().ReservedStartTime(),
		PickupRequestTime:   draft.Policy().PickupRequestTime(),
		OrderedAt:           draft.OrderedAt(),
		Items:               itemsToDTO(draft.Items()),
	}
}

func locationToDTO(location order.Location) LocationDTO {
	return LocationDTO{
		ContactName:            location.Contact().Name(),
		ContactPhone:           location.Contact().PhoneNumber(),
		JibunAddress:           location.Address().JibunAddress(),
		RoadAddress:            location.Address().RoadAddress(),
		DetailAddress:          location.Address().DetailAddress(),
		Latitude:               location.LatLng().Latitude(),
		Longitude:              location.LatLng().Longitude(),
		EntrancePassword:       location.EntranceInfo().Password(),
		EntranceGuide:          location.EntranceInfo().Guide(),
		EntranceRequestMessage: location.EntranceInfo().RequestMessage(),
	}
}

func itemsToDTO(items []order.OrderItem) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dto := OrderItemDTO{
			ItemName: item.ItemName(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
			Category: item.Category(),
		}
		if w := item.Weight(); w != nil {
			grams := w.Grams()
			dto.WeightGrams = &grams
		}
		if v := item.Volume(); v != nil {
			length, width, height := v.LengthMm(), v.WidthMm(), v.HeightMm()
			dto.LengthMm = &length
			dto.WidthMm = &width
			dto.HeightMm = &height
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate using RestoreOrder, so no events are raised.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := order.NewOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	origin, err := locationToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := locationToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	policy, err := order.NewDeliveryPolicy(dto.AlcoholDelivery, dto.ContactlessDelivery, dto.Reserved, dto.ReservedStartTime, dto.PickupRequestTime)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		order.Status(dto.Status),
		items,
		origin,
		destination,
		policy,
		dto.OrderedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.Version,
	)
}

func locationToDomain(dto LocationDTO) (order.Location, error) {
	contact, err := kernel.NewContact(dto.ContactName, dto.ContactPhone)
	if err != nil {
		return order.Location{}, err
	}

	address, err := kernel.NewAddress(dto.JibunAddress, dto.RoadAddress, dto.DetailAddress)
	if err != nil {
		return order.Location{}, err
	}

	latLng, err := kernel.NewLatLng(dto.Latitude, dto.Longitude)
	if err != nil {
		return order.Location{}, err
	}

	entrance := kernel.NewEntranceInfo(dto.EntrancePassword, dto.EntranceGuide, dto.EntranceRequestMessage)

	return order.NewLocation(contact, address, latLng, entrance)
}

func itemsToDomain(dtos []OrderItemDTO) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.NewMoney(dto.Price)
		if err != nil {
			return nil, err
		}

		var weight *kernel.Weight
		if dto.WeightGrams != nil {
			w, err := kernel.NewWeight(*dto.WeightGrams)
			if err != nil {
				return nil, err
			}
			weight = &w
		}

		var volume *kernel.Volume
		if dto.LengthMm != nil && dto.WidthMm != nil && dto.HeightMm != nil {
			v, err := kernel.NewVolume(*dto.LengthMm, *dto.WidthMm, *dto.HeightMm)
			if err != nil {
				return nil, err
			}
			volume = &v
		}

		item, err := order.NewOrderItem(dto.ItemName, dto.Quantity, price, dto.Category, weight, volume)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
