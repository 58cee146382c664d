package order

import (
	"time"
)

// Event type discriminators carried with every published message so that
// consumers can route payloads without inspecting their bodies.
const (
	EventTypeOrderCreated                   = "ORDER_CREATED"
	EventTypeOrderDestinationAddressChanged = "ORDER_DESTINATION_ADDRESS_CHANGED"
	EventTypeOrderDelivered                 = "ORDER_DELIVERED"
	EventTypeOrderCancelled                 = "ORDER_CANCELLED"
)

// OrderItemSnapshot is the serializable projection of an OrderItem used in
// event payloads.
type OrderItemSnapshot struct {
	ItemName    string   `json:"itemName"`
	Quantity    int      `json:"quantity"`
	Price       int64    `json:"price"`
	Category    string   `json:"category,omitempty"`
	WeightGrams *int64   `json:"weightGrams,omitempty"`
	VolumeCbm   *float64 `json:"volumeCbm,omitempty"`
}

// LocationSnapshot is the serializable projection of a Location used in
// event payloads.
type LocationSnapshot struct {
	ContactName   string  `json:"contactName"`
	ContactPhone  string  `json:"contactPhone"`
	JibunAddress  string  `json:"jibunAddress,omitempty"`
	RoadAddress   string  `json:"roadAddress,omitempty"`
	DetailAddress string  `json:"detailAddress,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// DeliveryPolicySnapshot is the serializable projection of a DeliveryPolicy
// used in event payloads.
type DeliveryPolicySnapshot struct {
	AlcoholDelivery     bool       `json:"alcoholDelivery"`
	ContactlessDelivery bool       `json:"contactlessDelivery"`
	Reserved            bool       `json:"reserved"`
	ReservedStartTime   *time.Time `json:"reservedStartTime,omitempty"`
	PickupRequestTime   time.Time  `json:"pickupRequestTime"`
}

// OrderCreatedEvent is raised once per order, after the order has been
// assigned its persistent identity. It carries a full snapshot of the order
// at creation time.
type OrderCreatedEvent struct {
	OrderID        int64                  `json:"orderId"`
	OrderNumber    string                 `json:"orderNumber"`
	Status         string                 `json:"status"`
	Items          []OrderItemSnapshot    `json:"items"`
	Origin         LocationSnapshot       `json:"origin"`
	Destination    LocationSnapshot       `json:"destination"`
	Policy         DeliveryPolicySnapshot `json:"policy"`
	OrderedAt      time.Time              `json:"orderedAt"`
	OccurredAtTime time.Time              `json:"occurredAt"`
}

// EventType returns the event discriminator.
func (e OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OccurredAt returns the time the event was raised.
func (e OrderCreatedEvent) OccurredAt() time.Time {
	return e.OccurredAtTime
}

// OrderDestinationAddressChangedEvent is raised when the destination address
// of an order is refined while the order is still in Created status.
type OrderDestinationAddressChangedEvent struct {
	OrderID        int64            `json:"orderId"`
	OrderNumber    string           `json:"orderNumber"`
	OldDestination LocationSnapshot `json:"oldDestination"`
	NewDestination LocationSnapshot `json:"newDestination"`
	OccurredAtTime time.Time        `json:"occurredAt"`
}

// EventType returns the event discriminator.
func (e OrderDestinationAddressChangedEvent) EventType() string {
	return EventTypeOrderDestinationAddressChanged
}

// OccurredAt returns the time the event was raised.
func (e OrderDestinationAddressChangedEvent) OccurredAt() time.Time {
	return e.OccurredAtTime
}

// OrderDeliveredEvent is raised when an order transitions to Delivered.
type OrderDeliveredEvent struct {
	OrderID        int64     `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	DeliveredAt    time.Time `json:"deliveredAt"`
	OccurredAtTime time.Time `json:"occurredAt"`
}

// EventType returns the event discriminator.
func (e OrderDeliveredEvent) EventType() string {
	return EventTypeOrderDelivered
}

// OccurredAt returns the time the event was raised.
func (e OrderDeliveredEvent) OccurredAt() time.Time {
	return e.OccurredAtTime
}

// OrderCancelledEvent is raised when an order transitions to Cancelled.
type OrderCancelledEvent struct {
	OrderID        int64     `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	CancelledAt    time.Time `json:"cancelledAt"`
	OccurredAtTime time.Time `json:"occurredAt"`
}

// EventType returns the event discriminator.
func (e OrderCancelledEvent) EventType() string {
	return EventTypeOrderCancelled
}

// OccurredAt returns the time the event was raised.
func (e OrderCancelledEvent) OccurredAt() time.Time {
	return e.OccurredAtTime
}

// snapshotItems converts order items to their event projections.
func snapshotItems(items []OrderItem) []OrderItemSnapshot {
	snapshots := make([]OrderItemSnapshot, 0, len(items))
	for _, item := range items {
		snapshot := OrderItemSnapshot{
			ItemName: item.ItemName(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
			Category: item.Category(),
		}
		if w := item.Weight(); w != nil {
			grams := w.Grams()
			snapshot.WeightGrams = &grams
		}
		if v := item.Volume(); v != nil {
			cbm := v.CBM()
			snapshot.VolumeCbm = &cbm
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots
}

// snapshotLocation converts a location to its event projection.
func snapshotLocation(location Location) LocationSnapshot {
	return LocationSnapshot{
		ContactName:   location.Contact().Name(),
		ContactPhone:  location.Contact().PhoneNumber(),
		JibunAddress:  location.Address().JibunAddress(),
		RoadAddress:   location.Address().RoadAddress(),
		DetailAddress: location.Address().DetailAddress(),
		Latitude:      location.LatLng().Latitude(),
		Longitude:     location.LatLng().Longitude(),
	}
}

// snapshotPolicy converts a delivery policy to its event projection.
func snapshotPolicy(policy DeliveryPolicy) DeliveryPolicySnapshot {
	return DeliveryPolicySnapshot{
		AlcoholDelivery:     policy.IsAlcoholDelivery(),
		ContactlessDelivery: policy.IsContactlessDelivery(),
		Reserved:            policy.IsReserved(),
		ReservedStartTime:   policy.ReservedStartTime(),
		PickupRequestTime:   policy.PickupRequestTime(),
	}
}
