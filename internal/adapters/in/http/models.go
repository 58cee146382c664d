package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// Error carries a machine-readable code and a human-readable message.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the payload for POST /api/v1/orders.
type NewOrderRequest struct {
	Items       []OrderItemRequest    `json:"items"`
	Origin      LocationRequest       `json:"origin"`
	Destination LocationRequest       `json:"destination"`
	Policy      DeliveryPolicyRequest `json:"policy"`
}

// OrderItemRequest is one order line in a creation request.
type OrderItemRequest struct {
	ItemName    string         `json:"itemName"`
	Quantity    int            `json:"quantity"`
	Price       int64          `json:"price"`
	Category    string         `json:"category"`
	WeightGrams *int64         `json:"weightGrams,omitempty"`
	Volume      *VolumeRequest `json:"volume,omitempty"`
}

// VolumeRequest carries the optional package dimensions of an order line.
type VolumeRequest struct {
	LengthMm int64 `json:"lengthMm"`
	WidthMm  int64 `json:"widthMm"`
	HeightMm int64 `json:"heightMm"`
}

// LocationRequest is a pickup or drop-off point in a creation request.
type LocationRequest struct {
	ContactName            string  `json:"contactName"`
	ContactPhone           string  `json:"contactPhone"`
	JibunAddress           string  `json:"jibunAddress"`
	RoadAddress            string  `json:"roadAddress"`
	DetailAddress          string  `json:"detailAddress"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	EntrancePassword       string  `json:"entrancePassword"`
	EntranceGuide          string  `json:"entranceGuide"`
	EntranceRequestMessage string  `json:"entranceRequestMessage"`
}

// DeliveryPolicyRequest carries the scheduling constraints of a new order.
type DeliveryPolicyRequest struct {
	AlcoholDelivery     bool       `json:"alcoholDelivery"`
	ContactlessDelivery bool       `json:"contactlessDelivery"`
	Reserved            bool       `json:"reserved"`
	ReservedStartTime   *time.Time `json:"reservedStartTime,omitempty"`
	PickupRequestTime   time.Time  `json:"pickupRequestTime"`
}

// ChangeDestinationRequest is the payload for PATCH /api/v1/orders/:id/destination.
// The address is resolved from the coordinates server-side; only the detail
// address and entrance info are taken verbatim.
type ChangeDestinationRequest struct {
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	DetailAddress          string  `json:"detailAddress"`
	EntrancePassword       string  `json:"entrancePassword"`
	EntranceGuide          string  `json:"entranceGuide"`
	EntranceRequestMessage string  `json:"entranceRequestMessage"`
}

// OrderResponse is the order representation returned by all order endpoints.
type OrderResponse struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`

	Origin      LocationResponse `json:"origin"`
	Destination LocationResponse `json:"destination"`

	AlcoholDelivery     bool       `json:"alcoholDelivery"`
	ContactlessDelivery bool       `json:"contactlessDelivery"`
	Reserved            bool       `json:"reserved"`
	ReservedStartTime   *time.Time `json:"reservedStartTime,omitempty"`
	PickupRequestTime   time.Time  `json:"pickupRequestTime"`

	OrderedAt   time.Time  `json:"orderedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	TotalAmount int64               `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
}

// LocationResponse is a pickup or drop-off point in an order representation.
type LocationResponse struct {
	ContactName            string  `json:"contactName"`
	ContactPhone           string  `json:"contactPhone"`
	JibunAddress           string  `json:"jibunAddress"`
	RoadAddress            string  `json:"roadAddress"`
	DetailAddress          string  `json:"detailAddress"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	EntrancePassword       string  `json:"entrancePassword,omitempty"`
	EntranceGuide          string  `json:"entranceGuide,omitempty"`
	EntranceRequestMessage string  `json:"entranceRequestMessage,omitempty"`
}

// OrderItemResponse is one order line in an order representation.
type OrderItemResponse struct {
	ItemName    string `json:"itemName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	WeightGrams *int64 `json:"weightGrams,omitempty"`
	LengthMm    *int64 `json:"lengthMm,omitempty"`
	WidthMm     *int64 `json:"widthMm,omitempty"`
	HeightMm    *int64 `json:"heightMm,omitempty"`
}

// itemsFromRequest builds the domain order lines from a creation request.
func itemsFromRequest(requests []OrderItemRequest) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(requests))
	for _, request := range requests {
		price, err := kernel.NewMoney(request.Price)
		if err != nil {
			return nil, err
		}

		var weight *kernel.Weight
		if request.WeightGrams != nil {
			w, weightErr := kernel.NewWeight(*request.WeightGrams)
			if weightErr != nil {
				return nil, weightErr
			}
			weight = &w
		}

		var volume *kernel.Volume
		if request.Volume != nil {
			v, volumeErr := kernel.NewVolume(request.Volume.LengthMm, request.Volume.WidthMm, request.Volume.HeightMm)
			if volumeErr != nil {
				return nil, volumeErr
			}
			volume = &v
		}

		item, err := order.NewOrderItem(request.ItemName, request.Quantity, price, request.Category, weight, volume)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// locationFromRequest builds a domain location from a creation request.
func locationFromRequest(request LocationRequest) (order.Location, error) {
	contact, err := kernel.NewContact(request.ContactName, request.ContactPhone)
	if err != nil {
		return order.Location{}, err
	}

	address, err := kernel.NewAddress(request.JibunAddress, request.RoadAddress, request.DetailAddress)
	if err != nil {
		return order.Location{}, err
	}

	latLng, err := kernel.NewLatLng(request.Latitude, request.Longitude)
	if err != nil {
		return order.Location{}, err
	}

	entrance := kernel.NewEntranceInfo(
		request.EntrancePassword,
		request.EntranceGuide,
		request.EntranceRequestMessage,
	)

	return order.NewLocation(contact, address, latLng, entrance)
}

// orderToResponse renders a domain aggregate into the shared order
// representation.
func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		response := OrderItemResponse{
			ItemName: item.ItemName(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
			Category: item.Category(),
		}
		if w := item.Weight(); w != nil {
			grams := w.Grams()
			response.WeightGrams = &grams
		}
		if v := item.Volume(); v != nil {
			length, width, height := v.LengthMm(), v.WidthMm(), v.HeightMm()
			response.LengthMm = &length
			response.WidthMm = &width
			response.HeightMm = &height
		}
		items = append(items, response)
	}

	return OrderResponse{
		ID:                  aggregate.ID(),
		OrderNumber:         aggregate.OrderNumber().Value(),
		Status:              aggregate.Status().String(),
		Origin:              locationToResponse(aggregate.Origin()),
		Destination:         locationToResponse(aggregate.Destination()),
		AlcoholDelivery:     aggregate.Policy().IsAlcoholDelivery(),
		ContactlessDelivery: aggregate.Policy().IsContactlessDelivery(),
		Reserved:            aggregate.Policy().IsReserved(),
		ReservedStartTime:   aggregate.Policy().ReservedStartTime(),
		PickupRequestTime:   aggregate.Policy().PickupRequestTime(),
		OrderedAt:           aggregate.OrderedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		CancelledAt:         aggregate.CancelledAt(),
		TotalAmount:         aggregate.TotalAmount().Amount(),
		Items:               items,
	}
}

func locationToResponse(location order.Location) LocationResponse {
	return LocationResponse{
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

// queryToResponse renders a read model into the shared order representation.
func queryToResponse(model queries.OrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse(item))
	}

	return OrderResponse{
		ID:                  model.ID,
		OrderNumber:         model.OrderNumber,
		Status:              model.Status,
		Origin:              queryLocationToResponse(model.Origin),
		Destination:         queryLocationToResponse(model.Destination),
		AlcoholDelivery:     model.AlcoholDelivery,
		ContactlessDelivery: model.ContactlessDelivery,
		Reserved:            model.Reserved,
		ReservedStartTime:   model.ReservedStartTime,
		PickupRequestTime:   model.PickupRequestTime,
		OrderedAt:           model.OrderedAt,
		DeliveredAt:         model.DeliveredAt,
		CancelledAt:         model.CancelledAt,
		TotalAmount:         model.TotalAmount,
		Items:               items,
	}
}

func queryLocationToResponse(location queries.LocationResponse) LocationResponse {
	return LocationResponse(location)
}
