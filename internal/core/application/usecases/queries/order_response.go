// Package queries contains read operations that bypass the domain model.
// Query handlers read the order tables directly and shape the results into
// flat response structures for the transport layer.
package queries

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderQueryResponse represents a full order read model.
type OrderQueryResponse struct {
	ID          int64
	OrderNumber string
	Status      string

	Origin      LocationResponse
	Destination LocationResponse

	AlcoholDelivery     bool
	ContactlessDelivery bool
	Reserved            bool
	ReservedStartTime   *time.Time
	PickupRequestTime   time.Time

	OrderedAt   time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	TotalAmount int64
	Items       []OrderItemResponse
}

// LocationResponse represents a pickup or drop-off point of an order.
type LocationResponse struct {
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

// OrderItemResponse represents one order line.
type OrderItemResponse struct {
	ItemName    string
	Quantity    int
	Price       int64
	Category    string
	WeightGrams *int64
	LengthMm    *int64
	WidthMm     *int64
	HeightMm    *int64
}

// orderRow mirrors the orders table columns read by the query handlers.
type orderRow struct {
	ID          int64
	OrderNumber string
	Status      int

	OriginContactName            string
	OriginContactPhone           string
	OriginJibunAddress           string
	OriginRoadAddress            string
	OriginDetailAddress          string
	OriginLatitude               float64
	OriginLongitude              float64
	OriginEntrancePassword       string
	OriginEntranceGuide          string
	OriginEntranceRequestMessage string

	DestinationContactName            string
	DestinationContactPhone           string
	DestinationJibunAddress           string
	DestinationRoadAddress            string
	DestinationDetailAddress          string
	DestinationLatitude               float64
	DestinationLongitude              float64
	DestinationEntrancePassword       string
	DestinationEntranceGuide          string
	DestinationEntranceRequestMessage string

	AlcoholDelivery     bool
	ContactlessDelivery bool
	Reserved            bool
	ReservedStartTime   *time.Time
	PickupRequestTime   time.Time

	OrderedAt   time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// itemRow mirrors the order_items table columns read by the query handlers.
type itemRow struct {
	ItemName    string
	Quantity    int
	Price       int64
	Category    string
	WeightGrams *int64
	LengthMm    *int64
	WidthMm     *int64
	HeightMm    *int64
}

// loadOrder reads one order row and its items. The condition must reference
// exactly one order; zero matches map to an object-not-found error keyed by
// the given identifier.
func loadOrder(
	ctx context.Context,
	db *gorm.DB,
	condition string,
	identifier any,
) (OrderQueryResponse, error) {
	var row orderRow

	result := db.WithContext(ctx).
		Raw(`SELECT * FROM orders WHERE `+condition, identifier).
		Scan(&row)
	if result.Error != nil {
		return OrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return OrderQueryResponse{}, errs.NewObjectNotFoundError("order", identifier)
	}

	var itemRows []itemRow
	err := db.WithContext(ctx).
		Raw(`
			SELECT
				item_name,
				quantity,
				price,
				category,
				weight_grams,
				length_mm,
				width_mm,
				height_mm
			FROM order_items
			WHERE order_id = ?
			ORDER BY id
		`, row.ID).
		Scan(&itemRows).Error
	if err != nil {
		return OrderQueryResponse{}, err
	}

	return toResponse(row, itemRows), nil
}

func toResponse(row orderRow, itemRows []itemRow) OrderQueryResponse {
	items := make([]OrderItemResponse, 0, len(itemRows))
	var totalAmount int64
	for _, item := range itemRows {
		items = append(items, OrderItemResponse(item))
		totalAmount += item.Price * int64(item.Quantity)
	}

	return OrderQueryResponse{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		Status:      order.Status(row.Status).String(),
		Origin: LocationResponse{
			ContactName:            row.OriginContactName,
			ContactPhone:           row.OriginContactPhone,
			JibunAddress:           row.OriginJibunAddress,
			RoadAddress:            row.OriginRoadAddress,
			DetailAddress:          row.OriginDetailAddress,
			Latitude:               row.OriginLatitude,
			Longitude:              row.OriginLongitude,
			EntrancePassword:       row.OriginEntrancePassword,
			EntranceGuide:          row.OriginEntranceGuide,
			EntranceRequestMessage: row.OriginEntranceRequestMessage,
		},
		Destination: LocationResponse{
			ContactName:            row.DestinationContactName,
			ContactPhone:           row.DestinationContactPhone,
			JibunAddress:           row.DestinationJibunAddress,
			RoadAddress:            row.DestinationRoadAddress,
			DetailAddress:          row.DestinationDetailAddress,
			Latitude:               row.DestinationLatitude,
			Longitude:              row.DestinationLongitude,
			EntrancePassword:       row.DestinationEntrancePassword,
			EntranceGuide:          row.DestinationEntranceGuide,
			EntranceRequestMessage: row.DestinationEntranceRequestMessage,
		},
		AlcoholDelivery:     row.AlcoholDelivery,
		ContactlessDelivery: row.ContactlessDelivery,
		Reserved:            row.Reserved,
		ReservedStartTime:   row.ReservedStartTime,
		PickupRequestTime:   row.PickupRequestTime,
		OrderedAt:           row.OrderedAt,
		DeliveredAt:         row.DeliveredAt,
		CancelledAt:         row.CancelledAt,
		TotalAmount:         totalAmount,
		Items:               items,
	}
}
