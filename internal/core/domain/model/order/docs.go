// Package order provides the Order aggregate root and its owned value
// objects: order number, items, origin/destination locations, delivery policy
// and the status state machine.
//
// Key business rules:
//   - Orders always carry an order number, origin, destination and delivery
//     policy, and at least one item
//   - Status follows Created -> Delivered or Created -> Cancelled; both end
//     states are terminal
//   - The destination address may only change while the order is in Created
//     status, and the destination contact never changes
//   - The aggregate buffers domain events (OrderCreated,
//     OrderDestinationAddressChanged, OrderDelivered, OrderCancelled) until
//     the outbox writer has durably appended them and clears the buffer
package order
