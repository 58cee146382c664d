package kernel

// EntranceInfo carries the optional access details for a location: a door
// password, a guide for couriers and a free-form request message. Every field
// is optional and the zero value is the valid "empty" EntranceInfo, so no
// constructor guard is needed.
type EntranceInfo struct {
	password       string
	guide          string
	requestMessage string
}

// NewEntranceInfo creates an EntranceInfo with the given fields. All of them
// may be blank.
func NewEntranceInfo(password, guide, requestMessage string) EntranceInfo {
	return EntranceInfo{
		password:       password,
		guide:          guide,
		requestMessage: requestMessage,
	}
}

// EmptyEntranceInfo returns the EntranceInfo used when a caller supplies none.
func EmptyEntranceInfo() EntranceInfo {
	return EntranceInfo{}
}

// IsEmpty reports whether every field is blank.
func (e EntranceInfo) IsEmpty() bool {
	return e == EntranceInfo{}
}

// Password returns the door password, if any.
func (e EntranceInfo) Password() string {
	return e.password
}

// Guide returns the entrance guide, if any.
func (e EntranceInfo) Guide() string {
	return e.guide
}

// RequestMessage returns the courier request message, if any.
func (e EntranceInfo) RequestMessage() string {
	return e.requestMessage
}
