package domain

// Mode is the intent of a work card. It decides which part counter is mandatory.
type Mode string

const (
	ModeProduction Mode = "production"
	ModeScrap      Mode = "scrap"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeProduction, ModeScrap:
		return true
	}
	return false
}

// CardStatus is the persisted status of a work card.
type CardStatus string

const (
	CardStatusActive    CardStatus = "active"
	CardStatusCompleted CardStatus = "completed"
)

func (s CardStatus) String() string { return string(s) }

func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusActive, CardStatusCompleted:
		return true
	}
	return false
}

// OrderStatus is the lifecycle status of a production order.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
