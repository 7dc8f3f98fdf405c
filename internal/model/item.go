package model

// Item is a product offered by the shop. ID is nil until the item is saved.
// Price and Quantity are nil when the value was not submitted or could not
// be converted to an integer.
type Item struct {
	ID       *int64 `json:"id,omitempty"`
	ItemName string `json:"itemName"`
	Price    *int   `json:"price"`
	Quantity *int   `json:"quantity"`
}

// NewItem returns an unsaved item with all fields set.
func NewItem(name string, price, quantity int) Item {
	return Item{ItemName: name, Price: &price, Quantity: &quantity}
}

// Clone returns a deep copy, so the copy shares no pointers with i.
func (i Item) Clone() Item {
	c := Item{ItemName: i.ItemName}
	if i.ID != nil {
		id := *i.ID
		c.ID = &id
	}
	if i.Price != nil {
		p := *i.Price
		c.Price = &p
	}
	if i.Quantity != nil {
		q := *i.Quantity
		c.Quantity = &q
	}
	return c
}

// IDValue returns the item ID, or 0 for an unsaved item.
func (i Item) IDValue() int64 {
	if i.ID == nil {
		return 0
	}
	return *i.ID
}

// TotalPrice returns price * quantity and whether both are present.
// The product is computed in 64 bits.
func (i Item) TotalPrice() (int64, bool) {
	if i.Price == nil || i.Quantity == nil {
		return 0, false
	}
	return int64(*i.Price) * int64(*i.Quantity), true
}
