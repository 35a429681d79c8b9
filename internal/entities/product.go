package entities

import (
	"bytes"
	"encoding/gob"
)

// ProductStock is the inventory service's answer to an availability check.
type ProductStock struct {
	ProductID         int64
	SKU               string
	Name              string
	Price             float64
	AvailableQuantity int
	RequiredQuantity  int
}

// StockMovement describes a committed stock decrement.
type StockMovement struct {
	ProductID        int64
	PreviousQuantity int
	NewQuantity      int
}

// Product is the catalog record used to enrich order items on the read path.
type Product struct {
	ProductID int64
	Name      string
	SKU       string
	Price     float64
	ImageURL  string
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}
