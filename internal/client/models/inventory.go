package models

import "time"

type InventoryItem struct {
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Description     string     `json:"description,omitempty"`
	SKU             string     `json:"sku,omitempty"`
	Unit            string     `json:"unit"`
	QuantityInStock float64    `json:"quantity_in_stock"`
	MinimumQuantity float64    `json:"minimum_quantity"`
	UnitCost        float64    `json:"unit_cost,omitempty"`
	Supplier        string     `json:"supplier,omitempty"`
	Location        string     `json:"location,omitempty"`
	ExpirationDate  *time.Time `json:"expiration_date,omitempty"`
	Status          string     `json:"status,omitempty"`
}

func (i *InventoryItem) LowStock() bool {
	return i.QuantityInStock <= i.MinimumQuantity
}

type StockMovement struct {
	ID       string    `json:"id,omitempty"`
	Type     string    `json:"type"`
	Quantity float64   `json:"quantity"`
	Reason   string    `json:"reason,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Date     time.Time `json:"date,omitzero"`
}
