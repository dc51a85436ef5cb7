package services

// ClientData holds the client and vehicle fields entered in the quote
// form. Every field is free text; absent values render as "-" in the
// exported documents.
type ClientData struct {
	ClientName     string `json:"clientName"`
	ClientPhone    string `json:"clientPhone"`
	ClientEmail    string `json:"clientEmail"`
	VehicleBrand   string `json:"vehicleBrand"`
	VehicleModel   string `json:"vehicleModel"`
	VehicleYear    string `json:"vehicleYear"`
	VehicleMileage string `json:"vehicleMileage"`
	Plate          string `json:"plate"`
}

// LineItem is a single billable entry. UnitPrice and Quantity stay raw
// text so the operator can type es-CL formatted numbers while
// drafting; a blank quantity counts as one unit.
type LineItem struct {
	Description string `json:"description"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    string `json:"quantity"`
}

// Category groups line items under a stable key. Item order is the
// print order. A category always holds at least one item.
type Category struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Items []LineItem `json:"items"`
}

// Quote is the full editable state the form UI sends with each request.
type Quote struct {
	Client     ClientData `json:"client"`
	Categories []Category `json:"categories"`
}

// LaborCategoryKey identifies the only category whose base is taxed.
const LaborCategoryKey = "mano_obra"

// DefaultCategories returns the three quote sections, each seeded with
// a single blank row.
func DefaultCategories() []Category {
	return []Category{
		{Key: "repuestos", Label: "Repuestos", Items: []LineItem{{}}},
		{Key: LaborCategoryKey, Label: "Mano de obra", Items: []LineItem{{}}},
		{Key: "insumos", Label: "Insumos", Items: []LineItem{{}}},
	}
}

// AddItem appends a blank row to the category with the given key and
// returns the updated category list. The input is never mutated.
func AddItem(categories []Category, key string) []Category {
	result := make([]Category, len(categories))
	for i, cat := range categories {
		if cat.Key == key {
			items := make([]LineItem, len(cat.Items), len(cat.Items)+1)
			copy(items, cat.Items)
			cat.Items = append(items, LineItem{})
		}
		result[i] = cat
	}
	return result
}

// SetItem replaces the item at index in the category with the given
// key and returns the updated category list. Out-of-range indexes
// leave the list unchanged.
func SetItem(categories []Category, key string, index int, item LineItem) []Category {
	result := make([]Category, len(categories))
	for i, cat := range categories {
		if cat.Key == key && index >= 0 && index < len(cat.Items) {
			items := make([]LineItem, len(cat.Items))
			copy(items, cat.Items)
			items[index] = item
			cat.Items = items
		}
		result[i] = cat
	}
	return result
}

// RemoveItem deletes the item at index from the category with the
// given key. Removing the last remaining item leaves a single blank
// row so the category never becomes empty.
func RemoveItem(categories []Category, key string, index int) []Category {
	result := make([]Category, len(categories))
	for i, cat := range categories {
		if cat.Key == key && index >= 0 && index < len(cat.Items) {
			items := make([]LineItem, 0, len(cat.Items)-1)
			items = append(items, cat.Items[:index]...)
			items = append(items, cat.Items[index+1:]...)
			if len(items) == 0 {
				items = []LineItem{{}}
			}
			cat.Items = items
		}
		result[i] = cat
	}
	return result
}

// NormalizeCategories restores the at-least-one-item invariant on a
// category list received from the outside, inserting a blank row
// wherever a caller sent an empty item list.
func NormalizeCategories(categories []Category) []Category {
	result := make([]Category, len(categories))
	for i, cat := range categories {
		if len(cat.Items) == 0 {
			cat.Items = []LineItem{{}}
		}
		result[i] = cat
	}
	return result
}
