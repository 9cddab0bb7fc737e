// Package catalog holds the built-in sample focus lists and saving goals.
//
// All prices are hardcoded. Item IDs are name-based UUIDs derived from the
// item's position, so GetLists returns identical data on every call.
package catalog

import (
	"fmt"

	"github.com/theirongolddev/fixgrocery/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// namespace scopes catalog item IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/theirongolddev/fixgrocery/catalog"))

type entry struct {
	name  string
	price string
}

type slotEntry struct {
	item entry
	alts []entry
}

type preset struct {
	id    string
	title string
	slots []slotEntry
}

var presets = []preset{
	{
		id:    "grocery",
		title: "Grocery",
		slots: []slotEntry{
			{entry{"Coca-Cola", "2.50"}, []entry{{"Water", "1.50"}, {"Wine", "12.00"}, {"Beer", "8.00"}}},
			{entry{"Cake", "15.00"}, []entry{{"Fruit", "5.00"}, {"Greek Yogurt", "6.00"}, {"Dark Chocolate", "4.00"}}},
			{entry{"Bread", "3.50"}, []entry{{"Rice Cakes", "3.00"}, {"Tortilla Wraps", "4.00"}, {"Crackers", "2.50"}}},
			{entry{"Pasta", "2.00"}, []entry{{"White Rice", "2.50"}, {"Orzo", "3.00"}, {"Farro", "4.50"}}},
		},
	},
	{
		id:    "hygiene",
		title: "Hygiene",
		slots: []slotEntry{
			{entry{"Fancy Shampoo", "25.00"}, []entry{{"Standard Shampoo", "8.00"}, {"Dry Shampoo", "10.00"}, {"Cleansing Bar", "5.00"}}},
			{entry{"Toothbrush", "5.00"}, []entry{{"Electric Toothbrush", "60.00"}, {"Mouthwash", "7.00"}, {"Dental Floss", "4.00"}}},
			{entry{"Hair Balsam", "12.00"}, []entry{{"Hair Mask", "15.00"}, {"Argan Oil", "18.00"}, {"Leave-in Spray", "11.00"}}},
			{entry{"Body Lotion", "10.00"}, []entry{{"Body Butter", "15.00"}, {"Coconut Oil", "9.00"}, {"Aloe Vera Gel", "8.00"}}},
		},
	},
	{
		id:    "furniture",
		title: "Furniture & Appliances",
		slots: []slotEntry{
			{entry{"Chair", "85.00"}, []entry{{"Stool", "45.00"}, {"Bench", "120.00"}, {"Armchair", "250.00"}}},
			{entry{"Fridge", "800.00"}, []entry{{"Mini-fridge", "150.00"}, {"Chest Freezer", "250.00"}, {"Wine Cooler", "350.00"}}},
			{entry{"Oven", "600.00"}, []entry{{"Microwave", "120.00"}, {"Air Fryer", "100.00"}, {"Toaster Oven", "80.00"}}},
			{entry{"Bed", "500.00"}, []entry{{"Sofa Bed", "450.00"}, {"Futon", "200.00"}, {"Daybed", "350.00"}}},
		},
	},
	{
		id:    "house",
		title: "House Supplies",
		slots: []slotEntry{
			{entry{"Laundry Detergent", "14.00"}, []entry{{"Soap Flakes", "8.00"}, {"Baking Soda & Vinegar", "5.00"}, {"Detergent Pods", "18.00"}}},
			{entry{"Scrub Brush", "4.00"}, []entry{{"Sponge", "2.00"}, {"Microfiber Cloth", "3.00"}, {"Steel Wool", "5.00"}}},
			{entry{"Light Bulbs", "12.00"}, []entry{{"LED Bulbs", "15.00"}, {"Smart Bulbs", "35.00"}, {"Halogen Lamps", "10.00"}}},
			{entry{"Paper Towels", "6.00"}, []entry{{"Dish Towels", "12.00"}, {"Reusable Rags", "10.00"}, {"Newspaper", "2.00"}}},
		},
	},
	{
		id:    "school",
		title: "School",
		slots: []slotEntry{
			{entry{"Backpack", "45.00"}, []entry{{"Canvas Tote", "12.00"}, {"Rolling Backpack", "70.00"}, {"Secondhand Backpack", "15.00"}}},
			{entry{"Graphing Calculator", "110.00"}, []entry{{"Basic Calculator", "15.00"}, {"Calculator App", "0.00"}}},
			{entry{"Notebooks", "18.00"}, []entry{{"Loose-leaf Paper", "6.00"}, {"Recycled Notebooks", "10.00"}, {"Leather Journal", "35.00"}}},
			{entry{"Pens", "9.00"}, []entry{{"Pencils", "3.00"}, {"Fountain Pen", "40.00"}}},
		},
	},
	{
		id:    "party",
		title: "Party",
		slots: []slotEntry{
			{entry{"Balloons", "8.00"}, nil},
			{entry{"Catering", "220.00"}, []entry{{"Potluck", "40.00"}, {"Homemade Snacks", "60.00"}, {"Food Truck", "300.00"}}},
			{entry{"Decorations", "35.00"}, []entry{{"Paper Garlands", "10.00"}, {"Fairy Lights", "25.00"}, {"Custom Banner", "60.00"}}},
			{entry{"Soda", "2.50"}, []entry{{"Lemonade", "2.50"}}},
		},
	},
}

// GetLists returns every focus list in display order. The result is freshly
// allocated and identical across calls.
func GetLists() []model.ListDef {
	defs := make([]model.ListDef, 0, len(presets))
	for _, p := range presets {
		def := model.ListDef{
			ID:         p.id,
			Title:      p.title,
			Originals:  make([]model.Item, len(p.slots)),
			Candidates: make([][]model.Item, len(p.slots)),
		}
		for i, s := range p.slots {
			def.Originals[i] = newItem(p.id, i, -1, s.item)
			alts := make([]model.Item, len(s.alts))
			for j, a := range s.alts {
				alts[j] = newItem(p.id, i, j, a)
			}
			def.Candidates[i] = alts
		}
		defs = append(defs, def)
	}
	return defs
}

// ListIDs returns the ID of every focus list in display order.
func ListIDs() []string {
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.id
	}
	return ids
}

// newItem builds an item whose ID depends on where it sits in the catalog.
// alt is -1 for a slot's original.
func newItem(listID string, slot, alt int, e entry) model.Item {
	key := fmt.Sprintf("%s/%d/%d/%s", listID, slot, alt, e.name)
	return model.Item{
		ID:    uuid.NewSHA1(namespace, []byte(key)),
		Name:  e.name,
		Price: decimal.RequireFromString(e.price),
	}
}
