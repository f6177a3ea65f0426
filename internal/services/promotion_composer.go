package services

import (
	"errors"
	"restaurant_panel/internal/models"
	"sort"
)

var (
	ErrDuplicateItem = errors.New("product already in the item list")
	ErrItemIndex     = errors.New("item index out of range")
	ErrUnknownGroup  = errors.New("unknown group")
)

// ItemOverride carries a per-row price or quantity entered before a bulk
// group add. Nil fields fall back to catalog defaults.
type ItemOverride struct {
	Price    *float64
	Quantity *int
}

// Composer builds a promotion's working item list interactively: manual
// entry against the loaded catalog, or bulk-add of everything in a group.
// The list lives in memory until submitted through the promotion service.
type Composer struct {
	products    []models.Product
	groups      []models.Group
	items       []models.PromotionItem
	groupFilter *uint
}

func newComposer(products []models.Product, groups []models.Group) *Composer {
	return &Composer{
		products: products,
		groups:   groups,
		items:    []models.PromotionItem{},
	}
}

func (c *Composer) Products() []models.Product {
	return c.products
}

func (c *Composer) Groups() []models.Group {
	return c.groups
}

// SetGroupFilter narrows the displayed catalog to one group. Nil clears the
// filter.
func (c *Composer) SetGroupFilter(groupID *uint) {
	c.groupFilter = groupID
}

func (c *Composer) visibleNames() map[string]bool {
	names := make(map[string]bool, len(c.products))
	for _, p := range c.products {
		if c.groupFilter != nil {
			if p.GroupID == nil || *p.GroupID != *c.groupFilter {
				continue
			}
		}
		names[p.Name] = true
	}
	return names
}

func (c *Composer) hasItem(name string) bool {
	for _, item := range c.items {
		if item.ProductName == name {
			return true
		}
	}
	return false
}

// AddItem appends one manual entry. Duplicates are rejected only by product
// name within the currently displayed group filter, not globally.
func (c *Composer) AddItem(name string, price float64, quantity int) error {
	if c.hasItem(name) && c.visibleNames()[name] {
		return ErrDuplicateItem
	}
	if quantity < 1 {
		quantity = 1
	}
	c.items = append(c.items, models.PromotionItem{
		ProductName:   name,
		AdjustedPrice: price,
		Quantity:      quantity,
	})
	return nil
}

// AddGroup bulk-adds every product of the group not already present by
// name, honoring any per-row overrides, and keeps the list sorted by item
// name.
func (c *Composer) AddGroup(groupID uint, overrides map[string]ItemOverride) error {
	found := false
	for _, g := range c.groups {
		if g.ID == groupID {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownGroup
	}

	for _, p := range c.products {
		if p.GroupID == nil || *p.GroupID != groupID {
			continue
		}
		if c.hasItem(p.Name) {
			continue
		}

		price := p.Price
		quantity := 1
		if override, ok := overrides[p.Name]; ok {
			if override.Price != nil {
				price = *override.Price
			}
			if override.Quantity != nil && *override.Quantity >= 1 {
				quantity = *override.Quantity
			}
		}
		c.items = append(c.items, models.PromotionItem{
			ProductName:   p.Name,
			AdjustedPrice: price,
			Quantity:      quantity,
		})
	}

	sort.Slice(c.items, func(i, j int) bool {
		return c.items[i].ProductName < c.items[j].ProductName
	})
	return nil
}

func (c *Composer) RemoveItem(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemIndex
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

func (c *Composer) UpdateItem(index int, price float64, quantity int) error {
	if index < 0 || index >= len(c.items) {
		return ErrItemIndex
	}
	c.items[index].AdjustedPrice = price
	c.items[index].Quantity = quantity
	return nil
}

// Items returns a copy of the working list.
func (c *Composer) Items() []models.PromotionItem {
	items := make([]models.PromotionItem, len(c.items))
	copy(items, c.items)
	return items
}

// Build converts the working list into the persistence shape for
// update-or-create submission.
func (c *Composer) Build(id uint, name, description, validity string, fixedTotal *float64) *models.Promotion {
	return &models.Promotion{
		ID:          id,
		Name:        name,
		Description: description,
		Validity:    validity,
		FixedTotal:  fixedTotal,
		Items:       c.Items(),
	}
}
