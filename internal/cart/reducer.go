package cart

import (
	"logisa-be/internal/address"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"
)

// Actions over the cart. Reduce is a pure function; persistence happens in
// the service layer after a successful transition.
type Action interface {
	isCartAction()
}

type AddItem struct {
	Material catalog.Material
	Quantity int
}

type RemoveItem struct {
	MaterialID string
}

type SetQuantity struct {
	MaterialID string
	Quantity   int
}

type Clear struct{}

type SetAddress struct {
	Address address.Address
}

type SetDeliveryMethod struct {
	Method delivery.Method
}

// Load replaces the whole state; used for rehydration from the store.
type Load struct {
	State State
}

func (AddItem) isCartAction()           {}
func (RemoveItem) isCartAction()        {}
func (SetQuantity) isCartAction()       {}
func (Clear) isCartAction()             {}
func (SetAddress) isCartAction()        {}
func (SetDeliveryMethod) isCartAction() {}
func (Load) isCartAction()              {}

// Reduce applies one action. On error the returned state is the input,
// untouched.
func Reduce(s State, a Action) (State, error) {
	switch act := a.(type) {

	case AddItem:
		if act.Quantity < 1 {
			return s, ErrInvalidQuantity
		}

		existing, ok := s.Find(act.Material.ID)
		final := act.Quantity
		if ok {
			final += existing.Quantity
		}
		if final > act.Material.Quantity {
			return s, &StockExceededError{
				MaterialID: act.Material.ID,
				Available:  act.Material.Quantity,
			}
		}

		items := make([]CartItem, len(s.Items))
		copy(items, s.Items)
		if ok {
			for i := range items {
				if items[i].MaterialID == act.Material.ID {
					items[i].Quantity = final
				}
			}
		} else {
			items = append(items, CartItem{
				MaterialID: act.Material.ID,
				Material:   act.Material,
				Quantity:   act.Quantity,
			})
		}
		s.Items = items
		return s, nil

	case RemoveItem:
		items := make([]CartItem, 0, len(s.Items))
		found := false
		for _, item := range s.Items {
			if item.MaterialID == act.MaterialID {
				found = true
				continue
			}
			items = append(items, item)
		}
		if !found {
			return s, ErrItemNotFound
		}
		s.Items = items
		return s, nil

	case SetQuantity:
		if act.Quantity < 1 {
			return Reduce(s, RemoveItem{MaterialID: act.MaterialID})
		}

		existing, ok := s.Find(act.MaterialID)
		if !ok {
			return s, ErrItemNotFound
		}
		if act.Quantity > existing.Material.Quantity {
			return s, &StockExceededError{
				MaterialID: act.MaterialID,
				Available:  existing.Material.Quantity,
			}
		}

		items := make([]CartItem, len(s.Items))
		copy(items, s.Items)
		for i := range items {
			if items[i].MaterialID == act.MaterialID {
				items[i].Quantity = act.Quantity
			}
		}
		s.Items = items
		return s, nil

	case Clear:
		// items, address and delivery method go together
		return State{Items: []CartItem{}}, nil

	case SetAddress:
		addr := act.Address
		s.SelectedAddress = &addr
		return s, nil

	case SetDeliveryMethod:
		if _, err := delivery.Lookup(act.Method); err != nil {
			return s, err
		}
		s.DeliveryMethod = act.Method
		return s, nil

	case Load:
		return act.State, nil
	}

	return s, nil
}
