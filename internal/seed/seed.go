// Package seed populates the persisted collections with the bundled sample
// dataset on first start. Existing data is never overwritten.
package seed

import (
	"context"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/collection"
	"logisa-be/internal/logger"
	"logisa-be/internal/order"
	"logisa-be/internal/shipment"
	"logisa-be/internal/store"
	"logisa-be/internal/user"

	"go.uber.org/zap"
)

type Seeder struct {
	store store.Store
}

func New(st store.Store) *Seeder {
	return &Seeder{store: st}
}

// Run seeds orders, ship notifications and collections iff the
// initialization marker is absent, then sets the marker. A second run is a
// no-op even when the user has since modified the data.
func (s *Seeder) Run(ctx context.Context) error {
	_, ok, err := s.store.Get(ctx, store.KeyInitialized)
	if err != nil {
		return err
	}
	if ok {
		logger.FromCtx(ctx).Debug("store already initialized, skipping seed")
		return nil
	}

	if err := store.Save(ctx, s.store, store.KeyOrders, sampleOrders()); err != nil {
		return err
	}
	if err := store.Save(ctx, s.store, store.KeyShipNotifications, sampleShipNotifications()); err != nil {
		return err
	}
	if err := store.Save(ctx, s.store, store.KeyCollections, sampleCollections()); err != nil {
		return err
	}
	if err := store.Save(ctx, s.store, store.KeyInitialized, true); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("sample dataset seeded",
		zap.Int("orders", len(sampleOrders())),
		zap.Int("ship_notifications", len(sampleShipNotifications())),
		zap.Int("collections", len(sampleCollections())),
	)
	return nil
}

var (
	janeBuyer = user.User{ID: "2", FirstName: "Jane", LastName: "Buyer", Email: "jane@acme.example", Role: user.RoleUser, CompanyID: "c1"}
	alanAdmin = user.User{ID: "1", FirstName: "Alan", LastName: "Admin", Email: "alan@acme.example", Role: user.RoleAdmin, CompanyID: "c1"}
	samSmith  = user.User{ID: "3", FirstName: "Sam", LastName: "Smith", Email: "sam@brightworks.example", Role: user.RoleUser, CompanyID: "c2"}

	acmeYard = address.Address{
		ID:           "a1",
		UserID:       "2",
		FirstName:    "Jane",
		LastName:     "Buyer",
		AddressLine1: "1 Market Street",
		City:         "London",
		PostalCode:   "EC1A 1AA",
		Country:      "United Kingdom",
		IsDefault:    true,
	}
	brightworksSite = address.Address{
		ID:           "a3",
		UserID:       "3",
		FirstName:    "Sam",
		LastName:     "Smith",
		AddressLine1: "Unit 4, Dockside Estate",
		City:         "Leeds",
		PostalCode:   "LS1 4AB",
		Country:      "United Kingdom",
	}

	pens     = catalog.Material{ID: "m1", Name: "Ballpoint Pens (Box of 50)", Price: 12.99, Quantity: 200, GroupID: "g1"}
	paper    = catalog.Material{ID: "m2", Name: "A4 Copy Paper (5 Reams)", Price: 18.50, Quantity: 150, GroupID: "g1"}
	boots    = catalog.Material{ID: "m3", Name: "Safety Boots", Price: 29.99, Quantity: 50, GroupID: "g2"}
	cement   = catalog.Material{ID: "m4", Name: "Cement 25kg", Price: 6.75, Quantity: 500, GroupID: "g3"}
	hardHats = catalog.Material{ID: "m8", Name: "Hard Hat", Price: 12.50, Quantity: 100, GroupID: "g2"}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleOrders() []order.Order {
	return []order.Order{
		{
			ID:        "ORD-1000",
			UserID:    janeBuyer.ID,
			User:      &janeBuyer,
			CompanyID: janeBuyer.CompanyID,
			Items: []cart.CartItem{
				{MaterialID: pens.ID, Material: pens, Quantity: 4},
				{MaterialID: paper.ID, Material: paper, Quantity: 2},
			},
			Address:        acmeYard,
			DeliveryMethod: "standard",
			Status:         order.StatusDelivered,
			Total:          93.95,
			CreatedAt:      date(2025, 1, 14),
			ApprovedByID:   alanAdmin.ID,
			ApprovedBy:     &alanAdmin,
		},
		{
			ID:        "ORD-1001",
			UserID:    janeBuyer.ID,
			User:      &janeBuyer,
			CompanyID: janeBuyer.CompanyID,
			Items: []cart.CartItem{
				{MaterialID: boots.ID, Material: boots, Quantity: 6},
			},
			Address:        acmeYard,
			DeliveryMethod: "two-day",
			Status:         order.StatusShipped,
			Total:          189.93,
			CreatedAt:      date(2025, 2, 3),
			ApprovedByID:   alanAdmin.ID,
			ApprovedBy:     &alanAdmin,
		},
		{
			ID:        "ORD-1002",
			UserID:    samSmith.ID,
			User:      &samSmith,
			CompanyID: samSmith.CompanyID,
			Items: []cart.CartItem{
				{MaterialID: cement.ID, Material: cement, Quantity: 40},
				{MaterialID: hardHats.ID, Material: hardHats, Quantity: 10},
			},
			Address:        brightworksSite,
			DeliveryMethod: "next-day",
			Status:         order.StatusApproved,
			Total:          414.99,
			CreatedAt:      date(2025, 2, 20),
			ApprovedByID:   alanAdmin.ID,
			ApprovedBy:     &alanAdmin,
		},
		{
			ID:        "ORD-1003",
			UserID:    samSmith.ID,
			User:      &samSmith,
			CompanyID: samSmith.CompanyID,
			Items: []cart.CartItem{
				{MaterialID: paper.ID, Material: paper, Quantity: 10},
			},
			Address:        brightworksSite,
			DeliveryMethod: "standard",
			Status:         order.StatusPending,
			Total:          189.99,
			CreatedAt:      date(2025, 3, 1),
		},
	}
}

func sampleShipNotifications() []shipment.ShipNotification {
	delivery1234 := date(2025, 2, 10)

	return []shipment.ShipNotification{
		{
			ID:        "PO1234",
			UserID:    janeBuyer.ID,
			User:      &janeBuyer,
			CompanyID: janeBuyer.CompanyID,
			Items: []shipment.ShipItem{
				{
					ID:           "si-1",
					MaterialID:   boots.ID,
					Material:     boots,
					Quantity:     6,
					BatchNumber:  "B-2025-031",
					DeliveryDate: delivery1234,
					Receipts: []shipment.GoodsReceipt{
						{
							ID:          "gr-1",
							ShipItemID:  "si-1",
							Quantity:    4,
							ReceiptDate: date(2025, 2, 11),
							BatchNumber: "B-2025-031",
							StockStatus: shipment.StockUnrestricted,
						},
					},
				},
			},
			Status:       shipment.StatusGoodsReceived,
			CreatedAt:    date(2025, 2, 4),
			DeliveryDate: &delivery1234,
		},
		{
			ID:        "PO1235",
			UserID:    samSmith.ID,
			User:      &samSmith,
			CompanyID: samSmith.CompanyID,
			Items: []shipment.ShipItem{
				{
					ID:           "si-2",
					MaterialID:   cement.ID,
					Material:     cement,
					Quantity:     40,
					BatchNumber:  "B-2025-114",
					DeliveryDate: date(2025, 3, 14),
					Receipts:     []shipment.GoodsReceipt{},
				},
			},
			Status:    shipment.StatusProcessing,
			CreatedAt: date(2025, 2, 21),
		},
	}
}

func sampleCollections() []collection.CollectionDetails {
	quoteDate := date(2025, 2, 25)
	actual := date(2025, 1, 30)

	return []collection.CollectionDetails{
		{
			ID:                   "col-1",
			UserID:               janeBuyer.ID,
			User:                 &janeBuyer,
			CompanyID:            janeBuyer.CompanyID,
			Status:               collection.StatusCompleted,
			CollectionDate:       date(2025, 1, 28),
			ActualCollectionDate: &actual,
			Price:                85.00,
			CollectionAddress:    acmeYard,
			CreatedAt:            date(2025, 1, 20),
		},
		{
			ID:                "col-2",
			UserID:            samSmith.ID,
			User:              &samSmith,
			CompanyID:         samSmith.CompanyID,
			Status:            collection.StatusAwaitingApproval,
			RequestedQuote:    true,
			CollectionDate:    date(2025, 3, 18),
			Price:             140.00,
			CollectionAddress: brightworksSite,
			QuoteBy:           alanAdmin.FullName(),
			QuoteDate:         &quoteDate,
			CreatedAt:         date(2025, 2, 22),
		},
	}
}
