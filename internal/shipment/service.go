package shipment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"logisa-be/internal/catalog"
	"logisa-be/internal/logger"
	"logisa-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NewShipItem struct {
	MaterialID   string
	Quantity     int
	BatchNumber  string
	DeliveryDate time.Time
}

type CreateParams struct {
	User  *user.User
	Items []NewShipItem
}

type ReceiptParams struct {
	Quantity    int
	ReceiptDate time.Time
	BatchNumber string
	StockStatus StockStatus
}

type Service interface {
	Create(ctx context.Context, params CreateParams) (*ShipNotification, error)
	Get(ctx context.Context, id string) (*ShipNotification, error)
	ListAll(ctx context.Context) []ShipNotification
	ListForUser(ctx context.Context, userID string) []ShipNotification
	AddReceipt(ctx context.Context, notificationID, shipItemID string, params ReceiptParams) (*ShipNotification, error)
	MarkGoodsReceived(ctx context.Context, id string) (*ShipNotification, error)
	Cancel(ctx context.Context, id string) (*ShipNotification, error)
}

type service struct {
	repo    Repository
	catalog catalog.Service
	now     func() time.Time
}

func NewService(repo Repository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalog: catalogSvc, now: time.Now}
}

const firstNotificationNumber = 1234

func nextID(notifications []ShipNotification) string {
	highest := firstNotificationNumber - 1
	for _, n := range notifications {
		raw, ok := strings.CutPrefix(n.ID, "PO")
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(raw); err == nil && v > highest {
			highest = v
		}
	}
	return fmt.Sprintf("PO%d", highest+1)
}

func (s *service) Create(ctx context.Context, params CreateParams) (*ShipNotification, error) {
	if len(params.Items) == 0 {
		return nil, fmt.Errorf("%w: items", ErrMissingField)
	}

	items := make([]ShipItem, 0, len(params.Items))
	for i, in := range params.Items {
		if err := validateItem(i, in); err != nil {
			return nil, err
		}

		material, err := s.catalog.Get(ctx, in.MaterialID)
		if err != nil {
			return nil, err
		}

		items = append(items, ShipItem{
			ID:           uuid.New().String(),
			MaterialID:   in.MaterialID,
			Material:     *material,
			Quantity:     in.Quantity,
			BatchNumber:  in.BatchNumber,
			DeliveryDate: in.DeliveryDate,
			Receipts:     []GoodsReceipt{},
		})
	}

	n := ShipNotification{
		ID:        nextID(s.repo.GetAll(ctx)),
		UserID:    params.User.ID,
		User:      params.User,
		CompanyID: params.User.CompanyID,
		Items:     items,
		Status:    StatusProcessing,
		CreatedAt: s.now(),
	}

	if err := s.repo.Append(ctx, n); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("ship notification created",
		zap.String("notification_id", n.ID),
		zap.Int("items", len(n.Items)),
	)
	return &n, nil
}

func validateItem(i int, in NewShipItem) error {
	if in.MaterialID == "" {
		return fmt.Errorf("%w: items[%d].material_id", ErrMissingField, i)
	}
	if in.Quantity < 1 {
		return fmt.Errorf("%w: items[%d].quantity", ErrMissingField, i)
	}
	if in.BatchNumber == "" {
		return fmt.Errorf("%w: items[%d].batch_number", ErrMissingField, i)
	}
	if in.DeliveryDate.IsZero() {
		return fmt.Errorf("%w: items[%d].delivery_date", ErrMissingField, i)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*ShipNotification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

func (s *service) ListAll(ctx context.Context) []ShipNotification {
	return s.repo.GetAll(ctx)
}

func (s *service) ListForUser(ctx context.Context, userID string) []ShipNotification {
	var out []ShipNotification
	for _, n := range s.repo.GetAll(ctx) {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// AddReceipt books a goods receipt against one ship item. Receipt quantity
// is deliberately not checked against the item quantity.
func (s *service) AddReceipt(ctx context.Context, notificationID, shipItemID string, params ReceiptParams) (*ShipNotification, error) {
	if params.StockStatus == "" {
		params.StockStatus = StockUnrestricted
	}
	if !ValidStockStatus(params.StockStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStockStatus, params.StockStatus)
	}
	if params.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity", ErrMissingField)
	}

	n, err := s.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}

	receiptDate := params.ReceiptDate
	if receiptDate.IsZero() {
		receiptDate = s.now()
	}

	found := false
	for i := range n.Items {
		if n.Items[i].ID != shipItemID {
			continue
		}
		n.Items[i].Receipts = append(n.Items[i].Receipts, GoodsReceipt{
			ID:          uuid.New().String(),
			ShipItemID:  shipItemID,
			Quantity:    params.Quantity,
			ReceiptDate: receiptDate,
			BatchNumber: params.BatchNumber,
			StockStatus: params.StockStatus,
		})
		found = true
		break
	}
	if !found {
		return nil, ErrShipItemNotFound
	}

	if err := s.repo.Update(ctx, *n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) MarkGoodsReceived(ctx context.Context, id string) (*ShipNotification, error) {
	return s.setStatus(ctx, id, StatusGoodsReceived)
}

// Cancel is only allowed while the notification is still processing.
func (s *service) Cancel(ctx context.Context, id string) (*ShipNotification, error) {
	return s.setStatus(ctx, id, StatusCancelled)
}

func (s *service) setStatus(ctx context.Context, id string, next Status) (*ShipNotification, error) {
	n, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.Status != StatusProcessing {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, n.Status, next)
	}

	n.Status = next
	if err := s.repo.Update(ctx, *n); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("ship notification status changed",
		zap.String("notification_id", n.ID),
		zap.String("status", string(next)),
	)
	return n, nil
}
