// Package report builds the admin xlsx exports and parses uploaded order
// files.
package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"
	"logisa-be/internal/logger"
	"logisa-be/internal/order"
	"logisa-be/internal/pricing"
	"logisa-be/internal/user"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Created   []string   `json:"created"`
	RowErrors []RowError `json:"row_errors,omitempty"`
}

type Service interface {
	OrdersReport(ctx context.Context) (*excelize.File, string, error)
	InventoryReport(ctx context.Context) (*excelize.File, string, error)
	OrdersByUserReport(ctx context.Context) (*excelize.File, string, error)
	SampleOrderFile() (*excelize.File, error)
	ImportOrders(ctx context.Context, f *excelize.File, uploadedBy *user.User) (*ImportResult, error)
}

type service struct {
	orders  order.Service
	catalog catalog.Service
	now     func() time.Time
}

func NewService(orderSvc order.Service, catalogSvc catalog.Service) Service {
	return &service{orders: orderSvc, catalog: catalogSvc, now: time.Now}
}

var uploadHeaders = []string{
	"Material ID", "Quantity", "First Name", "Last Name",
	"Address Line 1", "City", "Postal Code", "Country",
}

const dateLayout = "2006-01-02"

func newSheet(name string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", name)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(name, cell, h)
		f.SetCellStyle(name, cell, cell, boldStyle)
		f.SetColWidth(name, col, col, 18)
	}
	return f, nil
}

// OrdersReport exports every order sorted by creation date.
func (s *service) OrdersReport(ctx context.Context) (*excelize.File, string, error) {
	orders := s.orders.ListAll(ctx)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	sheet := "Orders"
	f, err := newSheet(sheet, []string{"Order ID", "Date", "Customer", "Company", "Status", "Delivery", "Total (GBP)"})
	if err != nil {
		return nil, "", err
	}

	for i, o := range orders {
		row := i + 2
		customer := ""
		if o.User != nil {
			customer = o.User.FullName()
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.CreatedAt.Format(dateLayout))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), customer)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.CompanyID)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(o.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(o.DeliveryMethod))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), o.Total)
	}

	name := fmt.Sprintf("orders_report_%s.xlsx", s.now().Format(dateLayout))
	return f, name, nil
}

// InventoryReport exports current catalog stock levels.
func (s *service) InventoryReport(ctx context.Context) (*excelize.File, string, error) {
	materials, err := s.catalog.List(ctx, catalog.ListOptions{})
	if err != nil {
		return nil, "", err
	}

	sheet := "Inventory"
	f, err := newSheet(sheet, []string{"Material ID", "Name", "Group", "Price (GBP)", "In Stock"})
	if err != nil {
		return nil, "", err
	}

	for i, m := range materials {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.GroupID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.Price)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.Quantity)
	}

	name := fmt.Sprintf("inventory_report_%s.xlsx", s.now().Format(dateLayout))
	return f, name, nil
}

// OrdersByUserReport aggregates order count and spend per user.
func (s *service) OrdersByUserReport(ctx context.Context) (*excelize.File, string, error) {
	type bucket struct {
		name    string
		company string
		count   int
		total   float64
	}

	buckets := make(map[string]*bucket)
	var userIDs []string
	for _, o := range s.orders.ListAll(ctx) {
		b, ok := buckets[o.UserID]
		if !ok {
			b = &bucket{company: o.CompanyID}
			if o.User != nil {
				b.name = o.User.FullName()
			}
			buckets[o.UserID] = b
			userIDs = append(userIDs, o.UserID)
		}
		b.count++
		b.total += o.Total
	}
	sort.Strings(userIDs)

	sheet := "Orders by User"
	f, err := newSheet(sheet, []string{"User ID", "Name", "Company", "Orders", "Total Spend (GBP)"})
	if err != nil {
		return nil, "", err
	}

	for i, id := range userIDs {
		row := i + 2
		b := buckets[id]
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), id)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.company)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.count)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.total)
	}

	name := fmt.Sprintf("orders_by_user_%s.xlsx", s.now().Format(dateLayout))
	return f, name, nil
}

// SampleOrderFile builds the downloadable upload template with one example
// row.
func (s *service) SampleOrderFile() (*excelize.File, error) {
	sheet := "Orders"
	f, err := newSheet(sheet, uploadHeaders)
	if err != nil {
		return nil, err
	}

	example := []any{"m1", 2, "Jane", "Buyer", "1 Market Street", "London", "EC1A 1AA", "United Kingdom"}
	for i, v := range example {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"2", v)
	}
	return f, nil
}

// ImportOrders parses an uploaded order file, one order per row. Any
// invalid row fails the whole upload; nothing is written unless every row
// passes.
func (s *service) ImportOrders(ctx context.Context, f *excelize.File, uploadedBy *user.User) (*ImportResult, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	result := &ImportResult{}
	if len(rows) < 2 {
		return result, nil
	}

	cell := func(row []string, i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	var pending []order.CreateOrderParams
	for i, row := range rows[1:] {
		rowNum := i + 2

		fail := func(msg string) {
			result.RowErrors = append(result.RowErrors, RowError{Row: rowNum, Message: msg})
		}

		materialID := cell(row, 0)
		if materialID == "" {
			fail("material id is required")
			continue
		}

		material, err := s.catalog.Get(ctx, materialID)
		if err != nil {
			fail(fmt.Sprintf("unknown material id %q", materialID))
			continue
		}

		quantity, err := strconv.Atoi(cell(row, 1))
		if err != nil || quantity < 1 {
			fail("quantity must be a positive integer")
			continue
		}

		addr := address.Address{
			FirstName:    cell(row, 2),
			LastName:     cell(row, 3),
			AddressLine1: cell(row, 4),
			City:         cell(row, 5),
			PostalCode:   cell(row, 6),
			Country:      cell(row, 7),
		}
		if addr.AddressLine1 == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
			fail("address line 1, city, postal code and country are required")
			continue
		}

		items := []cart.CartItem{{MaterialID: material.ID, Material: *material, Quantity: quantity}}
		total, err := pricing.Total(items, delivery.MethodStandard)
		if err != nil {
			return nil, err
		}

		pending = append(pending, order.CreateOrderParams{
			User:           uploadedBy,
			Items:          items,
			Address:        addr,
			DeliveryMethod: delivery.MethodStandard,
			Total:          total,
		})
	}

	if len(result.RowErrors) > 0 {
		logger.FromCtx(ctx).Warn("order upload rejected",
			zap.Int("rows", len(rows)-1),
			zap.Int("invalid", len(result.RowErrors)),
		)
		return result, ErrUploadInvalid
	}

	for _, params := range pending {
		o, err := s.orders.Create(ctx, params)
		if err != nil {
			return result, err
		}
		result.Created = append(result.Created, o.ID)
	}

	logger.FromCtx(ctx).Info("order upload processed",
		zap.Int("created", len(result.Created)),
		zap.String("uploaded_by", uploadedBy.ID),
	)
	return result, nil
}
