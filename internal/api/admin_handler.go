package api

import (
	"errors"
	"net/http"
	"time"

	"logisa-be/internal/address"
	"logisa-be/internal/collection"
	"logisa-be/internal/order"
	"logisa-be/internal/report"
	"logisa-be/internal/shipment"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type AdminHandler struct {
	orders      order.Service
	shipments   shipment.Service
	collections collection.Service
	reports     report.Service
}

// ----------------- Orders -----------------

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders := h.orders.ListAll(c.Request.Context())

	if c.Query("grouped") == "true" {
		Success(c, gin.H{"grouped": order.GroupByStatus(orders)})
		return
	}
	Success(c, gin.H{"items": orders})
}

func (h *AdminHandler) orderDecision(c *gin.Context, decide func() (*order.Order, error)) {
	o, err := decide()
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			NotFound(c, "order not found")
		case errors.Is(err, order.ErrInvalidTransition):
			BadRequest(c, err.Error())
		default:
			InternalError(c, "order update failed")
		}
		return
	}
	Success(c, o)
}

func (h *AdminHandler) ApproveOrder(c *gin.Context) {
	u, _ := currentUser(c)
	h.orderDecision(c, func() (*order.Order, error) {
		return h.orders.Approve(c.Request.Context(), c.Param("id"), u)
	})
}

func (h *AdminHandler) RejectOrder(c *gin.Context) {
	u, _ := currentUser(c)
	h.orderDecision(c, func() (*order.Order, error) {
		return h.orders.Reject(c.Request.Context(), c.Param("id"), u)
	})
}

func (h *AdminHandler) AdvanceOrder(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "status is required")
		return
	}

	h.orderDecision(c, func() (*order.Order, error) {
		return h.orders.Advance(c.Request.Context(), c.Param("id"), order.Status(req.Status))
	})
}

// ----------------- Ship notifications -----------------

type shipItemRequest struct {
	MaterialID   string    `json:"material_id"`
	Quantity     int       `json:"quantity"`
	BatchNumber  string    `json:"batch_number"`
	DeliveryDate time.Time `json:"delivery_date"`
}

type createShipNotificationRequest struct {
	Items []shipItemRequest `json:"items"`
}

func (h *AdminHandler) shipmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shipment.ErrNotificationNotFound):
		NotFound(c, "ship notification not found")
	case errors.Is(err, shipment.ErrShipItemNotFound):
		NotFound(c, "ship item not found")
	case errors.Is(err, shipment.ErrMissingField),
		errors.Is(err, shipment.ErrInvalidStockStatus),
		errors.Is(err, shipment.ErrInvalidStatus):
		BadRequest(c, err.Error())
	default:
		InternalError(c, "ship notification update failed")
	}
}

func (h *AdminHandler) ListShipNotifications(c *gin.Context) {
	Success(c, gin.H{"items": h.shipments.ListAll(c.Request.Context())})
}

func (h *AdminHandler) GetShipNotification(c *gin.Context) {
	n, err := h.shipments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.shipmentError(c, err)
		return
	}
	Success(c, n)
}

func (h *AdminHandler) CreateShipNotification(c *gin.Context) {
	var req createShipNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid ship notification payload")
		return
	}

	items := make([]shipment.NewShipItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, shipment.NewShipItem{
			MaterialID:   item.MaterialID,
			Quantity:     item.Quantity,
			BatchNumber:  item.BatchNumber,
			DeliveryDate: item.DeliveryDate,
		})
	}

	u, _ := currentUser(c)
	n, err := h.shipments.Create(c.Request.Context(), shipment.CreateParams{User: u, Items: items})
	if err != nil {
		h.shipmentError(c, err)
		return
	}
	Created(c, n)
}

type receiptRequest struct {
	Quantity    int       `json:"quantity"`
	ReceiptDate time.Time `json:"receipt_date"`
	BatchNumber string    `json:"batch_number"`
	StockStatus string    `json:"stock_status"`
}

func (h *AdminHandler) AddGoodsReceipt(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid goods receipt payload")
		return
	}

	n, err := h.shipments.AddReceipt(c.Request.Context(), c.Param("id"), c.Param("itemId"), shipment.ReceiptParams{
		Quantity:    req.Quantity,
		ReceiptDate: req.ReceiptDate,
		BatchNumber: req.BatchNumber,
		StockStatus: shipment.StockStatus(req.StockStatus),
	})
	if err != nil {
		h.shipmentError(c, err)
		return
	}
	Created(c, n)
}

func (h *AdminHandler) MarkGoodsReceived(c *gin.Context) {
	n, err := h.shipments.MarkGoodsReceived(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.shipmentError(c, err)
		return
	}
	Success(c, n)
}

func (h *AdminHandler) CancelShipNotification(c *gin.Context) {
	n, err := h.shipments.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.shipmentError(c, err)
		return
	}
	Success(c, n)
}

// ----------------- Collections -----------------

type createCollectionRequest struct {
	CollectionDate    time.Time            `json:"collection_date"`
	CollectionAddress collectionAddrFields `json:"collection_address"`
	RequestQuote      bool                 `json:"request_quote"`
	Price             float64              `json:"price"`
}

type collectionAddrFields struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	District     string `json:"district"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

func (h *AdminHandler) collectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, collection.ErrCollectionNotFound):
		NotFound(c, "collection not found")
	case errors.Is(err, collection.ErrMissingField),
		errors.Is(err, collection.ErrInvalidTransition):
		BadRequest(c, err.Error())
	default:
		InternalError(c, "collection update failed")
	}
}

func (h *AdminHandler) ListCollections(c *gin.Context) {
	Success(c, gin.H{"items": h.collections.ListAll(c.Request.Context())})
}

func (h *AdminHandler) CreateCollection(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid collection payload")
		return
	}

	u, _ := currentUser(c)
	col, err := h.collections.Create(c.Request.Context(), collection.CreateParams{
		User:           u,
		CollectionDate: req.CollectionDate,
		CollectionAddress: address.Address{
			AddressLine1: req.CollectionAddress.AddressLine1,
			AddressLine2: req.CollectionAddress.AddressLine2,
			City:         req.CollectionAddress.City,
			District:     req.CollectionAddress.District,
			PostalCode:   req.CollectionAddress.PostalCode,
			Country:      req.CollectionAddress.Country,
		},
		RequestQuote: req.RequestQuote,
		Price:        req.Price,
	})
	if err != nil {
		h.collectionError(c, err)
		return
	}
	Created(c, col)
}

func (h *AdminHandler) SubmitQuote(c *gin.Context) {
	var req struct {
		Price   float64 `json:"price"`
		QuoteBy string  `json:"quote_by"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid quote payload")
		return
	}

	col, err := h.collections.SubmitQuote(c.Request.Context(), c.Param("id"), collection.QuoteParams{
		Price:   req.Price,
		QuoteBy: req.QuoteBy,
	})
	if err != nil {
		h.collectionError(c, err)
		return
	}
	Success(c, col)
}

func (h *AdminHandler) collectionTransition(c *gin.Context, apply func(string) (*collection.CollectionDetails, error)) {
	col, err := apply(c.Param("id"))
	if err != nil {
		h.collectionError(c, err)
		return
	}
	Success(c, col)
}

func (h *AdminHandler) ApproveCollection(c *gin.Context) {
	h.collectionTransition(c, func(id string) (*collection.CollectionDetails, error) {
		return h.collections.Approve(c.Request.Context(), id)
	})
}

func (h *AdminHandler) RejectCollection(c *gin.Context) {
	h.collectionTransition(c, func(id string) (*collection.CollectionDetails, error) {
		return h.collections.Reject(c.Request.Context(), id)
	})
}

func (h *AdminHandler) MarkCollected(c *gin.Context) {
	var req struct {
		ActualCollectionDate time.Time `json:"actual_collection_date"`
	}
	_ = c.ShouldBindJSON(&req)

	h.collectionTransition(c, func(id string) (*collection.CollectionDetails, error) {
		return h.collections.MarkCollected(c.Request.Context(), id, req.ActualCollectionDate)
	})
}

func (h *AdminHandler) CompleteCollection(c *gin.Context) {
	h.collectionTransition(c, func(id string) (*collection.CollectionDetails, error) {
		return h.collections.Complete(c.Request.Context(), id)
	})
}

func (h *AdminHandler) CancelCollection(c *gin.Context) {
	h.collectionTransition(c, func(id string) (*collection.CollectionDetails, error) {
		return h.collections.Cancel(c.Request.Context(), id)
	})
}

// ----------------- Reports -----------------

func writeXLSX(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "failed to write report")
	}
}

func (h *AdminHandler) Report(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		f        *excelize.File
		filename string
		err      error
	)
	switch c.Param("type") {
	case "orders":
		f, filename, err = h.reports.OrdersReport(ctx)
	case "inventory":
		f, filename, err = h.reports.InventoryReport(ctx)
	case "orders-by-user":
		f, filename, err = h.reports.OrdersByUserReport(ctx)
	default:
		NotFound(c, "unknown report type")
		return
	}
	if err != nil {
		InternalError(c, "failed to build report")
		return
	}

	writeXLSX(c, f, filename)
}

func (h *AdminHandler) SampleOrderFile(c *gin.Context) {
	f, err := h.reports.SampleOrderFile()
	if err != nil {
		InternalError(c, "failed to build sample file")
		return
	}
	writeXLSX(c, f, "sample_orders.xlsx")
}

func (h *AdminHandler) UploadOrders(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		BadRequest(c, "file is not a valid xlsx")
		return
	}

	u, _ := currentUser(c)
	result, err := h.reports.ImportOrders(c.Request.Context(), f, u)
	if err != nil {
		if errors.Is(err, report.ErrUploadInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"code": 42200, "message": "upload contains invalid rows", "data": result})
			return
		}
		InternalError(c, "order upload failed")
		return
	}

	Created(c, result)
}
