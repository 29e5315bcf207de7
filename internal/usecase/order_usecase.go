package usecase

import (
	"context"
	"encoding/hex"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/pricing"
	"printshop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// totalTolerance absorbs the one-cent drift allowed by independent rounding.
const totalTolerance = 0.01 + 1e-9

// RateSource supplies the authoritative RateTable at checkout.
type RateSource interface {
	CurrentRates(ctx context.Context) (entities.RateTable, error)
}

// PlaceOrderResult is the persisted order and the print jobs linked to it.
type PlaceOrderResult struct {
	Order     entities.Order      `json:"order"`
	PrintJobs []entities.PrintJob `json:"print_jobs"`
}

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

// IOrderUseCase exposes checkout and order fulfillment operations.
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, who entities.Identity, items []entities.PrintJobSpec, claimedTotal float64) (PlaceOrderResult, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	GetByOrderID(ctx context.Context, who entities.Identity, orderID string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	printJobs interfaces.IPrintJobRepository
	rates     RateSource
	statuses  interfaces.IServiceStatusRepository
	notifier  interfaces.INotifier

	strictTotal bool
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase builds the order assembler. statuses and notifier may be nil.
//
// ORDER_TOTAL_STRICT=true makes checkout reject a client total that does not
// match the server-side sum of item prices.
func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	printJobs interfaces.IPrintJobRepository,
	rates RateSource,
	statuses interfaces.IServiceStatusRepository,
	notifier interfaces.INotifier,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		printJobs:   printJobs,
		rates:       rates,
		statuses:    statuses,
		notifier:    notifier,
		strictTotal: isStrictTotalEnabled(),
	}
}

// PlaceOrder validates the cart, prices every item against the current
// RateTable, persists the order and links each item to a print job.
//
// The order and print-job writes are not transactional: when linking fails
// after the order was written, a *PartialOrderError carrying the order id is
// returned and the order is left for manual reconciliation.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, who entities.Identity, items []entities.PrintJobSpec, claimedTotal float64) (PlaceOrderResult, error) {
	userID := strings.TrimSpace(who.UserID)
	log.Printf("[order][usecase] place start user_id=%s items=%d", userID, len(items))
	if userID == "" {
		return PlaceOrderResult{}, newValidationError("user_id", "is required")
	}
	if len(items) == 0 {
		return PlaceOrderResult{}, newValidationError("items", "must be a non-empty array")
	}
	if math.IsNaN(claimedTotal) || math.IsInf(claimedTotal, 0) {
		return PlaceOrderResult{}, newValidationError("total_amount", "must be numeric")
	}

	if err := u.ensurePrintingAvailable(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	rates, err := u.rates.CurrentRates(ctx)
	if err != nil {
		log.Printf("[order][usecase] rate table unavailable user_id=%s err=%v", userID, err)
		return PlaceOrderResult{}, err
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	prices := make([]float64, 0, len(items))
	for _, spec := range items {
		item := priceItem(normalizeItem(spec), rates)
		orderItems = append(orderItems, item)
		prices = append(prices, item.EstimatedPrice)
	}

	serverTotal := pricing.SumAmounts(prices...)
	total := claimedTotal
	if math.Abs(claimedTotal-serverTotal) > totalTolerance {
		if u.strictTotal {
			log.Printf("[order][usecase] total mismatch rejected user_id=%s claimed=%.2f server=%.2f", userID, claimedTotal, serverTotal)
			return PlaceOrderResult{}, newValidationError("total_amount", "does not match the current prices")
		}
		log.Printf("[order][usecase] total mismatch accepted user_id=%s claimed=%.2f server=%.2f", userID, claimedTotal, serverTotal)
	}
	if u.strictTotal {
		total = serverTotal
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:          uuid.NewString(),
		OrderID:     newExternalID("ORD-"),
		UserID:      userID,
		UserEmail:   strings.TrimSpace(who.Email),
		Items:       orderItems,
		TotalAmount: total,
		Status:      entities.OrderStatusQueued,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] order create failed user_id=%s err=%v", userID, err)
		return PlaceOrderResult{}, upstream("create order", err)
	}

	jobs, err := u.reconcile(ctx, created)
	if err != nil {
		log.Printf("[order][usecase] reconciliation failed order_id=%s linked=%d/%d err=%v", created.OrderID, len(jobs), len(created.Items), err)
		return PlaceOrderResult{Order: created, PrintJobs: jobs}, &PartialOrderError{OrderID: created.OrderID, Err: err}
	}

	u.notifyPlaced(ctx, created)
	log.Printf("[order][usecase] place success order_id=%s user_id=%s total=%.2f print_jobs=%d", created.OrderID, userID, created.TotalAmount, len(jobs))
	return PlaceOrderResult{Order: created, PrintJobs: jobs}, nil
}

// UpdateStatus sets any allowed status; there is no transition table.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, newValidationError("order_id", "is required")
	}

	updated, err := u.orders.UpdateStatusByOrderID(ctx, orderID, status)
	if err != nil {
		return entities.Order{}, upstream("update order status", err)
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status updated order_id=%s status=%s", orderID, status)
	return updated, nil
}

// GetByOrderID hides orders the caller may not see behind ErrOrderNotFound.
func (u *OrderUseCase) GetByOrderID(ctx context.Context, who entities.Identity, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, newValidationError("order_id", "is required")
	}

	o, err := u.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, upstream("load order", err)
	}
	if o.ID == "" || !who.CanAccess(o) {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, newValidationError("user_id", "is required")
	}
	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, upstream("list orders by user", err)
	}
	return orders, nil
}

func (u *OrderUseCase) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}
	orders, err := u.orders.ListByStatus(ctx, status)
	if err != nil {
		return nil, upstream("list orders by status", err)
	}
	return orders, nil
}

func (u *OrderUseCase) ensurePrintingAvailable(ctx context.Context) error {
	if u.statuses == nil {
		return nil
	}
	st, err := u.statuses.Get(ctx, entities.ServicePrinting)
	if err != nil {
		return upstream("load service status", err)
	}
	if st.Service != "" && !st.Available {
		log.Printf("[order][usecase] printing unavailable message=%q", st.Message)
		return ErrServiceUnavailable
	}
	return nil
}

// reconcile links every order item to a print job, reusing an existing record
// when one matches and creating one otherwise. A record is claimed by at most
// one item of the same order.
func (u *OrderUseCase) reconcile(ctx context.Context, order entities.Order) ([]entities.PrintJob, error) {
	linked := make([]entities.PrintJob, 0, len(order.Items))
	claimed := make(map[string]struct{}, len(order.Items))

	for _, item := range order.Items {
		existing, found, err := u.findExistingPrintJob(ctx, item.PrintJobSpec, claimed)
		if err != nil {
			return linked, err
		}

		if found {
			relinked, err := u.printJobs.RelinkToOrder(ctx, existing.PrintJobID, order.OrderID)
			if err != nil {
				return linked, upstream("relink print job", err)
			}
			if relinked.PrintJobID != "" {
				log.Printf("[order][usecase] print job relinked print_job_id=%s order_id=%s previous_order_id=%s", relinked.PrintJobID, order.OrderID, existing.OrderID)
				claimed[relinked.PrintJobID] = struct{}{}
				linked = append(linked, relinked)
				continue
			}
			// Deleted between lookup and relink; create a fresh one below.
		}

		now := time.Now().UTC()
		created, err := u.printJobs.Create(ctx, entities.PrintJob{
			PrintJobID:     newExternalID("PJ-"),
			FileURL:        item.FileURL,
			FileName:       item.FileName,
			Copies:         item.Copies,
			Size:           item.Size,
			Color:          item.Color,
			Sides:          item.Sides,
			Pages:          item.Pages,
			Schedule:       item.Schedule,
			EstimatedPrice: item.EstimatedPrice,
			OrderID:        order.OrderID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return linked, upstream("create print job", err)
		}
		claimed[created.PrintJobID] = struct{}{}
		linked = append(linked, created)
	}
	return linked, nil
}

// findExistingPrintJob tries an exact file URL match first and only then a
// case-insensitive file name substring match.
func (u *OrderUseCase) findExistingPrintJob(ctx context.Context, spec entities.PrintJobSpec, claimed map[string]struct{}) (entities.PrintJob, bool, error) {
	if fileURL := strings.TrimSpace(spec.FileURL); fileURL != "" {
		candidates, err := u.printJobs.FindByFileURL(ctx, fileURL)
		if err != nil {
			return entities.PrintJob{}, false, upstream("find print job by file url", err)
		}
		if p, ok := pickPrintJob(candidates, claimed); ok {
			return p, true, nil
		}
	}

	if fileName := strings.TrimSpace(spec.FileName); fileName != "" {
		candidates, err := u.printJobs.FindByFileNameContains(ctx, fileName)
		if err != nil {
			return entities.PrintJob{}, false, upstream("find print job by file name", err)
		}
		if p, ok := pickPrintJob(candidates, claimed); ok {
			return p, true, nil
		}
	}

	return entities.PrintJob{}, false, nil
}

// pickPrintJob prefers unlinked records, then the most recently created one.
func pickPrintJob(candidates []entities.PrintJob, claimed map[string]struct{}) (entities.PrintJob, bool) {
	var best entities.PrintJob
	found := false
	for _, c := range candidates {
		if c.PrintJobID == "" {
			continue
		}
		if _, taken := claimed[c.PrintJobID]; taken {
			continue
		}
		if !found || better(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func better(a, b entities.PrintJob) bool {
	if a.Linked() != b.Linked() {
		return !a.Linked()
	}
	return a.CreatedAt.After(b.CreatedAt)
}

func (u *OrderUseCase) notifyPlaced(ctx context.Context, o entities.Order) {
	if u.notifier == nil || o.UserEmail == "" {
		return
	}
	err := u.notifier.NotifyOrderPlaced(ctx, entities.OrderPlacedNotification{
		Recipient: o.UserEmail,
		OrderID:   o.OrderID,
		Amount:    o.TotalAmount,
		PlacedAt:  o.CreatedAt,
	})
	if err != nil {
		log.Printf("[order][usecase] notification failed order_id=%s err=%v", o.OrderID, err)
	}
}

// normalizeItem substitutes defaults for blank fields. It never fails.
func normalizeItem(spec entities.PrintJobSpec) entities.OrderItem {
	spec.FileURL = strings.TrimSpace(spec.FileURL)
	spec.FileName = strings.TrimSpace(spec.FileName)
	spec.Pages = strings.TrimSpace(spec.Pages)
	spec.Schedule = strings.TrimSpace(spec.Schedule)

	if strings.TrimSpace(spec.Size) == "" {
		spec.Size = entities.DefaultItemSize
	} else {
		spec.Size = pricing.ParsePaperSize(spec.Size)
	}
	if strings.TrimSpace(spec.Color) == "" {
		spec.Color = entities.DefaultItemColor
	}
	if strings.TrimSpace(spec.Sides) == "" {
		spec.Sides = entities.DefaultItemSides
	}
	if spec.Copies < 0 {
		spec.Copies = 0
	}
	if spec.PageCount <= 0 {
		spec.PageCount = pricing.PageCount(spec.Pages)
	}
	return entities.OrderItem{PrintJobSpec: spec}
}

func priceItem(item entities.OrderItem, rates entities.RateTable) entities.OrderItem {
	bd := pricing.Estimate(
		item.PageCount,
		item.Copies,
		pricing.ParseColorMode(item.Color),
		pricing.ParseDuplexMode(item.Sides),
		item.Size,
		rates,
	)
	item.EstimatedPrice = bd.Total
	return item
}

// newExternalID returns prefix plus 16 upper-case hex chars taken from the
// random bits of a v4 UUID.
func newExternalID(prefix string) string {
	id := uuid.New()
	b := make([]byte, 0, 8)
	b = append(b, id[:6]...)
	b = append(b, id[10:12]...)
	return prefix + strings.ToUpper(hex.EncodeToString(b))
}

func isStrictTotalEnabled() bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("ORDER_TOTAL_STRICT")))
	return err == nil && v
}
