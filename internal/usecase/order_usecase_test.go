package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"printshop/internal/domain/entities"
	mock_interfaces "printshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubRates struct {
	rt  entities.RateTable
	err error
}

func (s stubRates) CurrentRates(context.Context) (entities.RateTable, error) {
	return s.rt, s.err
}

type orderMocks struct {
	orders    *mock_interfaces.MockIOrderRepository
	printJobs *mock_interfaces.MockIPrintJobRepository
	statuses  *mock_interfaces.MockIServiceStatusRepository
	notifier  *mock_interfaces.MockINotifier
}

func newOrderUseCaseWithMocks(t *testing.T) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		printJobs: mock_interfaces.NewMockIPrintJobRepository(ctrl),
		statuses:  mock_interfaces.NewMockIServiceStatusRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	uc := NewOrderUseCase(m.orders, m.printJobs, stubRates{rt: entities.DefaultRateTable()}, m.statuses, m.notifier)
	return uc, m
}

func student() entities.Identity {
	return entities.Identity{UserID: "u1", Role: entities.RoleStudent, Email: "u1@campus.edu"}
}

func thesisItem() entities.PrintJobSpec {
	return entities.PrintJobSpec{
		FileURL:  "https://files/thesis.pdf",
		FileName: "thesis.pdf",
		Pages:    "1-10",
		Copies:   2,
	}
}

func echoOrder(_ context.Context, o entities.Order) (entities.Order, error) {
	return o, nil
}

func echoPrintJob(_ context.Context, p entities.PrintJob) (entities.PrintJob, error) {
	return p, nil
}

func TestOrderUseCase_PlaceOrder_Validation(t *testing.T) {
	uc := NewOrderUseCase(nil, nil, nil, nil, nil)

	cases := []struct {
		name  string
		who   entities.Identity
		items []entities.PrintJobSpec
		total float64
		field string
	}{
		{name: "missing user", who: entities.Identity{}, items: []entities.PrintJobSpec{thesisItem()}, total: 1, field: "user_id"},
		{name: "no items", who: student(), items: nil, total: 1, field: "items"},
		{name: "non numeric total", who: student(), items: []entities.PrintJobSpec{thesisItem()}, total: math.NaN(), field: "total_amount"},
		{name: "infinite total", who: student(), items: []entities.PrintJobSpec{thesisItem()}, total: math.Inf(1), field: "total_amount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.PlaceOrder(context.Background(), tc.who, tc.items, tc.total)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, vErr.Field)
			}
		})
	}
}

func TestOrderUseCase_PlaceOrder_CreatesOrderAndPrintJob(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	m.statuses.EXPECT().Get(gomock.Any(), entities.ServicePrinting).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileURL(gomock.Any(), "https://files/thesis.pdf").Return(nil, nil)
	m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), "thesis.pdf").Return(nil, nil)
	m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPrintJob)
	m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.OrderPlacedNotification) error {
		if n.Recipient != "u1@campus.edu" || n.Amount != 23.6 {
			t.Fatalf("unexpected notification: %+v", n)
		}
		return nil
	})

	res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o := res.Order
	if !strings.HasPrefix(o.OrderID, "ORD-") || len(o.OrderID) != len("ORD-")+16 {
		t.Fatalf("unexpected order id %q", o.OrderID)
	}
	if o.ID == "" || o.ID == o.OrderID {
		t.Fatalf("expected distinct internal id, got %q", o.ID)
	}
	if o.Status != entities.OrderStatusQueued || o.UserID != "u1" || o.TotalAmount != 23.6 {
		t.Fatalf("unexpected order: %+v", o)
	}
	item := o.Items[0]
	if item.Size != "A4" || item.Color != "Black & White" || item.Sides != "Single-sided" {
		t.Fatalf("expected defaults applied, got %+v", item)
	}
	if item.PageCount != 10 || item.EstimatedPrice != 23.6 {
		t.Fatalf("expected 10 pages priced at 23.60, got %+v", item)
	}

	if len(res.PrintJobs) != 1 {
		t.Fatalf("expected 1 print job, got %d", len(res.PrintJobs))
	}
	pj := res.PrintJobs[0]
	if !strings.HasPrefix(pj.PrintJobID, "PJ-") || pj.OrderID != o.OrderID {
		t.Fatalf("unexpected print job: %+v", pj)
	}
	if pj.EstimatedPrice != 23.6 || pj.Size != "A4" {
		t.Fatalf("expected print job to carry item price and size, got %+v", pj)
	}
}

func TestOrderUseCase_PlaceOrder_RelinksExactFileURLMatch(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	existing := entities.PrintJob{PrintJobID: "PJ-OLD", FileURL: "https://files/thesis.pdf", OrderID: "ORD-PREVIOUS"}
	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileURL(gomock.Any(), "https://files/thesis.pdf").Return([]entities.PrintJob{existing}, nil)
	m.printJobs.EXPECT().RelinkToOrder(gomock.Any(), "PJ-OLD", gomock.Any()).DoAndReturn(func(_ context.Context, id, orderID string) (entities.PrintJob, error) {
		p := existing
		p.OrderID = orderID
		return p, nil
	})
	m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PrintJobs[0].PrintJobID != "PJ-OLD" || res.PrintJobs[0].OrderID != res.Order.OrderID {
		t.Fatalf("expected PJ-OLD relinked to new order, got %+v", res.PrintJobs[0])
	}
}

func TestOrderUseCase_PlaceOrder_FuzzyFileNameMatchLastWriteWins(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []entities.PrintJob{
		{PrintJobID: "PJ-A", FileName: "Thesis.pdf", OrderID: "ORD-A", CreatedAt: older},
		{PrintJobID: "PJ-B", FileName: "my-thesis.pdf", OrderID: "ORD-B", CreatedAt: older.Add(time.Hour)},
	}
	spec := entities.PrintJobSpec{FileName: "thesis", Pages: "3", Copies: 1}

	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), "thesis").Return(candidates, nil)
	m.printJobs.EXPECT().RelinkToOrder(gomock.Any(), "PJ-B", gomock.Any()).DoAndReturn(func(_ context.Context, id, orderID string) (entities.PrintJob, error) {
		p := candidates[1]
		p.OrderID = orderID
		return p, nil
	})
	m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{spec}, 3.54)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PrintJobs[0].PrintJobID != "PJ-B" {
		t.Fatalf("expected most recent candidate PJ-B, got %s", res.PrintJobs[0].PrintJobID)
	}
}

func TestOrderUseCase_PlaceOrder_SameFileTwiceClaimsDistinctJobs(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	existing := entities.PrintJob{PrintJobID: "PJ-OLD", FileURL: "https://files/thesis.pdf"}
	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileURL(gomock.Any(), gomock.Any()).Return([]entities.PrintJob{existing}, nil).Times(2)
	m.printJobs.EXPECT().RelinkToOrder(gomock.Any(), "PJ-OLD", gomock.Any()).Return(existing, nil)
	m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), gomock.Any()).Return([]entities.PrintJob{existing}, nil)
	m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPrintJob)
	m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

	res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem(), thesisItem()}, 47.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.PrintJobs) != 2 || res.PrintJobs[0].PrintJobID == res.PrintJobs[1].PrintJobID {
		t.Fatalf("expected two distinct print jobs, got %+v", res.PrintJobs)
	}
}

func TestOrderUseCase_PlaceOrder_PartialFailure(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileURL(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PrintJob{}, errors.New("throttled"))

	res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6)
	var partial *PartialOrderError
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialOrderError, got %v", err)
	}
	if partial.OrderID == "" || partial.OrderID != res.Order.OrderID {
		t.Fatalf("expected partial error to carry order id %q, got %q", res.Order.OrderID, partial.OrderID)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected wrapped ErrUpstream, got %v", err)
	}
}

func TestOrderUseCase_PlaceOrder_OrderCreateFailsBeforeLinking(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo down"))

	_, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6)
	var partial *PartialOrderError
	if errors.As(err, &partial) {
		t.Fatalf("did not expect partial error")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestOrderUseCase_PlaceOrder_NotificationFailureIgnored(t *testing.T) {
	uc, m := newOrderUseCaseWithMocks(t)

	m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
	m.printJobs.EXPECT().FindByFileURL(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPrintJob)
	m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	if _, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6); err != nil {
		t.Fatalf("expected notification failure to be ignored, got %v", err)
	}
}

func TestOrderUseCase_PlaceOrder_ClientTotal(t *testing.T) {
	t.Run("mismatch accepted by default", func(t *testing.T) {
		t.Setenv("ORDER_TOTAL_STRICT", "")
		uc, m := newOrderUseCaseWithMocks(t)

		m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
		m.printJobs.EXPECT().FindByFileURL(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPrintJob)
		m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 1.00)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.TotalAmount != 1.00 {
			t.Fatalf("expected client total stored, got %v", res.Order.TotalAmount)
		}
	})

	t.Run("mismatch rejected in strict mode", func(t *testing.T) {
		t.Setenv("ORDER_TOTAL_STRICT", "true")
		uc, m := newOrderUseCaseWithMocks(t)

		m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)

		_, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 1.00)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "total_amount" {
			t.Fatalf("expected total_amount validation error, got %v", err)
		}
	})

	t.Run("one cent drift tolerated in strict mode", func(t *testing.T) {
		t.Setenv("ORDER_TOTAL_STRICT", "true")
		uc, m := newOrderUseCaseWithMocks(t)

		m.statuses.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)
		m.printJobs.EXPECT().FindByFileURL(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.printJobs.EXPECT().FindByFileNameContains(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.printJobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoPrintJob)
		m.notifier.EXPECT().NotifyOrderPlaced(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.61)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.TotalAmount != 23.6 {
			t.Fatalf("expected server total stored, got %v", res.Order.TotalAmount)
		}
	})
}

func TestOrderUseCase_PlaceOrder_Preconditions(t *testing.T) {
	t.Run("printing closed", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)

		m.statuses.EXPECT().Get(gomock.Any(), entities.ServicePrinting).Return(entities.ServiceStatus{Service: "printing", Available: false, Message: "maintenance"}, nil)

		_, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6)
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("rate table unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, stubRates{err: ErrRateTableNotFound}, nil, nil)

		_, err := uc.PlaceOrder(context.Background(), student(), []entities.PrintJobSpec{thesisItem()}, 23.6)
		if !errors.Is(err, ErrRateTableNotFound) {
			t.Fatalf("expected ErrRateTableNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status rejected before repository", func(t *testing.T) {
		uc, _ := newOrderUseCaseWithMocks(t)

		_, err := uc.UpdateStatus(context.Background(), "ORD-1", entities.OrderStatus("shipped"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)

		m.orders.EXPECT().UpdateStatusByOrderID(gomock.Any(), "ORD-X", entities.OrderStatusDone).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "ORD-X", entities.OrderStatusDone)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("any allowed status can be set", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)

		m.orders.EXPECT().UpdateStatusByOrderID(gomock.Any(), "ORD-1", entities.OrderStatusQueued).
			Return(entities.Order{ID: "id-1", OrderID: "ORD-1", Status: entities.OrderStatusQueued}, nil)

		got, err := uc.UpdateStatus(context.Background(), " ORD-1 ", entities.OrderStatusQueued)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusQueued {
			t.Fatalf("expected queued, got %s", got.Status)
		}
	})
}

func TestOrderUseCase_GetByOrderID(t *testing.T) {
	owned := entities.Order{ID: "id-1", OrderID: "ORD-1", UserID: "u1"}

	t.Run("owner can read", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)
		m.orders.EXPECT().GetByOrderID(gomock.Any(), "ORD-1").Return(owned, nil)

		if _, err := uc.GetByOrderID(context.Background(), student(), "ORD-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other student gets not found", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)
		m.orders.EXPECT().GetByOrderID(gomock.Any(), "ORD-1").Return(owned, nil)

		_, err := uc.GetByOrderID(context.Background(), entities.Identity{UserID: "u2", Role: entities.RoleStudent}, "ORD-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("admin can read any", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)
		m.orders.EXPECT().GetByOrderID(gomock.Any(), "ORD-1").Return(owned, nil)

		if _, err := uc.GetByOrderID(context.Background(), entities.Identity{UserID: "a1", Role: entities.RoleAdmin}, "ORD-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_Lists(t *testing.T) {
	t.Run("by user", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)
		m.orders.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Order{{OrderID: "ORD-1"}}, nil)

		got, err := uc.ListByUser(context.Background(), "u1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("by status", func(t *testing.T) {
		uc, m := newOrderUseCaseWithMocks(t)
		m.orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusDone).Return(nil, errors.New("dynamo down"))

		_, err := uc.ListByStatus(context.Background(), entities.OrderStatusDone)
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("by invalid status", func(t *testing.T) {
		uc, _ := newOrderUseCaseWithMocks(t)

		_, err := uc.ListByStatus(context.Background(), entities.OrderStatus("lost"))
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}

func TestNormalizeItem(t *testing.T) {
	got := normalizeItem(entities.PrintJobSpec{Pages: " 1-3,5 ", Copies: -2, Size: "legal"})

	if got.PageCount != 4 {
		t.Fatalf("expected 4 pages, got %d", got.PageCount)
	}
	if got.Copies != 0 {
		t.Fatalf("expected negative copies clamped to 0, got %d", got.Copies)
	}
	if got.Size != "Legal" || got.Color != entities.DefaultItemColor || got.Sides != entities.DefaultItemSides {
		t.Fatalf("unexpected normalized item: %+v", got)
	}
}
