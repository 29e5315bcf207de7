package response

import (
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase"
)

type OrderItemResponse struct {
	FileURL        string  `json:"file_url"`
	FileName       string  `json:"file_name"`
	Pages          string  `json:"pages"`
	PageCount      int     `json:"page_count"`
	Copies         int     `json:"copies"`
	Color          string  `json:"color"`
	Sides          string  `json:"sides"`
	Size           string  `json:"size"`
	Schedule       string  `json:"schedule"`
	PickupTime     string  `json:"pickup_time,omitempty"`
	EstimatedPrice float64 `json:"estimated_price"`
}

type OrderResponse struct {
	OrderID          string              `json:"order_id"`
	UserID           string              `json:"user_id"`
	UserEmail        string              `json:"user_email,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	TotalAmount      float64             `json:"total_amount"`
	Status           string              `json:"status"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type PrintJobResponse struct {
	PrintJobID     string    `json:"print_job_id"`
	FileURL        string    `json:"file_url"`
	FileName       string    `json:"file_name"`
	Copies         int       `json:"copies"`
	Size           string    `json:"size"`
	Color          string    `json:"color"`
	Sides          string    `json:"sides"`
	Pages          string    `json:"pages"`
	Schedule       string    `json:"schedule"`
	EstimatedPrice float64   `json:"estimated_price"`
	OrderID        string    `json:"order_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type PlaceOrderResponse struct {
	Order     OrderResponse      `json:"order"`
	PrintJobs []PrintJobResponse `json:"print_jobs"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, OrderItemResponse{
			FileURL:        i.FileURL,
			FileName:       i.FileName,
			Pages:          i.Pages,
			PageCount:      i.PageCount,
			Copies:         i.Copies,
			Color:          i.Color,
			Sides:          i.Sides,
			Size:           i.Size,
			Schedule:       i.Schedule,
			PickupTime:     i.PickupTime,
			EstimatedPrice: i.EstimatedPrice,
		})
	}
	return OrderResponse{
		OrderID:          o.OrderID,
		UserID:           o.UserID,
		UserEmail:        o.UserEmail,
		Items:            items,
		TotalAmount:      o.TotalAmount,
		Status:           string(o.Status),
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromPrintJob(p entities.PrintJob) PrintJobResponse {
	return PrintJobResponse{
		PrintJobID:     p.PrintJobID,
		FileURL:        p.FileURL,
		FileName:       p.FileName,
		Copies:         p.Copies,
		Size:           p.Size,
		Color:          p.Color,
		Sides:          p.Sides,
		Pages:          p.Pages,
		Schedule:       p.Schedule,
		EstimatedPrice: p.EstimatedPrice,
		OrderID:        p.OrderID,
		CreatedAt:      p.CreatedAt,
	}
}

func FromPlaceOrderResult(res usecase.PlaceOrderResult) PlaceOrderResponse {
	jobs := make([]PrintJobResponse, 0, len(res.PrintJobs))
	for _, p := range res.PrintJobs {
		jobs = append(jobs, FromPrintJob(p))
	}
	return PlaceOrderResponse{Order: FromOrder(res.Order), PrintJobs: jobs}
}
