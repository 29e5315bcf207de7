package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentOrderID          = errors.New("invalid order_id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrOrderNotPayable                = errors.New("order cannot be paid")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

// IPaymentUseCase pays an order through the payment gateway.
//
// A successful payment stores the provider payment id as the order's
// payment reference. It never changes the order status.
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, who entities.Identity, orderID string, payload json.RawMessage) (entities.Payment, error)
	ListByOrderID(ctx context.Context, who entities.Identity, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orders: orders, gateway: gateway}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, who entities.Identity, orderID string, payload json.RawMessage) (entities.Payment, error) {
	log.Printf("[payment][usecase] create start raw_order_id=%q payload_len=%d", orderID, len(payload))
	mockMode := PaymentMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Payment{}, ErrInvalidPaymentOrderID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload order_id=%s", orderID)
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.Payment{}, upstream("load order", err)
	}
	if order.ID == "" || !who.CanAccess(order) {
		return entities.Payment{}, ErrOrderNotFound
	}
	if order.Status == entities.OrderStatusCancelled {
		return entities.Payment{}, ErrOrderNotPayable
	}
	if order.PaymentReference != "" {
		return entities.Payment{}, ErrOrderAlreadyPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id order_id=%s", orderID)
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	ensurePayerDefaults(reqMap, who.Email)
	if !mockMode && !hasPayer(reqMap) {
		log.Printf("[payment][usecase] missing/invalid payer order_id=%s", orderID)
		return entities.Payment{}, ErrInvalidPaymentPayload
	}

	// The stored order total is the amount charged, whatever the client sent.
	reqMap["external_reference"] = order.OrderID
	reqMap["transaction_amount"] = order.TotalAmount
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Print order %s", order.OrderID)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		return entities.Payment{}, mapGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerID, providerStatus)

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
		}
	}

	p := entities.Payment{
		ID:                 providerID,
		OrderID:            order.OrderID,
		Amount:             order.TotalAmount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.Payment{}, upstream("create payment", err)
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.orders.SetPaymentReference(ctx, order.OrderID, created.ID); err != nil {
			log.Printf("[payment][usecase] set payment reference failed order_id=%s payment_id=%s err=%v", orderID, created.ID, err)
			return entities.Payment{}, upstream("set payment reference", err)
		}
	}
	log.Printf("[payment][usecase] create success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, who entities.Identity, orderID string) ([]entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}

	order, err := u.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, upstream("load order", err)
	}
	if order.ID == "" || !who.CanAccess(order) {
		return nil, ErrOrderNotFound
	}

	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, upstream("list payments", err)
	}
	return payments, nil
}

// PaymentMockEnabled reports whether PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK)
// is switched on.
func PaymentMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email from the authenticated student when
// the client sent neither an id nor an email.
func ensurePayerDefaults(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email = strings.TrimSpace(email); email != "" {
		payer["email"] = email
	} else if fallback := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); fallback != "" {
		payer["email"] = fallback
	}
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return upstream("payment gateway", err)
	}
}
