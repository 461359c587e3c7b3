package services

import (
	"context"
	"regexp"
	"strings"

	"virtual-product-studio/api/internal/common"
	"virtual-product-studio/api/pkg/models"
	"virtual-product-studio/api/pkg/session"
	"virtual-product-studio/api/pkg/util"

	creditcard "github.com/durango/go-credit-card"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	msgRequired     = "Required"
	msgEmail        = "Valid email required"
	msgPhone        = "Valid phone required"
	msgCard         = "Valid card required"
	msgExpiry       = "MM/YY format"
	msgCVV          = "3-4 digits"
	minCardDigits   = 16
	cardTestNumbers = true
)

var expiryFormat = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

// fieldMessages overrides the generic "Required" for fields with a format rule.
var fieldMessages = map[string]string{
	"email":      msgEmail,
	"phone":      msgPhone,
	"cvv":        msgCVV,
	"cardNumber": msgCard,
	"expiryDate": msgExpiry,
}

type CheckoutServiceImpl struct {
	configurator
	registry *session.Registry
}

func NewCheckoutService(registry *session.Registry, catalog CatalogService, pricing PricingService) CheckoutService {
	return &CheckoutServiceImpl{
		configurator: configurator{catalog: catalog, pricing: pricing},
		registry:     registry,
	}
}

// ValidateStep checks the fields collected by one checkout step and returns
// a message per invalid field. The confirm step checks all of them.
func (cs *CheckoutServiceImpl) ValidateStep(step models.CheckoutStep, req models.CheckoutRequest) map[string]string {
	req.Normalize()
	fields := map[string]string{}

	switch step {
	case models.CheckoutStepInfo:
		collectFieldErrors(fields, &req.Customer)
	case models.CheckoutStepShipping:
		collectFieldErrors(fields, &req.Shipping)
	case models.CheckoutStepPayment:
		validatePayment(fields, req.Payment)
	case models.CheckoutStepConfirm:
		collectFieldErrors(fields, &req.Customer)
		collectFieldErrors(fields, &req.Shipping)
		validatePayment(fields, req.Payment)
	}
	return fields
}

func collectFieldErrors(fields map[string]string, s interface{}) {
	err := common.Validate.Struct(s)
	if err == nil {
		return
	}
	for field := range common.FieldErrors(err) {
		if msg, ok := fieldMessages[field]; ok {
			fields[field] = msg
		} else {
			fields[field] = msgRequired
		}
	}
}

func validatePayment(fields map[string]string, payment models.PaymentDetails) {
	collectFieldErrors(fields, &payment)

	number := strings.Join(strings.Fields(payment.CardNumber), "")
	if len(number) < minCardDigits {
		fields["cardNumber"] = msgCard
	}
	match := expiryFormat.FindStringSubmatch(payment.ExpiryDate)
	if match == nil {
		fields["expiryDate"] = msgExpiry
	}
	if len(fields) > 0 {
		return
	}

	card := creditcard.Card{
		Number: number,
		Cvv:    payment.CVV,
		Month:  match[1],
		Year:   match[2],
	}
	if err := card.Validate(cardTestNumbers); err != nil {
		switch err.Error() {
		case "Invalid month", "Invalid year", "Credit card has expired":
			fields["expiryDate"] = msgExpiry
		case "Invalid CVV":
			fields["cvv"] = msgCVV
		default:
			fields["cardNumber"] = msgCard
		}
	}
}

// Checkout places orders for a single configuration or, with FromCart, for
// every cart line at its quantity, then empties the cart. No payment is taken.
func (cs *CheckoutServiceImpl) Checkout(_ context.Context, sessionID string, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	s, err := lookupSession(cs.registry, sessionID)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if fields := cs.ValidateStep(models.CheckoutStepConfirm, req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	details := orderDetails(req)

	if !req.FromCart {
		if req.Item == nil {
			return nil, ErrNothingToCheckout
		}
		cfg, err := cs.resolve(*req.Item)
		if err != nil {
			return nil, err
		}

		var order models.OrderItem
		_ = s.Update(func(st session.State) error {
			order = st.Orders.Add(cfg, 1, details)
			return nil
		})
		util.LogInfo("order placed", zap.String("sessionId", sessionID), zap.String("orderId", order.Id))
		return &models.CheckoutResponse{Orders: []models.OrderItem{order}, Total: order.TotalPrice}, nil
	}

	resp := &models.CheckoutResponse{Orders: []models.OrderItem{}}
	err = s.Update(func(st session.State) error {
		items := st.Cart.Items()
		if len(items) == 0 {
			return errors.Wrapf(ErrEmptyCart, "session %s", sessionID)
		}
		for _, item := range items {
			order := st.Orders.Add(item.Configuration, item.Quantity, details)
			resp.Orders = append(resp.Orders, order)
			resp.Total += order.TotalPrice * order.Quantity
		}
		st.Cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	util.LogInfo("cart checked out",
		zap.String("sessionId", sessionID),
		zap.Int("orders", len(resp.Orders)),
		zap.Int("total", resp.Total))
	return resp, nil
}

func orderDetails(req models.CheckoutRequest) *models.OrderDetails {
	card := creditcard.Card{Number: strings.Join(strings.Fields(req.Payment.CardNumber), "")}
	lastFour, _ := card.LastFour()
	return &models.OrderDetails{
		CustomerName: req.Customer.FirstName + " " + req.Customer.LastName,
		Email:        req.Customer.Email,
		Phone:        req.Customer.Phone,
		Shipping:     req.Shipping,
		CardLastFour: lastFour,
	}
}
