package models

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultShippingCountry = "United States"

type CheckoutCustomer struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
}

type ShippingDetails struct {
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country"`
}

type PaymentDetails struct {
	CardNumber string `json:"cardNumber" validate:"required"`
	ExpiryDate string `json:"expiryDate" validate:"required"`
	CVV        string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	CardName   string `json:"cardName" validate:"required"`
}

// CheckoutRequest places either a single configuration or, with FromCart,
// every line of the session cart.
type CheckoutRequest struct {
	Customer CheckoutCustomer      `json:"customer"`
	Shipping ShippingDetails       `json:"shipping"`
	Payment  PaymentDetails        `json:"payment"`
	Item     *ConfigurationRequest `json:"item,omitempty"`
	FromCart bool                  `json:"fromCart"`
}

// Normalize trims user input and applies the default country.
func (r *CheckoutRequest) Normalize() {
	r.Customer.FirstName = strings.TrimSpace(r.Customer.FirstName)
	r.Customer.LastName = strings.TrimSpace(r.Customer.LastName)
	r.Customer.Email = strings.TrimSpace(r.Customer.Email)
	r.Customer.Phone = strings.TrimSpace(r.Customer.Phone)
	r.Shipping.Address = strings.TrimSpace(r.Shipping.Address)
	r.Shipping.City = strings.TrimSpace(r.Shipping.City)
	r.Shipping.State = strings.TrimSpace(r.Shipping.State)
	r.Shipping.ZipCode = strings.TrimSpace(r.Shipping.ZipCode)
	r.Shipping.Country = strings.TrimSpace(r.Shipping.Country)
	if r.Shipping.Country == "" {
		r.Shipping.Country = DefaultShippingCountry
	}
	r.Payment.CardNumber = strings.TrimSpace(r.Payment.CardNumber)
	r.Payment.ExpiryDate = strings.TrimSpace(r.Payment.ExpiryDate)
	r.Payment.CVV = strings.TrimSpace(r.Payment.CVV)
	r.Payment.CardName = strings.TrimSpace(r.Payment.CardName)
}

type CheckoutStep string

const (
	CheckoutStepInfo     CheckoutStep = "info"
	CheckoutStepShipping CheckoutStep = "shipping"
	CheckoutStepPayment  CheckoutStep = "payment"
	CheckoutStepConfirm  CheckoutStep = "confirm"
	CheckoutStepSuccess  CheckoutStep = "success"
)

func (CheckoutStep) ParseCheckoutStep(step string) (CheckoutStep, error) {
	switch step {
	case "info":
		return CheckoutStepInfo, nil
	case "shipping":
		return CheckoutStepShipping, nil
	case "payment":
		return CheckoutStepPayment, nil
	case "confirm":
		return CheckoutStepConfirm, nil
	}

	err := fmt.Sprintf("Invalid checkout step: %v", step)
	return "", errors.New(err)
}

type CheckoutResponse struct {
	Orders []OrderItem `json:"orders"`
	Total  int         `json:"total"`
}
