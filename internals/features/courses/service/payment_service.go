package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"careermap_backend/internals/features/courses/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type CustomerInput struct {
	FullName string
	Email    string
	Phone    string
}

/* =========================================================
   Generate Snap Token
========================================================= */

// GenerateSnapToken creates a Snap transaction for one course checkout.
// The enrollment id doubles as the Midtrans OrderID.
func GenerateSnapToken(course *model.CourseModel, orderID string, cust CustomerInput) (string, string, error) {
	amount := int64(course.Price)
	if amount <= 0 {
		return "", "", errors.New("course price must be positive for checkout")
	}
	if orderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FullName,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       course.Slug,
			Price:    amount,
			Qty:      1,
			Name:     truncate(course.Title, 50),
			Category: "course",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
