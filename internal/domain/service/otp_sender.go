package service

import "context"

// OTPSender delivers login codes to a phone number.
type OTPSender interface {
	Send(ctx context.Context, phone, code string) error
}
