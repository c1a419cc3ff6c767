package config

import (
	"os"
	"strings"
)

// Placeholder values shipped in .env templates. Either one left in place
// means the gateway was never actually configured.
const (
	placeholderKeyID  = "your_razorpay_key_id"
	placeholderSecret = "your_razorpay_secret"
)

// GatewayCredentials holds the Razorpay key pair. Both order creation and
// payment verification must take the demo/live decision from the same value;
// deriving it twice is how the two endpoints drift apart.
type GatewayCredentials struct {
	KeyID  string
	Secret string
}

func LoadGatewayCredentials() GatewayCredentials {
	return GatewayCredentials{
		KeyID:  strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		Secret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
	}
}

// DemoMode reports whether the system must run without the live gateway:
// any missing or placeholder credential disables live mode entirely.
func (g GatewayCredentials) DemoMode() bool {
	if g.KeyID == "" || g.Secret == "" {
		return true
	}
	return g.KeyID == placeholderKeyID || g.Secret == placeholderSecret
}
