package kb

import (
	"ai-helpdesk-be/internal/entity"
)

// DefaultCorpus returns the built-in sample knowledge base. Treated as
// configuration data: deployments with a real corpus inject their own
// articles into NewStaticStore instead.
func DefaultCorpus() []entity.Article {
	return []entity.Article{
		{
			Id:       "kb_001",
			Title:    "How to update your payment method",
			Body:     "To update your payment method, go to Account Settings > Billing > Payment Methods. Click 'Add Payment Method' and follow the prompts. You can also remove old payment methods from this page. All changes take effect immediately.",
			Tags:     []string{"billing", "payments", "account"},
			Category: entity.CategoryBilling,
		},
		{
			Id:       "kb_002",
			Title:    "Troubleshooting 500 Internal Server Errors",
			Body:     "A 500 error indicates a server-side problem. First, try refreshing the page. If the error persists, check your internet connection. Clear your browser cache and cookies. If you're still seeing the error, please contact support with the exact error message and steps to reproduce.",
			Tags:     []string{"tech", "errors", "troubleshooting", "500"},
			Category: entity.CategoryTech,
		},
		{
			Id:       "kb_003",
			Title:    "How to track your shipment",
			Body:     "You can track your shipment using the tracking number provided in your shipping confirmation email. Visit our tracking page and enter your tracking number. Updates are provided in real-time from our shipping partners. Typical delivery time is 3-5 business days.",
			Tags:     []string{"shipping", "delivery", "tracking"},
			Category: entity.CategoryShipping,
		},
		{
			Id:       "kb_004",
			Title:    "Password reset instructions",
			Body:     "To reset your password, click 'Forgot Password' on the login page. Enter your email address and check your inbox for a reset link. The link expires in 24 hours for security. If you don't receive the email, check your spam folder.",
			Tags:     []string{"tech", "password", "login", "account"},
			Category: entity.CategoryTech,
		},
		{
			Id:       "kb_005",
			Title:    "Refund policy and process",
			Body:     "We offer full refunds within 30 days of purchase. To request a refund, go to Order History and click 'Request Refund'. Include the reason for return. Refunds are processed within 3-5 business days to your original payment method.",
			Tags:     []string{"billing", "refund", "policy"},
			Category: entity.CategoryBilling,
		},
		{
			Id:       "kb_006",
			Title:    "Shipping address changes",
			Body:     "You can change your shipping address before your order ships. Go to Order History, find your order, and click 'Change Address'. If your order has already shipped, contact our support team immediately. Some restrictions may apply for international orders.",
			Tags:     []string{"shipping", "address", "orders"},
			Category: entity.CategoryShipping,
		},
		{
			Id:       "kb_007",
			Title:    "Login troubleshooting",
			Body:     "If you can't log in, first check that you're using the correct email and password. Try resetting your password if needed. Clear your browser cache and cookies. Disable browser extensions temporarily. If issues persist, your account may be temporarily locked for security.",
			Tags:     []string{"tech", "login", "troubleshooting"},
			Category: entity.CategoryTech,
		},
		{
			Id:       "kb_008",
			Title:    "Billing cycle and charges",
			Body:     "Your billing cycle starts on the date you first subscribe. Monthly subscriptions renew automatically. Annual subscriptions provide a 20% discount. You'll receive an email notification 3 days before each renewal. You can view your billing history in Account Settings.",
			Tags:     []string{"billing", "subscription", "charges"},
			Category: entity.CategoryBilling,
		},
	}
}
