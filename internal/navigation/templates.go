package navigation

// Fixed section templates per account context. Ordering is part of the
// contract; items are gated, never reordered.

func regularTemplate() []NavSection {
	return []NavSection{
		{
			Title: "Gift Cards",
			Items: []NavItem{
				{Label: "Browse Vendors", Icon: "storefront", Path: "/vendors"},
				{Label: "My Cards", Icon: "wallet", Path: "/cards"},
				{Label: "Purchase History", Icon: "receipt", Path: "/purchases"},
			},
		},
		{
			Title: "Account",
			Items: []NavItem{
				{Label: "Profile", Icon: "person", Path: "/account/profile"},
				{Label: "Payment Methods", Icon: "credit-card", Path: "/account/payments"},
			},
		},
		{
			Title: "Settings & Support",
			Items: []NavItem{
				{Label: "Settings", Icon: "gear", Path: "/settings"},
				{Label: "Contact Us", Icon: "chat", Path: "/contact"},
			},
		},
	}
}

func branchTemplate() []NavSection {
	return []NavSection{
		{
			Title: "Branch",
			Items: []NavItem{
				{Label: "Dashboard", Icon: "grid", Path: "/branch/dashboard"},
				{Label: "My Experience", Icon: "star", Path: "/branch/experience"},
				{Label: "Redemptions", Icon: "ticket", Path: "/branch/redemptions"},
			},
		},
	}
}

func vendorTemplate() []NavSection {
	return []NavSection{
		{
			Title: "Storefront",
			Items: []NavItem{
				{Label: "Dashboard", Icon: "grid", Path: "/vendor/dashboard"},
				{Label: "Card Catalog", Icon: "cards", Path: "/vendor/cards"},
				{Label: "Branches", Icon: "map-pin", Path: "/vendor/branches"},
			},
		},
		{
			Title: "Operations",
			Items: []NavItem{
				{Label: "Redemptions", Icon: "ticket", Path: "/vendor/redemptions"},
				{Label: "Requests", Icon: "inbox", Path: "/vendor/requests"},
			},
		},
		{
			Title: "Settings & Support",
			Items: []NavItem{
				{Label: "Settings", Icon: "gear", Path: "/settings"},
				{Label: "Contact Us", Icon: "chat", Path: "/contact"},
			},
		},
	}
}

// corporate item labels with conditional visibility
const (
	corporateItemPurchase      = "Purchase"
	corporateItemRequests      = "Requests"
	corporateItemAdmins        = "Admins"
	corporateItemNotifications = "Notifications"
)

func corporateTemplate() []NavSection {
	return []NavSection{
		{
			Title: "Corporate",
			Items: []NavItem{
				{Label: "Dashboard", Icon: "grid", Path: "/corporate/dashboard"},
				{Label: corporateItemPurchase, Icon: "cart", Path: "/corporate/purchase"},
				{Label: corporateItemRequests, Icon: "inbox", Path: "/corporate/requests"},
				{Label: "Vendors", Icon: "storefront", Path: "/corporate/vendors"},
				{Label: "Branches", Icon: "map-pin", Path: "/corporate/branches"},
			},
		},
		{
			Title: "Administration",
			Items: []NavItem{
				{Label: corporateItemAdmins, Icon: "people", Path: "/corporate/admins"},
				{Label: corporateItemNotifications, Icon: "bell", Path: "/corporate/notifications"},
			},
		},
		{
			Title: "Settings & Support",
			Items: []NavItem{
				{Label: "Settings", Icon: "gear", Path: "/settings"},
				{Label: "Contact Us", Icon: "chat", Path: "/contact"},
			},
		},
	}
}
