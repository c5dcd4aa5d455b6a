package navigation

import (
	"github.com/giftdash/giftdash-backend/internal/profiles"
	"github.com/giftdash/giftdash-backend/pkg/enums"
)

// DeriveNavigationModel selects the fixed template for the resolved context
// and applies the corporate gating rules. Branch managers get their own
// template keyed directly off the user type. Corporate admins and super
// admins have a fixed corporate context, so they land on the gated corporate
// template even though the resolver hands them a nil profile; for plain users
// a nil profile falls back to the regular template. Item paths are decorated
// with the active profile so deep links preserve the context. The model must
// be recomputed on every render, never cached: it depends on live account
// status.
func DeriveNavigationModel(profile *profiles.ActiveProfile, userType enums.UserType, status enums.AccountStatus, currentPath string) []NavSection {
	var sections []NavSection

	switch {
	case userType == enums.UserTypeBranch:
		sections = branchTemplate()
	case userType == enums.UserTypeCorporateAdmin || userType == enums.UserTypeCorporateSuperAdmin:
		sections = gateCorporate(corporateTemplate(), userType, status)
	case profile == nil:
		sections = regularTemplate()
	case profile.Kind == enums.ProfileKindCorporate:
		sections = gateCorporate(corporateTemplate(), userType, status)
	default:
		sections = vendorTemplate()
	}

	return finalize(sections, profile, currentPath)
}

func gateCorporate(sections []NavSection, userType enums.UserType, status enums.AccountStatus) []NavSection {
	approved := status.IsApproved()
	superAdmin := userType == enums.UserTypeCorporateSuperAdmin

	gated := make([]NavSection, 0, len(sections))
	for _, section := range sections {
		items := make([]NavItem, 0, len(section.Items))
		for _, item := range section.Items {
			switch item.Label {
			case corporateItemPurchase, corporateItemRequests:
				if !approved {
					continue
				}
			case corporateItemAdmins, corporateItemNotifications:
				if !approved || !superAdmin {
					continue
				}
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			continue
		}
		section.Items = items
		gated = append(gated, section)
	}
	return gated
}

func finalize(sections []NavSection, profile *profiles.ActiveProfile, currentPath string) []NavSection {
	for si := range sections {
		for ii := range sections[si].Items {
			item := &sections[si].Items[ii]
			item.IsActive = item.Path == currentPath
			item.Path = profiles.DecorateRoute(item.Path, profile)
		}
	}
	return sections
}
