package profiles

import "strconv"

// SidebarCollapseThreshold is the viewport width at or below which the
// sidebar renders collapsed regardless of the stored preference.
const SidebarCollapseThreshold = 992

// SidebarState resolves the collapse state for a render. A narrow viewport
// forces collapsed without touching the stored preference; otherwise the
// stored preference wins, defaulting to expanded.
func SidebarState(stored string, viewportWidth int) bool {
	if viewportWidth > 0 && viewportWidth <= SidebarCollapseThreshold {
		return true
	}
	collapsed, err := strconv.ParseBool(stored)
	if err != nil {
		return false
	}
	return collapsed
}
