package profiles

import "net/url"

const accountParam = "account"

// DecorateRoute threads the active profile through a route path via the
// account query parameter. Existing query parameters survive, and a path that
// already carries an account parameter is overwritten rather than duplicated.
// A nil profile returns the path unchanged.
func DecorateRoute(path string, profile *ActiveProfile) string {
	if profile == nil {
		return path
	}

	u, err := url.Parse(path)
	if err != nil {
		return path
	}

	q := u.Query()
	q.Set(accountParam, profile.Kind.String())
	u.RawQuery = q.Encode()

	return u.String()
}
