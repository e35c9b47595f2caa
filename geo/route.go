package geo

import "fmt"

// Endpoints returns both endpoint ids in stored order.
func (r Route) Endpoints() [2]PointID { return [2]PointID{r.End1, r.End2} }

// Touches reports whether id is one of the route's endpoints.
func (r Route) Touches(id PointID) bool { return r.End1 == id || r.End2 == id }

// OtherEndpoint returns the endpoint of r that is not id.
// It returns ErrNotEndpoint when id matches neither endpoint.
func (r Route) OtherEndpoint(id PointID) (PointID, error) {
	switch id {
	case r.End1:
		return r.End2, nil
	case r.End2:
		return r.End1, nil
	}
	return "", fmt.Errorf("%w: route %q has no endpoint %q", ErrNotEndpoint, r.ID, id)
}
