package booking

import (
	"fmt"

	"github.com/juju/errors"
)

func errNotFound(id int64) error {
	return errors.NewNotFound(nil, fmt.Sprintf("Booking not found with id: %d", id))
}

var errNotOwner = errors.NewUnauthorized(nil, "Unauthorized: You can only cancel your own bookings")
