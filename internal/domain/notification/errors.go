package notification

import (
	"fmt"

	"github.com/juju/errors"
)

func errNotFound(id int64) error {
	return errors.NewNotFound(nil, fmt.Sprintf("Notification not found with id: %d", id))
}
