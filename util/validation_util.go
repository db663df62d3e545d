// util/validation_util.go

package util

import (
	"fmt"

	"github.com/edgegate-io/tunnelgate/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateUpsertRequest(req model.UpsertSubscriberRequest) error {
	if req.ID != "" && !model.ValidSubscriberID(req.ID) {
		return fmt.Errorf("subscriber id must be a hyphenated hex id")
	}
	if req.ExpirationTimestamp <= 0 {
		return fmt.Errorf("expiration timestamp must be a positive epoch value")
	}
	return nil
}

func (v *ValidationUtil) ValidateSubscriberID(id string) error {
	if !model.ValidSubscriberID(id) {
		return fmt.Errorf("subscriber id must be a hyphenated hex id")
	}
	return nil
}
