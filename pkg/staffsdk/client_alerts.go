package staffsdk

import (
	"context"
	"net/http"
	"sync/atomic"
)

// busyFlag is a single-flight guard: TriggerTestAlert refuses to overlap
// itself on one client, matching the dashboard's disabled-button behavior.
type busyFlag struct {
	v atomic.Bool
}

func (b *busyFlag) acquire() bool { return b.v.CompareAndSwap(false, true) }
func (b *busyFlag) release()      { b.v.Store(false) }

// TriggerTestAlert dispatches a test alert of the given type to all admin
// recipients. Only one trigger may be in flight per client; concurrent
// calls return ErrTestAlertInFlight.
func (c *SDKClient) TriggerTestAlert(ctx context.Context, alertType string) (*TestAlertResponse, error) {
	if !c.alertBusy.acquire() {
		return nil, ErrTestAlertInFlight
	}
	defer c.alertBusy.release()

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/admin/alerts/test", TestAlertRequest{
		AlertType: alertType,
	})
	if err != nil {
		return nil, err
	}

	var result TestAlertResponse
	if err := decodeJSON(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}

	return &result, nil
}
