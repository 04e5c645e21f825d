package system

import (
	"context"
	"fmt"

	wifictl "github.com/dogeorg/wifictl/pkg"
	"github.com/go-resty/resty/v2"
)

// ConnectivityProbe checks whether a freshly connected network actually
// reaches anything, by fetching a generate_204 style endpoint. A connect
// can be accepted by the tool while the AP still leads nowhere.
type ConnectivityProbe struct {
	client *resty.Client
	url    string
}

var _ wifictl.Prober = ConnectivityProbe{}

func NewConnectivityProbe(url string) ConnectivityProbe {
	client := resty.New()
	client.SetHeader("Accept", "*/*")
	return ConnectivityProbe{client: client, url: url}
}

func (t ConnectivityProbe) Check(ctx context.Context) error {
	resp, err := t.client.R().SetContext(ctx).Get(t.url)
	if err != nil {
		return err
	}
	if resp.StatusCode() >= 400 {
		return fmt.Errorf("probe %s answered %d", t.url, resp.StatusCode())
	}
	return nil
}
